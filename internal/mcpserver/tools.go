package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/akarl16/cycling-workouts/internal/library"
	"github.com/akarl16/cycling-workouts/internal/validate"
)

// --- Tool definitions ---

var toolListWorkouts = mcp.NewTool("list_workouts",
	mcp.WithDescription("List workouts in the library. Returns one summary per workout: id, name, theme, mode, resolved duration in seconds, item count, and validation error count."),
	mcp.WithString("theme", mcp.Description("Filter by theme (e.g. 'halloween', 'christmas')")),
	mcp.WithNumber("min_duration", mcp.Description("Only workouts at least this many seconds long")),
	mcp.WithNumber("max_duration", mcp.Description("Only workouts at most this many seconds long")),
	mcp.WithBoolean("valid_only", mcp.Description("Only workouts with zero validation errors")),
)

var toolGetWorkout = mcp.NewTool("get_workout",
	mcp.WithDescription("Fetch the full JSON document for a workout by id."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Workout id")),
)

var toolValidateWorkout = mcp.NewTool("validate_workout",
	mcp.WithDescription("Validate a workout JSON document against the repository rules. Returns the list of validation errors, each with a path, kind, and message."),
	mcp.WithString("document", mcp.Required(), mcp.Description("Workout document as a JSON string")),
)

// filterEntries applies the list_workouts filters. Zero min/max means no
// duration bound on that side.
func filterEntries(entries []library.Entry, theme string, minDur, maxDur int, validOnly bool) []library.Entry {
	filtered := entries[:0:0]
	for _, e := range entries {
		if theme != "" && e.Theme != theme {
			continue
		}
		if minDur > 0 && e.Duration < minDur {
			continue
		}
		if maxDur > 0 && e.Duration > maxDur {
			continue
		}
		if validOnly && e.Errors > 0 {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered
}

// --- Tool handlers ---

func (h *handlers) listWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := h.ds.List()
	if err != nil {
		h.log.Error("mcp list_workouts", "error", err)
		return mcp.NewToolResultError("listing failed: " + err.Error()), nil
	}

	filtered := filterEntries(entries,
		req.GetString("theme", ""),
		req.GetInt("min_duration", 0),
		req.GetInt("max_duration", 0),
		req.GetBool("valid_only", false),
	)

	result, err := mcp.NewToolResultJSON(filtered)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	_, raw, err := h.ds.Get(id)
	if err != nil {
		h.log.Error("mcp get_workout", "id", id, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(string(raw)), nil
}

func (h *handlers) validateWorkout(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := req.RequireString("document")
	if err != nil {
		return mcp.NewToolResultError("document parameter is required"), nil
	}

	errs := validate.Document([]byte(doc))
	report := struct {
		Valid  bool             `json:"valid"`
		Errors []validate.Error `json:"errors"`
	}{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
	if report.Errors == nil {
		report.Errors = []validate.Error{}
	}

	result, err := mcp.NewToolResultJSON(report)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
