package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, name, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Cycling workout library server. List workouts, fetch workout documents by id, and validate workout JSON against the repository rules."),
	)

	h := &handlers{ds: ds, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolListWorkouts, Handler: h.listWorkouts},
		server.ServerTool{Tool: toolGetWorkout, Handler: h.getWorkout},
		server.ServerTool{Tool: toolValidateWorkout, Handler: h.validateWorkout},
	)

	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalog},
		server.ServerResource{Resource: resSchema, Handler: h.schema},
	)

	return s
}

// ServeStdio runs the server over stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"workouts://catalog",
	"Workout Catalog",
	mcp.WithResourceDescription("Summary of every workout in the library: id, name, theme, mode, resolved duration, and validation error count"),
	mcp.WithMIMEType("application/json"),
)

var resSchema = mcp.NewResource(
	"workouts://schema",
	"Workout Schema",
	mcp.WithResourceDescription("JSON Schema describing the workout document format"),
	mcp.WithMIMEType("application/json"),
)
