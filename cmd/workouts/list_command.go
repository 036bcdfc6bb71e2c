package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/akarl16/cycling-workouts/internal/library"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var themeFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workouts in the library",
		Long: `List every workout under the library root with its resolved duration and
validation error count.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lib := library.New(cfg.Library.Root, ctx.logger())
			entries, err := lib.List()
			if err != nil {
				return err
			}
			if themeFlag != "" {
				kept := entries[:0]
				for _, e := range entries {
					if e.Theme == themeFlag {
						kept = append(kept, e)
					}
				}
				entries = kept
			}

			out := cmd.OutOrStdout()
			if jsonFlag {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				rows = append(rows, []string{
					e.ID,
					e.Name,
					e.Theme,
					formatDuration(e.Duration),
					strconv.Itoa(e.Items),
					strconv.Itoa(e.Errors),
					e.File,
				})
			}
			headers := []string{"ID", "Name", "Theme", "Duration", "Items", "Errors", "File"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft}
			fmt.Fprintln(out, renderTable(out, headers, rows, aligns))
			fmt.Fprintf(out, "%d workout(s)\n", len(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&themeFlag, "theme", "", "Only show workouts with this theme")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of a table")

	return cmd
}

// formatDuration renders whole seconds as m:ss or h:mm:ss.
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
