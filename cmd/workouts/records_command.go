package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akarl16/cycling-workouts/internal/library"
	"github.com/akarl16/cycling-workouts/internal/validate"
)

func newRecordsCommand(ctx *commandContext) *cobra.Command {
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "records <file|glob>...",
		Short: "Validate ride record JSON documents",
		Long: `Validate completed-ride records. Each argument is a file path or glob; files
holding a JSON array are validated record by record.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := library.ExpandGlobs(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var docs, bad, findings int
			for _, fr := range library.LoadFiles(paths) {
				if fr.Err != nil {
					bad++
					findings++
					fmt.Fprintf(out, "%s: %v\n", fr.File, fr.Err)
					continue
				}
				for _, doc := range fr.Docs {
					docs++
					errs := validate.RideDocument(doc.Raw)
					if len(errs) == 0 {
						continue
					}
					bad++
					findings += len(errs)
					if quietFlag {
						continue
					}
					for _, e := range errs {
						fmt.Fprintf(out, "%s: %s\n", doc.Ref(), e.Error())
					}
				}
			}

			fmt.Fprintf(out, "%d record(s) checked, %d with errors, %d finding(s)\n", docs, bad, findings)
			if bad > 0 {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print the summary line")

	return cmd
}
