package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akarl16/cycling-workouts/internal/library"
	"github.com/akarl16/cycling-workouts/internal/schema"
	"github.com/akarl16/cycling-workouts/internal/validate"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var schemaFlag bool
	var quietFlag bool

	cmd := &cobra.Command{
		Use:   "validate <file|glob>...",
		Short: "Validate workout JSON documents",
		Long: `Validate workout documents against the repository rules. Each argument is a
file path or glob; files holding a JSON array are validated document by
document. Exits non-zero when any document has errors.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := library.ExpandGlobs(args)
			if err != nil {
				return err
			}

			var schemaPath string
			if schemaFlag {
				cfg, err := ctx.ensureConfig()
				if err != nil {
					return err
				}
				schemaPath = cfg.Schema.Path
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
					errs := validate.Document(doc.Raw)
					if schemaFlag {
						errs = append(errs, schemaErrors(doc.Raw, schemaPath)...)
					}
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

			fmt.Fprintf(out, "%d document(s) checked, %d with errors, %d finding(s)\n", docs, bad, findings)
			if bad > 0 {
				return fmt.Errorf("validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&schemaFlag, "schema", false, "Also check documents against the JSON Schema")
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print the summary line")

	return cmd
}

// schemaErrors runs the JSON Schema check and wraps each violation as a
// finding so schema and semantic output share one format. A non-empty
// schemaPath overrides the embedded schema.
func schemaErrors(data []byte, schemaPath string) []validate.Error {
	var msgs []string
	var err error
	if schemaPath != "" {
		msgs, err = schema.ValidateFile(schemaPath, data)
	} else {
		msgs, err = schema.Validate(data)
	}
	if err != nil {
		return []validate.Error{{Kind: validate.KindParseError, Message: err.Error()}}
	}
	var errs []validate.Error
	for _, m := range msgs {
		errs = append(errs, validate.Error{Kind: validate.KindInvalidValue, Message: "schema: " + m})
	}
	return errs
}
