package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/akarl16/cycling-workouts/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var outputFlag string
	var singleFlag bool

	cmd := &cobra.Command{
		Use:   "convert <rides.csv>",
		Short: "Convert a ride CSV export to JSON",
		Long: `Convert a CSV export of completed rides to JSON. By default each row becomes
its own <id>.json file under the output directory; with --single all rows go
into one JSON array file. Rows without an id are assigned a fresh UUID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			outDir := cfg.Convert.OutputDir
			if cmd.Flags().Changed("output") {
				outDir = outputFlag
			}
			single := cfg.Convert.SingleFile
			if cmd.Flags().Changed("single") {
				single = singleFlag
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening CSV: %w", err)
			}
			defer f.Close()

			res, err := convert.CSV(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if single {
				path := filepath.Join(outDir, "rides.json")
				if err := convert.WriteSingle(res.Records, path); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %d record(s) to %s\n", len(res.Records), path)
			} else {
				files, err := convert.WriteFiles(res.Records, outDir)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %d file(s) to %s\n", len(files), outDir)
			}
			if res.RowsSkipped > 0 {
				fmt.Fprintf(out, "skipped %d empty row(s)\n", res.RowsSkipped)
			}
			if res.IDsAssigned > 0 {
				fmt.Fprintf(out, "assigned %d new id(s)\n", res.IDsAssigned)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output directory (defaults to config convert.output_dir)")
	cmd.Flags().BoolVar(&singleFlag, "single", false, "Write one JSON array file instead of per-record files")

	return cmd
}
