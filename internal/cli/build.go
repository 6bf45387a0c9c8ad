package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/cascade/internal/cascade"
	"github.com/danieljhkim/cascade/internal/engine"
)

var (
	buildSheet  string
	buildOutput string
	buildDryRun bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Convert a hierarchy spreadsheet into cascading select choices",
	Long: `Read <file> (.xlsx, .xlsm, .csv or .tsv, optionally .gz/.bz2/.xz/.zst
compressed) and write the cascade choice rows.

Columns must be named "<identifier>|name" and/or "<identifier>|label", with the
same coverage for every identifier. Other columns are ignored. The output
defaults to "<base>-cascade<ext>" next to the input.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}

		result, err := eng.Build(cmd.Context(), &engine.BuildRequest{
			Input:  args[0],
			Output: buildOutput,
			Sheet:  buildSheet,
			DryRun: buildDryRun,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result)
		}

		p := newPrinter(cmd)
		if result.DryRun {
			p.Section("Dry Run")
			p.Info(fmt.Sprintf("Would write %s to %s", count(result.Rows, "row", "rows"), result.Output))
			p.Table(cascade.Header, exportTable(result.Export))
			return nil
		}

		p.Success(fmt.Sprintf("Successfully saved file to: %s", result.Output))
		p.LabelValue("Levels", fmt.Sprint(result.Levels))
		p.LabelValue("Rows", fmt.Sprint(result.Rows))
		if result.Renamed > 0 {
			p.Warning(fmt.Sprintf("Renamed %s to keep names unique per level", count(result.Renamed, "duplicate name", "duplicate names")))
		}
		return nil
	},
}

func exportTable(rows []cascade.Row) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = r.Strings()
	}
	return out
}

func init() {
	buildCmd.Flags().StringVarP(&buildSheet, "sheet", "s", "", "Worksheet to read (default: first worksheet)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output path (default: <base>-cascade<ext>)")
	buildCmd.Flags().BoolVar(&buildDryRun, "dry-run", false, "Show the rows that would be written without writing")
}
