package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/cascade/internal/cascade"
	"github.com/danieljhkim/cascade/internal/engine"
)

var schemaSheet string

var schemaCmd = &cobra.Command{
	Use:   "schema <file>",
	Short: "Show the hierarchy levels found in the headers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		result, err := eng.Inspect(cmd.Context(), &engine.InspectRequest{
			Input: args[0],
			Sheet: schemaSheet,
		})
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(cmd.OutOrStdout(), result.Schema)
		}

		p := newPrinter(cmd)
		p.Section(fmt.Sprintf("Levels (%s)", count(result.Schema.Depth(), "level", "levels")))
		rows := make([][]string, len(result.Schema.Levels))
		for i, lvl := range result.Schema.Levels {
			rows[i] = []string{
				strconv.Itoa(i + 1),
				lvl.ID,
				cascade.ListName(lvl.ID),
				lvl.Coverage(),
			}
		}
		p.Table([]string{"#", "identifier", "list_name", "columns"}, rows)
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		if len(result.Sheets) > 0 {
			p.LabelValue("Sheet", result.Sheet)
			p.LabelValue("Available sheets", strings.Join(result.Sheets, ", "))
		}
		p.LabelValue("Nodes", strconv.Itoa(result.Nodes))
		p.LabelValue("Renamed", strconv.Itoa(result.Renamed))
		return nil
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaSheet, "sheet", "s", "", "Worksheet to read (default: first worksheet)")
}
