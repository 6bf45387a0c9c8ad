package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/cascade/internal/cascade"
	"github.com/danieljhkim/cascade/internal/engine"
)

var (
	treeSheet  string
	treeFormat string
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Print the merged hierarchy",
	Long: `Build the hierarchy from <file> and print it as an indented outline,
JSON or YAML. Renamed nodes show their new name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := treeFormat
		if jsonOutput {
			format = "json"
		}
		if format != "text" && format != "json" && format != "yaml" {
			return fmt.Errorf("%w: unknown format %q (want text, json or yaml)", engine.ErrValidation, format)
		}

		eng, err := newEngine(cmd)
		if err != nil {
			return err
		}
		result, err := eng.Inspect(cmd.Context(), &engine.InspectRequest{
			Input: args[0],
			Sheet: treeSheet,
		})
		if err != nil {
			return err
		}

		switch format {
		case "json":
			return outputJSON(cmd.OutOrStdout(), result)
		case "yaml":
			return outputYAML(cmd.OutOrStdout(), result)
		}

		writeOutline(cmd.OutOrStdout(), result.Cascade().Tree.Root().Children(), 0)
		return nil
	},
}

// writeOutline prints nodes depth-first, two spaces per level.
func writeOutline(w io.Writer, nodes []*cascade.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, n := range nodes {
		line := n.String()
		if n.Renamed() {
			line = warningColor.Sprintf("%s (was %s)", line, n.Name)
		}
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, line)
		writeOutline(w, n.Children(), depth+1)
	}
}

func init() {
	treeCmd.Flags().StringVarP(&treeSheet, "sheet", "s", "", "Worksheet to read (default: first worksheet)")
	treeCmd.Flags().StringVarP(&treeFormat, "format", "f", "text", "Output format: text, json or yaml")
}
