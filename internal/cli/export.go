package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sketchwall/sketchwall/pkg/export/excalidraw"
	"github.com/sketchwall/sketchwall/pkg/export/graphlink"
	boardio "github.com/sketchwall/sketchwall/pkg/io"
)

// newExportCmd creates the export command with format-specific subcommands.
func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a board to an interchange format",
		Long: `Export a board to an interchange format.

Exports are lossy by design: they carry the board content into another
tool's model, not a pixel-perfect copy of the rendered output.

Examples:
  sketchwall export excalidraw board.json          # Excalidraw scene file
  sketchwall export graph board.json               # Graphviz-laid-out SVG
  sketchwall export graph board.json -f dot        # raw DOT source`,
	}

	cmd.AddCommand(newExportExcalidrawCmd())
	cmd.AddCommand(newExportGraphCmd())

	return cmd
}

// newExportExcalidrawCmd creates the "export excalidraw" subcommand.
func newExportExcalidrawCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "excalidraw [board.json]",
		Short: "Export a board as an Excalidraw scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExportExcalidraw(cmd.Context(), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with .excalidraw)")

	return cmd
}

func runExportExcalidraw(ctx context.Context, input, output string) error {
	logger := loggerFromContext(ctx)

	board, err := boardio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded board %q: %d shapes", board.ID, len(board.Shapes))

	data, err := excalidraw.Export(board)
	if err != nil {
		return err
	}

	if output == "" {
		output = basePath("", input) + ".excalidraw"
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}
	if output == "-" {
		return nil
	}

	printSuccess("Exported %s", input)
	printFile(output)
	printNextStep("Import it at", "https://excalidraw.com")
	return nil
}

// newExportGraphCmd creates the "export graph" subcommand.
// It extracts the connectivity of the board (box-like shapes as nodes,
// bound arrows as edges) and hands the layout to Graphviz.
func newExportGraphCmd() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [board.json]",
		Short: "Export board connectivity as a Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			return runExportGraph(cmd.Context(), args[0], output, format, detailed)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, dot")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include shape ids and sizes in node labels")

	return cmd
}

func runExportGraph(ctx context.Context, input, output, format string, detailed bool) error {
	logger := loggerFromContext(ctx)

	board, err := boardio.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Infof("Loaded board %q: %d shapes", board.ID, len(board.Shapes))

	dot := graphlink.ToDOT(board, graphlink.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		logger.Info("Rendering graph SVG")
		data, err = graphlink.RenderSVG(dot)
	case "png":
		logger.Info("Rendering graph PNG")
		data, err = graphlink.RenderPNG(dot)
	default:
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", format)
	}
	if err != nil {
		return err
	}

	if output == "" {
		output = basePath("", input) + "." + format
	}
	if err := writeOutput(output, data); err != nil {
		return err
	}
	if output == "-" {
		return nil
	}

	printSuccess("Exported %s", input)
	printFile(output)
	return nil
}
