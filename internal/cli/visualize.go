package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stp2sgmwcs/pkg/errors"
	"github.com/matzehuels/stp2sgmwcs/pkg/render"
	"github.com/matzehuels/stp2sgmwcs/pkg/sgmwcs"
	"github.com/matzehuels/stp2sgmwcs/pkg/stp"
)

// Output formats understood by visualize, picked by file extension.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPDF = "pdf"
	formatPNG = "png"
)

var visualizeFormats = []string{formatDOT, formatSVG, formatPDF, formatPNG}

// visualizeCommand creates the visualize command.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output string
		strict bool
		ropts  render.Options
	)

	cmd := &cobra.Command{
		Use:   "visualize <file>",
		Short: "Draw an instance with its signal assignment",
		Long: `Draw an STP instance as a directed graph. Terminals are highlighted, nodes
list their node signals and every arc is labelled with the signal it maps to.

The output format follows the extension of --output: .dot writes Graphviz
source, .svg is rendered in-process, .pdf and .png additionally need
rsvg-convert (librsvg).`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeSTPFiles(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("strict") {
				strict = c.Config.Strict
			}
			return c.runVisualize(cmd.Context(), args[0], output, strict, ropts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.svg)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject node ids outside 1..N")
	cmd.Flags().BoolVar(&ropts.Weights, "weights", false, "show signal weights in labels")
	cmd.Flags().BoolVar(&ropts.UseCoords, "coords", false, "place nodes at their STP coordinates")
	cmd.Flags().Float64Var(&ropts.Scale, "scale", 1, "coordinate scale factor (with --coords)")

	return cmd
}

func (c *CLI) runVisualize(ctx context.Context, input, output string, strict bool, ropts render.Options) error {
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + formatSVG
	}
	format, err := outputFormat(output)
	if err != nil {
		return err
	}

	in, err := stp.ReadFile(input, stp.ReadOptions{Strict: strict})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	res, err := sgmwcs.Translate(in, sgmwcs.Options{
		Allocator: c.Config.Allocator,
		InfToken:  c.Config.InfToken,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}

	dot := render.ToDOT(in, res, ropts)
	if format == formatDOT {
		return writeOutput(output, []byte(dot))
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", filepath.Base(input)))
	spinner.Start()
	data, err := renderFormat(ctx, dot, format, ropts)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	return writeOutput(output, data)
}

// outputFormat derives the format from path's extension.
func outputFormat(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if err := errors.ValidateOneOf("output format", ext, visualizeFormats...); err != nil {
		return "", err
	}
	return ext, nil
}

func renderFormat(ctx context.Context, dot, format string, ropts render.Options) ([]byte, error) {
	svg, err := render.RenderSVG(ctx, dot, ropts)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatPDF:
		return render.ToPDF(svg)
	case formatPNG:
		return render.ToPNG(svg, 2.0)
	}
	return svg, nil
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	printSuccess("Rendered")
	printFile(path)
	return nil
}
