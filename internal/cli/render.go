package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	dio "github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/pipeline"
)

// renderCommand creates the render command for generating plan and
// topology artifacts from a drawing.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{
		View:    c.Config.View,
		Formats: c.Config.Formats,
	}

	cmd := &cobra.Command{
		Use:   "render [drawing.json]",
		Short: "Render a drawing to SVG, PNG, PDF, or DOT",
		Long: `Render a drawing to SVG, PNG, PDF, or DOT.

The plan view draws the shapes to scale: walls and beams as thick
strokes, detected spaces as filled contours with area labels. The
topology view shows which shapes are connected at their endpoints as a
Graphviz graph.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.Formats = parseFormats(formatsStr)
			}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVar(&opts.View, "view", opts.View, "render view: plan (default), topology")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.SpaceLabels, "labels", opts.SpaceLabels, "label detected spaces with name and area")
	cmd.Flags().BoolVar(&opts.ShowHidden, "hidden", opts.ShowHidden, "include hidden shapes")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "show endpoint coordinates (topology)")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// runRender loads the drawing and renders the requested artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	d, err := dio.ImportDrawing(input)
	if err != nil {
		return fmt.Errorf("load drawing %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s view...", opts.View))
	spinner.Start()

	hash, err := pipeline.DrawingHash(d)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, d, hash, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	if err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
	}); err != nil {
		return err
	}
	printStats(len(d.Shapes), 0, cacheHit)
	return nil
}

// artifactWriteParams bundles the inputs for writeArtifacts.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	input     string
	output    string
}

// writeArtifacts writes rendered artifacts to disk. A single format goes
// to the output path directly (or input-derived); multiple formats get
// per-format extensions on a shared base path.
func writeArtifacts(p artifactWriteParams) error {
	if len(p.formats) == 1 {
		format := p.formats[0]
		path := p.output
		if path == "" {
			path = basePath("", p.input) + "." + format
		}
		return writeArtifact(path, p.artifacts[format])
	}

	base := basePath(p.output, p.input)
	for _, format := range p.formats {
		if err := writeArtifact(base+"."+format, p.artifacts[format]); err != nil {
			return err
		}
	}
	return nil
}

// writeArtifact writes a single artifact and prints the output line.
func writeArtifact(path string, data []byte) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if path != "-" {
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has a
// known format extension, that extension is stripped too.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
