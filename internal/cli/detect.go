package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/pipeline"
	"github.com/draftwise/draftcore/pkg/shape"
	"github.com/draftwise/draftcore/pkg/spaces"
)

// detectCommand creates the detect command for finding the room contour
// around a probe point.
func (c *CLI) detectCommand() *cobra.Command {
	var (
		probeStr string
		label    string
		output   string
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "detect [drawing.json]",
		Short: "Detect the space enclosing a probe point",
		Long: `Detect the space enclosing a probe point.

The walls of the drawing form a planar subdivision. Detect walks the
face of that subdivision that contains the probe point and reports its
contour, area, and centroid. Pass --label to add the detected space to
the drawing as a labeled shape.

Detection results are cached per drawing content and probe point.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			probe, err := parsePoint(probeStr)
			if err != nil {
				return err
			}
			return c.runDetect(cmd.Context(), args[0], probe, label, output, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&probeStr, "probe", "p", "", "probe point \"x,y\" in millimeters")
	cmd.Flags().StringVar(&label, "label", "", "add the detected contour to the drawing as a space with this name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output drawing path (with --label; default overwrites input)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")
	_ = cmd.MarkFlagRequired("probe")

	return cmd
}

// runDetect probes the drawing and prints (or stores) the result.
func (c *CLI) runDetect(ctx context.Context, input string, probe geom.Point, label, output string, noCache, refresh bool) error {
	d, snap, err := loadDrawing(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Detecting space...")
	spinner.Start()

	hash, err := pipeline.DrawingHash(d)
	if err != nil {
		spinner.StopWithError("Detection failed")
		return err
	}
	contour, found, cacheHit, err := runner.DetectWithCacheInfo(ctx, d, hash, pipeline.Options{
		Probe:   &probe,
		Refresh: refresh,
		Logger:  c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Detection failed")
		return fmt.Errorf("detect: %w", err)
	}
	spinner.Stop()

	if !found {
		printWarning("No enclosed space at (%.0f, %.0f)", probe.X, probe.Y)
		return nil
	}

	printSuccess("Found space at (%.0f, %.0f)", probe.X, probe.Y)
	printKeyValue("Area", fmt.Sprintf("%.2f m²", contour.Area))
	printKeyValue("Centroid", fmt.Sprintf("(%.0f, %.0f)", contour.Centroid.X, contour.Centroid.Y))
	printKeyValue("Vertices", fmt.Sprintf("%d", len(contour.Points)))
	printStats(snap.Len(), 1, cacheHit)

	if label == "" {
		return nil
	}

	sp := newSpace(label, contour)
	snap, err = snap.Insert(sp)
	if err != nil {
		return fmt.Errorf("insert space: %w", err)
	}
	printInfo("Added space %q (%s)", label, sp.ID)
	return saveDrawing(d, snap, input, output)
}

// newSpace builds a space shape from a detected contour.
func newSpace(name string, c spaces.Contour) *shape.Space {
	return &shape.Space{
		Common:        shape.Common{ID: shape.NewID()},
		Name:          name,
		ContourPoints: c.Points,
		Area:          c.Area,
		LabelPosition: c.Centroid,
	}
}
