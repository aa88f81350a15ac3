package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/document"
	"github.com/draftwise/draftcore/pkg/geom"
	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/shape"
)

// transformOpts holds the command-line flags for the transform command.
type transformOpts struct {
	ids       string  // comma-separated shape IDs to transform
	translate string  // "dx,dy" translation vector
	rotate    float64 // rotation angle in degrees
	about     string  // rotation center "x,y"
	scale     float64 // uniform scale factor
	origin    string  // scale origin "x,y"
	mirror    string  // mirror axis "x1,y1,x2,y2"
	copy      bool    // insert transformed copies instead of moving
	output    string  // output drawing path
}

// transformCommand creates the transform command for moving, rotating,
// scaling, and mirroring shapes.
func (c *CLI) transformCommand() *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   "transform [drawing.json]",
		Short: "Translate, rotate, scale, or mirror shapes",
		Long: `Translate, rotate, scale, or mirror shapes.

Exactly one transform flag must be given. By default the selected
shapes move in place; with --copy the originals stay and transformed
copies with fresh identities are inserted. After an in-place move,
miter joins touching the moved shapes are recalculated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := buildTransform(&opts)
			if err != nil {
				return err
			}
			return c.runTransform(args[0], &opts, t)
		},
	}

	cmd.Flags().StringVar(&opts.ids, "ids", "", "shape IDs to transform (comma-separated, empty for all)")
	cmd.Flags().StringVar(&opts.translate, "translate", "", "translation vector \"dx,dy\"")
	cmd.Flags().Float64Var(&opts.rotate, "rotate", 0, "rotation angle in degrees (counterclockwise)")
	cmd.Flags().StringVar(&opts.about, "about", "0,0", "rotation center \"x,y\"")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "uniform scale factor")
	cmd.Flags().StringVar(&opts.origin, "origin", "0,0", "scale origin \"x,y\"")
	cmd.Flags().StringVar(&opts.mirror, "mirror", "", "mirror axis \"x1,y1,x2,y2\"")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "insert transformed copies, keep the originals")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output drawing path (default overwrites input)")

	return cmd
}

// buildTransform converts the flag set into a point transform. Exactly
// one of the transform flags must be set.
func buildTransform(opts *transformOpts) (geom.Transform, error) {
	var transforms []geom.Transform

	if opts.translate != "" {
		delta, err := parsePoint(opts.translate)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, geom.Translate(delta.X, delta.Y))
	}
	if opts.rotate != 0 {
		center, err := parsePoint(opts.about)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, geom.Rotate(center, opts.rotate*math.Pi/180))
	}
	if opts.scale != 0 {
		origin, err := parsePoint(opts.origin)
		if err != nil {
			return nil, err
		}
		if opts.scale < 0 {
			return nil, fmt.Errorf("scale factor must be positive, got %v", opts.scale)
		}
		transforms = append(transforms, geom.Scale(origin, opts.scale))
	}
	if opts.mirror != "" {
		a, b, err := parseAxis(opts.mirror)
		if err != nil {
			return nil, err
		}
		transforms = append(transforms, geom.Mirror(a, b))
	}

	if len(transforms) != 1 {
		return nil, fmt.Errorf("exactly one of --translate, --rotate, --scale, --mirror is required")
	}
	return transforms[0], nil
}

// parseAxis parses a mirror axis given as "x1,y1,x2,y2".
func parseAxis(s string) (geom.Point, geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return geom.Point{}, geom.Point{}, fmt.Errorf("invalid axis %q (expected x1,y1,x2,y2)", s)
	}
	a, err := parsePoint(parts[0] + "," + parts[1])
	if err != nil {
		return geom.Point{}, geom.Point{}, err
	}
	b, err := parsePoint(parts[2] + "," + parts[3])
	if err != nil {
		return geom.Point{}, geom.Point{}, err
	}
	if a == b {
		return geom.Point{}, geom.Point{}, fmt.Errorf("mirror axis points coincide")
	}
	return a, b, nil
}

// runTransform applies the transform to the selected shapes and writes
// the result.
func (c *CLI) runTransform(input string, opts *transformOpts, t geom.Transform) error {
	d, snap, err := loadDrawing(input)
	if err != nil {
		return err
	}

	targets, err := selectShapes(snap, opts.ids)
	if err != nil {
		return err
	}

	if opts.copy {
		for _, s := range targets {
			cp := modify.TransformShape(s, t, shape.NewID())
			if snap, err = snap.Insert(cp); err != nil {
				return fmt.Errorf("insert copy of %s: %w", s.Header().ID, err)
			}
		}
		printSuccess("Inserted %d transformed copies", len(targets))
		return saveDrawing(d, snap, input, opts.output)
	}

	updates := make([]shape.Update, 0, len(targets))
	changed := make([]shape.ID, 0, len(targets))
	for _, s := range targets {
		updates = append(updates, modify.TransformUpdates(s, t))
		changed = append(changed, s.Header().ID)
	}
	if snap, err = snap.ApplyUpdates(updates); err != nil {
		return fmt.Errorf("apply transform: %w", err)
	}

	// A moved wall invalidates the miter joins and space contours around
	// it; reconcile propagates the geometry change to its neighbors.
	followups := document.Reconcile(snap, changed, c.Config.MiterTolerance)
	if len(followups) > 0 {
		if snap, err = snap.ApplyUpdates(followups); err != nil {
			return fmt.Errorf("reconcile: %w", err)
		}
		printDetail("Reconciled %d dependent shapes", len(followups))
	}

	printSuccess("Transformed %d shapes", len(targets))
	return saveDrawing(d, snap, input, opts.output)
}

// selectShapes resolves the --ids flag against the snapshot. An empty
// selection means every unlocked shape.
func selectShapes(snap *document.Snapshot, ids string) ([]shape.Shape, error) {
	if ids == "" {
		var all []shape.Shape
		for _, s := range snap.Shapes() {
			if !s.Header().Locked {
				all = append(all, s)
			}
		}
		if len(all) == 0 {
			return nil, fmt.Errorf("drawing has no unlocked shapes")
		}
		return all, nil
	}

	var out []shape.Shape
	for _, id := range parseIDs(ids) {
		s, ok := snap.Get(id)
		if !ok {
			return nil, fmt.Errorf("shape %s not found", id)
		}
		if s.Header().Locked {
			return nil, fmt.Errorf("shape %s is locked", id)
		}
		out = append(out, s)
	}
	return out, nil
}
