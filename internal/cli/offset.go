package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/shape"
)

// offsetCommand creates the offset command for parallel-copying a shape.
func (c *CLI) offsetCommand() *cobra.Command {
	var (
		id       string
		distance float64
		toward   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "offset [drawing.json]",
		Short: "Insert a parallel copy of a shape at a distance",
		Long: `Insert a parallel copy of a shape at a distance.

Lines, walls, and beams shift sideways; circles and arcs change radius;
rectangles and closed polylines grow or shrink. The cursor point picks
which side of the original the copy lands on. The copy carries a fresh
identity; the original is untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cursor, err := parsePoint(toward)
			if err != nil {
				return err
			}

			d, snap, err := loadDrawing(args[0])
			if err != nil {
				return err
			}
			s, ok := snap.Get(shape.ID(id))
			if !ok {
				return fmt.Errorf("shape %s not found", id)
			}

			parallel, ok := modify.Offset(s, distance, cursor)
			if !ok {
				return fmt.Errorf("shape %s (%s) cannot offset by %v", id, s.Kind(), distance)
			}
			if snap, err = snap.Insert(parallel); err != nil {
				return fmt.Errorf("insert offset copy: %w", err)
			}

			printSuccess("Inserted offset copy %s at distance %.1f", parallel.Header().ID, distance)
			return saveDrawing(d, snap, args[0], output)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "ID of the shape to offset")
	cmd.Flags().Float64Var(&distance, "distance", 0, "offset distance in millimeters")
	cmd.Flags().StringVar(&toward, "toward", "", "cursor point \"x,y\" picking the offset side")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output drawing path (default overwrites input)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("distance")
	_ = cmd.MarkFlagRequired("toward")

	return cmd
}
