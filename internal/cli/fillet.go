package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/shape"
)

// filletCommand creates the fillet command for rounding or beveling the
// corner between two lines.
func (c *CLI) filletCommand() *cobra.Command {
	var (
		aID    string
		bID    string
		radius float64
		distA  float64
		distB  float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "fillet [drawing.json]",
		Short: "Round or bevel the corner between two lines",
		Long: `Round or bevel the corner between two lines.

With --radius, a tangent arc of that radius is inserted and both lines
are trimmed to the tangent points. With --dist-a and --dist-b, a
straight chamfer bevel is inserted instead, set back by the given
distances from the corner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFillet(args[0], aID, bID, radius, distA, distB, output)
		},
	}

	cmd.Flags().StringVar(&aID, "a", "", "ID of the first line")
	cmd.Flags().StringVar(&bID, "b", "", "ID of the second line")
	cmd.Flags().Float64Var(&radius, "radius", 0, "fillet arc radius in millimeters")
	cmd.Flags().Float64Var(&distA, "dist-a", 0, "chamfer setback on the first line")
	cmd.Flags().Float64Var(&distB, "dist-b", 0, "chamfer setback on the second line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output drawing path (default overwrites input)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// chamferCommand creates the chamfer command. It shares the corner
// machinery with fillet but always inserts a straight bevel.
func (c *CLI) chamferCommand() *cobra.Command {
	var (
		aID      string
		bID      string
		distance float64
		distA    float64
		distB    float64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "chamfer [drawing.json]",
		Short: "Bevel the corner between two lines",
		Long: `Bevel the corner between two lines.

A straight bevel segment is inserted between the two lines and both are
trimmed back to its endpoints. Use --distance for an equal setback on
both lines, or --dist-a and --dist-b for asymmetric setbacks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if distance > 0 {
				if distA > 0 || distB > 0 {
					return fmt.Errorf("--distance and --dist-a/--dist-b are mutually exclusive")
				}
				distA, distB = distance, distance
			}
			return c.runFillet(args[0], aID, bID, 0, distA, distB, output)
		},
	}

	cmd.Flags().StringVar(&aID, "a", "", "ID of the first line")
	cmd.Flags().StringVar(&bID, "b", "", "ID of the second line")
	cmd.Flags().Float64Var(&distance, "distance", 0, "setback on both lines in millimeters")
	cmd.Flags().Float64Var(&distA, "dist-a", 0, "setback on the first line")
	cmd.Flags().Float64Var(&distB, "dist-b", 0, "setback on the second line")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output drawing path (default overwrites input)")
	_ = cmd.MarkFlagRequired("a")
	_ = cmd.MarkFlagRequired("b")

	return cmd
}

// runFillet inserts the arc or bevel and trims both inputs.
func (c *CLI) runFillet(input, aID, bID string, radius, distA, distB float64, output string) error {
	if radius <= 0 && (distA <= 0 || distB <= 0) {
		return fmt.Errorf("either --radius or both --dist-a and --dist-b must be positive")
	}
	if radius > 0 && (distA > 0 || distB > 0) {
		return fmt.Errorf("--radius and chamfer distances are mutually exclusive")
	}

	d, snap, err := loadDrawing(input)
	if err != nil {
		return err
	}

	a, err := lineLikeByID(snap, aID)
	if err != nil {
		return err
	}
	b, err := lineLikeByID(snap, bID)
	if err != nil {
		return err
	}

	var inserted shape.Shape
	var trims [2]shape.Update
	if radius > 0 {
		result, ok := modify.Fillet(a, b, radius)
		if !ok {
			return fmt.Errorf("no fillet of radius %v fits between %s and %s", radius, aID, bID)
		}
		inserted = result.Arc
		trims = [2]shape.Update{result.TrimA, result.TrimB}
		printSuccess("Inserted fillet arc %s (radius %.1f)", result.Arc.ID, radius)
	} else {
		result, ok := modify.Chamfer(a, b, distA, distB)
		if !ok {
			return fmt.Errorf("no chamfer (%v, %v) fits between %s and %s", distA, distB, aID, bID)
		}
		inserted = result.Bevel
		trims = [2]shape.Update{result.TrimA, result.TrimB}
		printSuccess("Inserted chamfer bevel %s", result.Bevel.ID)
	}

	if snap, err = snap.ApplyUpdates(trims[:]); err != nil {
		return fmt.Errorf("trim inputs: %w", err)
	}
	if snap, err = snap.Insert(inserted); err != nil {
		return fmt.Errorf("insert corner shape: %w", err)
	}
	return saveDrawing(d, snap, input, output)
}
