package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/shape"
)

// joinCommand creates the join command for mitering structural members.
func (c *CLI) joinCommand() *cobra.Command {
	var (
		aID    string
		bID    string
		id     string
		tol    float64
		output string
	)

	cmd := &cobra.Command{
		Use:   "join [drawing.json]",
		Short: "Miter walls and beams at shared corners",
		Long: `Miter walls and beams at shared corners.

With --a and --b, the two members are joined explicitly: each gets a
miter cap angled toward the other at their shared endpoint. With --id,
every member whose endpoint lies within the tolerance of the named
shape's endpoints is rejoined, which repairs corners after a move.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runJoin(args[0], aID, bID, id, tol, output)
		},
	}

	cmd.Flags().StringVar(&aID, "a", "", "ID of the first member")
	cmd.Flags().StringVar(&bID, "b", "", "ID of the second member")
	cmd.Flags().StringVar(&id, "id", "", "rejoin every member around this shape")
	cmd.Flags().Float64Var(&tol, "tolerance", c.Config.MiterTolerance, "endpoint match tolerance in millimeters")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output drawing path (default overwrites input)")

	return cmd
}

// runJoin applies an explicit pair join or a neighborhood rejoin.
func (c *CLI) runJoin(input, aID, bID, id string, tol float64, output string) error {
	d, snap, err := loadDrawing(input)
	if err != nil {
		return err
	}

	var updates []shape.Update
	switch {
	case aID != "" && bID != "":
		a, err := structuralByID(snap, aID)
		if err != nil {
			return err
		}
		b, err := structuralByID(snap, bID)
		if err != nil {
			return err
		}
		pair, ok := modify.MiterJoin(a, b)
		if !ok {
			return fmt.Errorf("members %s and %s share no endpoint", aID, bID)
		}
		updates = pair[:]
		printSuccess("Mitered %s and %s", aID, bID)

	case id != "":
		if _, err := structuralByID(snap, id); err != nil {
			return err
		}
		updates = modify.RecalculateMiterJoins(shape.ID(id), snap.Shapes(), tol)
		if len(updates) == 0 {
			printInfo("No joins to recalculate around %s", id)
			return nil
		}
		printSuccess("Recalculated %d member caps around %s", len(updates), id)

	default:
		return fmt.Errorf("either --a and --b, or --id is required")
	}

	if snap, err = snap.ApplyUpdates(updates); err != nil {
		return fmt.Errorf("apply joins: %w", err)
	}
	return saveDrawing(d, snap, input, output)
}
