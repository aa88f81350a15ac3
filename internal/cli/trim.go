package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/modify"
	"github.com/draftwise/draftcore/pkg/shape"
)

// trimCommand creates the trim command for cutting and extending line
// shapes against an edge.
func (c *CLI) trimCommand() *cobra.Command {
	var (
		targetID string
		edgeID   string
		pickStr  string
		extend   bool
		both     bool
		output   string
	)

	cmd := &cobra.Command{
		Use:   "trim [drawing.json]",
		Short: "Trim or extend a shape against a cutting edge",
		Long: `Trim or extend a shape against a cutting edge.

Trim shortens the target at its intersection with the edge, removing
the side nearest the pick point. Extend stretches the target's closer
endpoint onto the edge instead. With --both, both shapes extend to
their mutual intersection and form a corner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTrim(args[0], targetID, edgeID, pickStr, extend, both, output)
		},
	}

	cmd.Flags().StringVar(&targetID, "target", "", "ID of the shape to trim or extend")
	cmd.Flags().StringVar(&edgeID, "edge", "", "ID of the cutting or boundary edge")
	cmd.Flags().StringVar(&pickStr, "pick", "", "pick point \"x,y\" selecting the side to remove (trim only)")
	cmd.Flags().BoolVar(&extend, "extend", false, "extend the target to the edge instead of trimming")
	cmd.Flags().BoolVar(&both, "both", false, "extend both shapes to their intersection")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output drawing path (default overwrites input)")
	_ = cmd.MarkFlagRequired("target")
	_ = cmd.MarkFlagRequired("edge")

	return cmd
}

// runTrim dispatches to the trim or extend engine and applies the result.
func (c *CLI) runTrim(input, targetID, edgeID, pickStr string, extend, both bool, output string) error {
	d, snap, err := loadDrawing(input)
	if err != nil {
		return err
	}

	target, err := lineLikeByID(snap, targetID)
	if err != nil {
		return err
	}
	edge, err := lineLikeByID(snap, edgeID)
	if err != nil {
		return err
	}

	var updates []shape.Update
	switch {
	case both:
		pair, ok := modify.ExtendBoth(target, edge)
		if !ok {
			return fmt.Errorf("shapes %s and %s do not intersect when extended", targetID, edgeID)
		}
		updates = pair[:]
		printSuccess("Extended %s and %s to a corner", targetID, edgeID)

	case extend:
		u, ok := modify.ExtendToBoundary(target, edge)
		if !ok {
			return fmt.Errorf("shape %s cannot reach %s", targetID, edgeID)
		}
		updates = []shape.Update{u}
		printSuccess("Extended %s to %s", targetID, edgeID)

	default:
		if pickStr == "" {
			return fmt.Errorf("--pick is required for trimming")
		}
		pick, err := parsePoint(pickStr)
		if err != nil {
			return err
		}
		u, ok := modify.TrimAtEdge(target, edge, pick)
		if !ok {
			return fmt.Errorf("edge %s does not cross shape %s", edgeID, targetID)
		}
		updates = []shape.Update{u}
		printSuccess("Trimmed %s at %s", targetID, edgeID)
	}

	if snap, err = snap.ApplyUpdates(updates); err != nil {
		return fmt.Errorf("apply trim: %w", err)
	}
	return saveDrawing(d, snap, input, output)
}
