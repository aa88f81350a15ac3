package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/shape"
)

// connectedCommand creates the connected command for tracing the shapes
// reachable from a starting shape through touching endpoints.
func (c *CLI) connectedCommand() *cobra.Command {
	var (
		id  string
		tol float64
	)

	cmd := &cobra.Command{
		Use:   "connected [drawing.json]",
		Short: "List the shapes connected to a starting shape",
		Long: `List the shapes connected to a starting shape.

Two shapes are connected when an endpoint of one lies within the
tolerance of an endpoint of the other. The search spreads outward from
the starting shape, so the result is the whole chain the shape belongs
to, such as the walls of one building wing.

Without --id an interactive picker opens to choose the starting shape.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, snap, err := loadDrawing(args[0])
			if err != nil {
				return err
			}
			if id == "" {
				if snap.Len() == 0 {
					printInfo("Drawing is empty")
					return nil
				}
				picked, err := pickShape(args[0], snap)
				if err != nil {
					return err
				}
				id = string(picked.Header().ID)
			}
			if _, ok := snap.Get(shape.ID(id)); !ok {
				return fmt.Errorf("shape %s not found", id)
			}

			ids := snap.FindConnected(shape.ID(id), tol)
			printSuccess("%d shapes connected to %s", len(ids), id)
			for _, connectedID := range ids {
				s, _ := snap.Get(connectedID)
				printDetail("%s (%s)", connectedID, s.Kind())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "ID of the starting shape (interactive picker if omitted)")
	cmd.Flags().Float64Var(&tol, "tolerance", c.Config.ConnectTolerance, "endpoint match tolerance in millimeters")

	return cmd
}
