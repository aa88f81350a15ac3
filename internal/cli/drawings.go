package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	dio "github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/store"
)

// drawingsCommand creates the drawings command group for managing the
// local drawing store.
func (c *CLI) drawingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drawings",
		Short: "Manage the local drawing store",
	}

	cmd.AddCommand(c.drawingsListCommand())
	cmd.AddCommand(c.drawingsShowCommand())
	cmd.AddCommand(c.drawingsImportCommand())
	cmd.AddCommand(c.drawingsExportCommand())
	cmd.AddCommand(c.drawingsDeleteCommand())

	return cmd
}

// withStore opens the drawing store, runs fn, and closes the store.
func (c *CLI) withStore(fn func(store.Store) error) error {
	s, err := c.newStore()
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer s.Close()
	return fn(s)
}

// drawingsListCommand creates the "drawings list" subcommand.
func (c *CLI) drawingsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored drawings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(s store.Store) error {
				names, err := s.List(cmd.Context())
				if err != nil {
					return err
				}
				if len(names) == 0 {
					printInfo("Store is empty")
					printNextStep("Import a drawing", "draftcore drawings import plan.json")
					return nil
				}
				for _, name := range names {
					fmt.Println(name)
				}
				return nil
			})
		},
	}
}

// drawingsShowCommand creates the "drawings show" subcommand.
func (c *CLI) drawingsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a stored drawing's shape summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(s store.Store) error {
				d, err := s.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printKeyValue("Name", d.Name)
				printKeyValue("Shapes", fmt.Sprintf("%d", len(d.Shapes)))
				counts := countKinds(d)
				kinds := make([]string, 0, len(counts))
				for kind := range counts {
					kinds = append(kinds, kind)
				}
				sort.Strings(kinds)
				for _, kind := range kinds {
					printDetail("%-10s %d", kind, counts[kind])
				}
				return nil
			})
		},
	}
}

// drawingsImportCommand creates the "drawings import" subcommand.
func (c *CLI) drawingsImportCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import [file.json]",
		Short: "Import a drawing file into the store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dio.ImportDrawing(args[0])
			if err != nil {
				return err
			}
			if name != "" {
				d.Name = name
			}
			return c.withStore(func(s store.Store) error {
				if err := s.Save(cmd.Context(), d); err != nil {
					return err
				}
				printSuccess("Imported %q (%d shapes)", d.Name, len(d.Shapes))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "store under this name instead of the drawing's own")

	return cmd
}

// drawingsExportCommand creates the "drawings export" subcommand.
func (c *CLI) drawingsExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [name]",
		Short: "Export a stored drawing to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(s store.Store) error {
				d, err := s.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				path := output
				if path == "" {
					path = args[0] + ".json"
				}
				if err := dio.ExportDrawing(d, path); err != nil {
					return err
				}
				printFile(path)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default <name>.json)")

	return cmd
}

// drawingsDeleteCommand creates the "drawings delete" subcommand.
func (c *CLI) drawingsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a stored drawing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(func(s store.Store) error {
				if err := s.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				printSuccess("Deleted %q", args[0])
				return nil
			})
		},
	}
}

// countKinds tallies the shapes of a drawing by kind.
func countKinds(d *dio.Drawing) map[string]int {
	counts := make(map[string]int)
	for _, s := range d.Shapes {
		counts[string(s.Kind())]++
	}
	return counts
}
