// Package store persists named drawings.
//
// Two backends are provided:
//   - file: one JSON file per drawing under a root directory, for CLI use
//   - mongo: a MongoDB collection, for server deployments
//
// Both backends speak the same Store interface and emit storage events
// through pkg/observability.
//
// # Usage
//
//	st, err := store.NewFileStore("~/.local/share/draftcore/drawings")
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
//
//	d, err := st.Load(ctx, "ground-floor")
package store

import (
	"context"

	"github.com/draftwise/draftcore/pkg/io"
)

// Store is the interface for drawing storage backends.
type Store interface {
	// Load retrieves a drawing by name.
	Load(ctx context.Context, name string) (*io.Drawing, error)

	// Save stores a drawing under its name, replacing any previous
	// version.
	Save(ctx context.Context, d *io.Drawing) error

	// List returns the names of all stored drawings, sorted.
	List(ctx context.Context) ([]string, error)

	// Delete removes a drawing by name.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close() error
}
