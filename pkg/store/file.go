package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/draftwise/draftcore/pkg/errors"
	"github.com/draftwise/draftcore/pkg/io"
	"github.com/draftwise/draftcore/pkg/observability"
)

// FileStore keeps one JSON file per drawing under a root directory.
// The drawing name is the file name without the .json suffix.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store rooted at dir.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create store directory %s", dir)
	}
	return &FileStore{dir: dir}, nil
}

// Load retrieves a drawing by name.
func (s *FileStore) Load(ctx context.Context, name string) (d *io.Drawing, err error) {
	start := time.Now()
	defer func() {
		shapes := 0
		if d != nil {
			shapes = len(d.Shapes)
		}
		observability.Store().OnLoad(ctx, "file", name, shapes, time.Since(start), err)
	}()

	if err = errors.ValidateName(name); err != nil {
		return nil, err
	}
	d, err = io.ImportDrawing(s.path(name))
	if err != nil {
		if errors.GetCode(err) == errors.ErrCodeFileNotFound {
			return nil, errors.New(errors.ErrCodeDrawingNotFound, "drawing %q not found", name)
		}
		return nil, err
	}
	return d, nil
}

// Save stores a drawing under its name.
// The write goes through a temp file and rename so a crash mid-write
// never leaves a truncated drawing behind.
func (s *FileStore) Save(ctx context.Context, d *io.Drawing) (err error) {
	start := time.Now()
	defer func() {
		observability.Store().OnSave(ctx, "file", d.Name, len(d.Shapes), time.Since(start), err)
	}()

	if err = errors.ValidateName(d.Name); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, ".save-*")
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "create temp file")
	}
	tmpPath := tmp.Name()
	if err = io.WriteDrawing(d, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeStore, err, "write drawing %q", d.Name)
	}
	if err = os.Rename(tmpPath, s.path(d.Name)); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(errors.ErrCodeStore, err, "store drawing %q", d.Name)
	}
	return nil
}

// List returns the names of all stored drawings, sorted.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list drawings")
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a drawing by name.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateName(name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return errors.New(errors.ErrCodeDrawingNotFound, "drawing %q not found", name)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStore, err, "delete drawing %q", name)
	}
	return nil
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

var _ Store = (*FileStore)(nil)
