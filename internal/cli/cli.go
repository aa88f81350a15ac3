// Package cli implements the draftcore command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/draftwise/draftcore/pkg/buildinfo"
	"github.com/draftwise/draftcore/pkg/cache"
	"github.com/draftwise/draftcore/pkg/pipeline"
	"github.com/draftwise/draftcore/pkg/store"
)

// appName is the application name used for directories and display.
const appName = "draftcore"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config
}

// New creates a new CLI instance with a default logger and the user
// configuration loaded from disk (defaults if no config file exists).
func New(w io.Writer, level log.Level) *CLI {
	cfg, err := LoadConfig("")
	if err != nil {
		cfg = DefaultConfig()
	}
	c := &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: cfg,
	}
	if err != nil {
		c.Logger.Warn("ignoring invalid config file", "err", err)
	}
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "draftcore",
		Short:        "Draftcore edits and analyzes 2D construction drawings",
		Long:         `Draftcore is a CLI tool for the geometric core of 2D drafting: transforming shapes, trimming and joining walls, detecting room contours, and rendering plans.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.transformCommand())
	root.AddCommand(c.trimCommand())
	root.AddCommand(c.filletCommand())
	root.AddCommand(c.chamferCommand())
	root.AddCommand(c.offsetCommand())
	root.AddCommand(c.joinCommand())
	root.AddCommand(c.detectCommand())
	root.AddCommand(c.connectedCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.drawingsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := c.newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func (c *CLI) newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := c.cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// newStore creates the drawing store for CLI use.
func (c *CLI) newStore() (store.Store, error) {
	dir := c.Config.StoreDir
	if dir == "" {
		var err error
		dir, err = dataDir()
		if err != nil {
			return nil, err
		}
	}
	return store.NewFileStore(dir)
}

// cacheDir returns the cache directory, preferring the configured path
// and falling back to the XDG standard (~/.cache/draftcore/).
func (c *CLI) cacheDir() (string, error) {
	if c.Config.CacheDir != "" {
		return c.Config.CacheDir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// dataDir returns the drawing store directory using the XDG standard
// (~/.local/share/draftcore/drawings/).
func dataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, appName, "drawings"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", appName, "drawings"), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
