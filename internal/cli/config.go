package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/draftwise/draftcore/pkg/document"
	"github.com/draftwise/draftcore/pkg/modify"
)

// Config holds user preferences loaded from the TOML config file at
// ~/.config/draftcore/config.toml (or $XDG_CONFIG_HOME/draftcore/).
// Every field has a default, so a missing file is not an error.
type Config struct {
	// View is the default render view: plan or topology.
	View string `toml:"view"`

	// Formats is the default render format list.
	Formats []string `toml:"formats"`

	// CacheDir overrides the artifact cache directory.
	CacheDir string `toml:"cache_dir"`

	// StoreDir overrides the drawing store directory.
	StoreDir string `toml:"store_dir"`

	// ConnectTolerance is the endpoint distance within which shapes
	// count as connected.
	ConnectTolerance float64 `toml:"connect_tolerance"`

	// MiterTolerance is the endpoint distance within which structural
	// members count as join partners.
	MiterTolerance float64 `toml:"miter_tolerance"`

	Serve ServeConfig `toml:"serve"`
	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

// ServeConfig holds HTTP server settings.
type ServeConfig struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// CacheScope prefixes every cache key, isolating deployments that
	// share one Redis instance.
	CacheScope string `toml:"cache_scope"`
}

// RedisConfig holds optional Redis cache settings for serve mode.
// An empty Addr disables Redis; the file cache is used instead.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// MongoConfig holds optional MongoDB store settings for serve mode.
// An empty URI disables MongoDB; the file store is used instead.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		View:             "plan",
		Formats:          []string{"svg"},
		ConnectTolerance: document.DefaultConnectTolerance,
		MiterTolerance:   modify.DefaultMiterTolerance,
		Serve:            ServeConfig{Addr: ":8080"},
	}
}

// LoadConfig reads the config file at path. An empty path means the
// default location; a missing file yields the defaults without error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return DefaultConfig(), nil
		}
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return DefaultConfig(), err
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard.
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
