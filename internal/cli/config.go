package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDBPath overrides the configured storage path when set.
const EnvDBPath = "ROUTINELY_DB"

// Config is the on-disk configuration, read from
// ~/.routinely/config.yaml by default. Every field has a working
// default; a missing file is not an error.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Format  string        `yaml:"format"` // default output format
}

// StorageConfig selects and locates the persistence driver.
type StorageConfig struct {
	Driver string `yaml:"driver"` // "sqlite" | "badger" | "memory"
	Path   string `yaml:"path"`   // database file (sqlite) or directory (badger)
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Driver: "sqlite",
			Path:   filepath.Join(configDir(), "routinely.db"),
		},
		Format: "text",
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".routinely"
	}
	return filepath.Join(home, ".routinely")
}

// LoadConfig reads the config file at path, layering it over the
// defaults. A missing file yields the defaults; a malformed file is an
// error. The ROUTINELY_DB environment variable, when set, overrides the
// storage path last.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if p := os.Getenv(EnvDBPath); p != "" {
		cfg.Storage.Path = p
	}
	return cfg, nil
}
