// Package config loads the application configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage backends.
const (
	BackendBadger = "badger"
	BackendSQLite = "sqlite"
)

// Config represents the application configuration.
type Config struct {
	Storage  StorageConfig  `yaml:"storage"`
	Report   ReportConfig   `yaml:"report"`
	Property PropertyConfig `yaml:"property"`

	// ConfigPath is the path the config was loaded from (not serialized).
	ConfigPath string `yaml:"-"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	// Backend is either "badger" or "sqlite".
	Backend string `yaml:"backend"`
	// Dir is the data directory. The sqlite backend stores skycave.db inside
	// it, the badger backend owns the whole directory.
	Dir string `yaml:"dir"`
}

// ReportConfig controls TM30 report output.
type ReportConfig struct {
	// OutputDir is where submitted forms are written.
	OutputDir string `yaml:"output_dir"`
	// PadRows pads the printed table with blank rows up to ten, matching the
	// paper form.
	PadRows bool `yaml:"pad_rows"`
}

// PropertyConfig describes the property on the printed form.
type PropertyConfig struct {
	Name      string `yaml:"name"`
	Signatory string `yaml:"signatory"`
}

// Default returns the default configuration. dataDir becomes the storage
// directory; reports land in the working directory.
func Default(dataDir string) *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendBadger,
			Dir:     dataDir,
		},
		Report: ReportConfig{
			OutputDir: ".",
			PadRows:   true,
		},
	}
}

// Load loads configuration from the given path, or from the first of the
// common locations when path is empty.
func Load(path, dataDir string) (*Config, error) {
	paths := []string{path}
	if path == "" {
		paths = []string{"config.yaml", "skycave.yaml"}
	}
	var (
		data       []byte
		err        error
		loadedPath string
	)
	for _, p := range paths {
		if data, err = os.ReadFile(p); err == nil {
			loadedPath = p
			break
		}
	}
	if err != nil {
		return nil, err
	}
	cfg := Default(dataDir)
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}
	cfg.ConfigPath = loadedPath
	return cfg, nil
}

// Save writes the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
