// Package config loads optional .unitycheck.yaml settings.
// Flags win over file values; file values win over defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory.
const ConfigFileName = ".unitycheck.yaml"

// Config holds the tool's settings.
type Config struct {
	Format  string `yaml:"format"`   // "auto", "terminal", "plain", "json"
	Theme   string `yaml:"theme"`    // "default", "mono"
	NoColor bool   `yaml:"no_color"` // force mono theme
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format: "auto",
		Theme:  "default",
	}
}

// Load reads ConfigFileName from dir, falling back to defaults when the file
// is absent or malformed. Read errors other than not-exist produce a warning
// on stderr; a broken config never blocks a run.
func Load(dir string) Config {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: reading %s: %v. Using defaults.\n", ConfigFileName, err)
		}
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: parsing %s: %v. Using defaults.\n", ConfigFileName, err)
		return cfg
	}

	if fileCfg.Format != "" {
		cfg.Format = fileCfg.Format
	}
	if fileCfg.Theme != "" {
		cfg.Theme = fileCfg.Theme
	}
	cfg.NoColor = fileCfg.NoColor
	return cfg
}
