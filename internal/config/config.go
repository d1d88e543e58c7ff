// Package config loads tool configuration from file, environment, and
// CLI flags.
package config

import (
	"fmt"

	"github.com/streamtype-labs/typetree/pkg/typeparser"
)

// Config file names searched in the working directory.
const (
	ConfigFileName    = "typetree.yaml"
	ConfigFileNameAlt = "typetree.yml"
)

// Default configuration values.
const (
	DefaultOutput   = "tree"
	DefaultMaxDepth = typeparser.DefaultMaxDepth
)

// Output modes accepted by the CLI.
var OutputModes = []string{"tree", "json", "yaml", "label", "canonical"}

// Config holds the resolved tool configuration.
type Config struct {
	Output   string `koanf:"output"`
	MaxDepth int    `koanf:"max_depth"`
	NoColor  bool   `koanf:"no_color"`
	Verbose  bool   `koanf:"verbose"`
}

// Validate checks field values that come from user input.
func (c *Config) Validate() error {
	for _, mode := range OutputModes {
		if c.Output == mode {
			if c.MaxDepth <= 0 {
				return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
			}
			return nil
		}
	}
	return fmt.Errorf("unknown output mode %q (valid: tree, json, yaml, label, canonical)", c.Output)
}
