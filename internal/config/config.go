// Package config loads REPL/CLI presentation settings from an optional
// .loxrc.yaml file, falling back to built-in defaults when the file is
// absent or no path is given.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the REPL's presentation and behavior knobs.
type Config struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	License string `yaml:"license"`
	Line    string `yaml:"line"`
	Prompt  string `yaml:"prompt"`
	Color   bool   `yaml:"color"`
}

// Default returns the built-in banner, version, and prompt settings.
func Default() Config {
	return Config{
		Banner: `
    __
   / /  ___ __
  / /__/ _ \\ \/
 /____/\___/_/\_\
`,
		Version: "v0.1.0",
		Author:  "koddsson",
		License: "MIT",
		Line:    "----------------------------------------------------------------",
		Prompt:  "lox >>> ",
		Color:   true,
	}
}

// Load reads path as YAML and overlays it on Default(). A missing file is
// not an error — Load silently returns the defaults, since .loxrc.yaml is
// optional. Any other read or decode error is returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
