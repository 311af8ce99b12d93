// Package akconfig holds the interpreter's ambient constants and the
// optional ak.config.yaml loader (an embedding-application override for
// the module search root named in §4.7/§6).
package akconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// FileExt is the source file extension of ak modules (the module loader
// appends the same ".ak" to a joined module path; the CLI runs whatever
// path it is given, whatever its extension).
const FileExt = ".ak"

// DefaultRoot is the module search root used when no ak.config.yaml is
// present (§6: "examples/<segments joined by />.ak").
const DefaultRoot = "examples"

// Version is the interpreter's CLI-reported version.
const Version = "0.1.0"

// Config is the shape of an optional ak.config.yaml file.
type Config struct {
	ModuleRoot string `yaml:"module_root"`
}

// Load reads path if it exists; a missing file is not an error and yields
// the default configuration.
func Load(path string) (*Config, error) {
	cfg := &Config{ModuleRoot: DefaultRoot}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.ModuleRoot == "" {
		cfg.ModuleRoot = DefaultRoot
	}
	return cfg, nil
}
