// Package config holds the bpx application configuration: width tokens,
// style classes and the named breakpoint tables used by the playground.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var embeddedDefault []byte

// Config is the merged application configuration.
type Config struct {
	Name    string               `json:"name" yaml:"name"`
	Version string               `json:"version" yaml:"version"`
	Tokens  map[string]int       `json:"tokens,omitempty" yaml:"tokens,omitempty"`
	Classes map[string]ClassSpec `json:"classes,omitempty" yaml:"classes,omitempty"`
	// Tables maps a table name to its definition in any loader syntax.
	Tables map[string]string `json:"tables,omitempty" yaml:"tables,omitempty"`
}

// ClassSpec describes a named style class. Unset fields leave the style alone.
type ClassSpec struct {
	Padding    []int  `json:"padding,omitempty" yaml:"padding,omitempty"`
	Margin     []int  `json:"margin,omitempty" yaml:"margin,omitempty"`
	MaxWidth   int    `json:"max_width,omitempty" yaml:"max_width,omitempty"`
	Foreground string `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	Bold       bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Faint      bool   `json:"faint,omitempty" yaml:"faint,omitempty"`
	Border     string `json:"border,omitempty" yaml:"border,omitempty"`
	Align      string `json:"align,omitempty" yaml:"align,omitempty"`
	// Extends lists other classes (named or utility) applied first.
	Extends []string `json:"extends,omitempty" yaml:"extends,omitempty"`
}

// DefaultYAML returns a copy of the embedded default configuration.
func DefaultYAML() []byte {
	return append([]byte(nil), embeddedDefault...)
}

// Default parses the embedded configuration.
func Default() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(embeddedDefault, &cfg); err != nil {
		return cfg, fmt.Errorf("decode embedded default config: %w", err)
	}
	return cfg, nil
}

// Load returns the embedded defaults merged with the file at path. An empty
// path returns the defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	var user Config
	if err := yaml.Unmarshal(data, &user); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}
	return Merge(cfg, user), nil
}

// Merge overlays override onto base. Map entries are merged key by key.
func Merge(base, override Config) Config {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Version != "" {
		out.Version = override.Version
	}
	out.Tokens = mergeMap(base.Tokens, override.Tokens)
	out.Classes = mergeMap(base.Classes, override.Classes)
	out.Tables = mergeMap(base.Tables, override.Tables)
	return out
}

// TableNames returns the configured table names in sorted order.
func (c Config) TableNames() []string {
	names := make([]string, 0, len(c.Tables))
	for name := range c.Tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mergeMap[V any](base, override map[string]V) map[string]V {
	out := make(map[string]V, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
