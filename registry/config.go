package registry

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the generator configuration read from glgen.toml.
type Config struct {
	Registry   string   `toml:"registry"`
	API        string   `toml:"api"`
	Version    string   `toml:"version"`
	Profile    string   `toml:"profile"`
	Extensions []string `toml:"extensions"`
	Out        string   `toml:"out"`

	// Enum groups are emitted in config order, each under its section
	// comment, so regeneration is diff-stable.
	Enums []EnumGroup `toml:"enums"`

	// Command groups are the full entry point surface, in emission
	// order. Groups become the blank-line separated runs of the native
	// struct.
	Commands []CommandGroup `toml:"commands"`

	// Overrides force a Go type for parameters whose C type is too
	// weak, like buffer offsets declared as const void *.
	Overrides []Override `toml:"override"`
}

// EnumGroup is one commented section of the emitted const block.
type EnumGroup struct {
	Section string   `toml:"section"`
	Names   []string `toml:"names"`
}

// CommandGroup is one functional run of commands.
type CommandGroup struct {
	Section string   `toml:"section"`
	Names   []string `toml:"names"`
}

// Override pins one command parameter to a Go type.
type Override struct {
	Command string `toml:"command"`
	Param   string `toml:"param"`
	Type    string `toml:"type"`
}

// LoadConfig reads and validates glgen.toml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("registry: parsing %s: %w", path, err)
	}
	if cfg.Registry == "" || cfg.API == "" || cfg.Version == "" || cfg.Out == "" {
		return nil, fmt.Errorf("registry: %s: registry, api, version and out are required", path)
	}
	if len(cfg.Commands) == 0 {
		return nil, fmt.Errorf("registry: %s: no commands configured", path)
	}
	return &cfg, nil
}

func (c *Config) overrideMap() map[string]string {
	m := make(map[string]string, len(c.Overrides))
	for _, o := range c.Overrides {
		m[o.Command+"."+o.Param] = o.Type
	}
	return m
}
