package lint

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a config file.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "unknown"
}

var ErrUnknownFormat = errors.New("lint: unknown config format")

// Config selects rules and their options, keyed by rule name:
//
//	rules:
//	  max-depth:
//	    max: 3
//	  no-sequence:
//	    enabled: false
type Config struct {
	Rules map[string]RuleConfig `yaml:"rules" toml:"rules"`
}

// DefaultConfig enables every rule in reg with its default options.
func DefaultConfig(reg *Registry) Config {
	cfg := Config{Rules: make(map[string]RuleConfig)}
	for _, name := range reg.Names() {
		cfg.Rules[name] = RuleConfig{}
	}
	return cfg
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads a config file, choosing the decoder by extension.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("lint: read config: %w", err)
	}
	cfg, err := Parse(data, format)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes an in-memory config.
func Parse(data []byte, format Format) (Config, error) {
	var cfg Config
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("lint: yaml config: %w", err)
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("lint: toml config: %w", err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return cfg, nil
}
