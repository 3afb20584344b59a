package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/cpslab/papersite/internal/basepath"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".papersite.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PAPERSITE_*). Nested keys use a double
// underscore: PAPERSITE_SERVER__PORT -> server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider("PAPERSITE_", ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, "PAPERSITE_"))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.Site.Location, "/") {
		return fmt.Errorf("site.location %q must start with /", c.Site.Location)
	}

	if c.Source.URL != "" {
		u, err := url.Parse(c.Source.URL)
		if err != nil {
			return fmt.Errorf("invalid source.url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("source.url %q must be an http or https URL", c.Source.URL)
		}
	} else if c.Site.Root == "" {
		return fmt.Errorf("site.root is required when source.url is not set")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Build.OutputDir == "" {
		return fmt.Errorf("build.output_dir is required")
	}

	return nil
}

// BasePath returns the deployment base path derived from Site.Location.
func (c *Config) BasePath() string {
	return basepath.FromLocation(c.Site.Location)
}
