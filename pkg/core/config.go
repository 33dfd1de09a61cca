// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bin-tools/update-bin/pkg/manager"
)

// Config holds update-bin configuration
type Config struct {
	Priority []string `yaml:"priority"` // Probe order override
	Debug    bool     `yaml:"debug"`
	Plain    bool     `yaml:"plain"` // Disable styled subprocess relay
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults; UPDATE_BIN_CONFIG overrides the default location.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigPath()
	}
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if _, err := cfg.PriorityKinds(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, nil
}

// PriorityKinds validates and converts the configured probe order.
// An empty list means manager.DefaultPriority.
func (c *Config) PriorityKinds() ([]manager.Kind, error) {
	kinds := make([]manager.Kind, 0, len(c.Priority))
	for _, name := range c.Priority {
		kind, err := manager.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func defaultConfigPath() string {
	if path := os.Getenv("UPDATE_BIN_CONFIG"); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "update-bin", "config.yaml")
}
