// pkg/manager/registry.go
package manager

import (
	"io"
	"log"
	"os"

	"github.com/bin-tools/update-bin/pkg/shell"
)

// Registry holds the closed set of supported managers
type Registry struct {
	managers map[Kind]Manager
}

// NewRegistry constructs every supported manager. A nil config gets
// defaults: real subprocess runner, discarded logs, real home dir.
func NewRegistry(cfg *Config) *Registry {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Logger == nil {
		if cfg.Debug {
			cfg.Logger = log.New(os.Stderr, "", log.LstdFlags)
		} else {
			cfg.Logger = log.New(io.Discard, "", 0)
		}
	}
	if cfg.HomeDir == "" {
		cfg.HomeDir, _ = os.UserHomeDir()
	}
	if cfg.Runner == nil {
		cfg.Runner = shell.NewRunner(cfg.Logger, true)
	}

	r := &Registry{managers: make(map[Kind]Manager)}
	for _, m := range []Manager{
		NewBrewManager(cfg),
		NewBunManager(cfg),
		NewCargoManager(cfg),
		NewPnpmManager(cfg),
		NewNpmManager(cfg),
		NewYarnManager(cfg),
	} {
		r.managers[m.Kind()] = m
	}
	return r
}

// Get returns the manager for a kind
func (r *Registry) Get(kind Kind) (Manager, bool) {
	m, ok := r.managers[kind]
	return m, ok
}

// Ordered returns managers in the given probe order. An empty order
// falls back to DefaultPriority.
func (r *Registry) Ordered(priority []Kind) []Manager {
	if len(priority) == 0 {
		priority = DefaultPriority
	}
	out := make([]Manager, 0, len(priority))
	for _, k := range priority {
		if m, ok := r.managers[k]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Available returns the kinds whose executables are present on PATH
func (r *Registry) Available() []Kind {
	out := []Kind{}
	for _, k := range DefaultPriority {
		if m, ok := r.managers[k]; ok && m.Available() {
			out = append(out, k)
		}
	}
	return out
}
