// pkg/manager/pnpm.go
package manager

import (
	"context"
	"encoding/json"
	"log"
	"path/filepath"

	"github.com/bin-tools/update-bin/pkg/nodepkg"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// PnpmManager handles binaries installed with `pnpm add -g`
type PnpmManager struct {
	run    shell.Commander
	logger *log.Logger
}

// NewPnpmManager creates a pnpm manager
func NewPnpmManager(cfg *Config) *PnpmManager {
	return &PnpmManager{
		run:    cfg.Runner,
		logger: cfg.Logger,
	}
}

// Kind returns the manager identity
func (m *PnpmManager) Kind() Kind { return KindPnpm }

// Executable returns the pnpm executable name
func (m *PnpmManager) Executable() string { return "pnpm" }

// Available reports whether pnpm is on PATH
func (m *PnpmManager) Available() bool {
	_, err := m.run.LookPath("pnpm")
	return err == nil
}

// Owns asks pnpm for its global bin directory and checks the binary
// path against it. A failing query just means pnpm does not claim it.
func (m *PnpmManager) Owns(ctx context.Context, binPath string) (bool, error) {
	dir, err := m.run.Output(ctx, "pnpm", "bin", "-g")
	if err != nil || dir == "" {
		return false, nil
	}
	return pathWithin(binPath, dir), nil
}

// PackageName scans `pnpm list -g --json` for the package whose "bin"
// entry provides the binary
func (m *PnpmManager) PackageName(ctx context.Context, binName string) string {
	out, err := m.run.Output(ctx, "pnpm", "list", "-g", "--json")
	if err != nil {
		return binName
	}

	// pnpm emits one entry per global store
	var stores []struct {
		Dependencies map[string]struct {
			Path string `json:"path"`
		} `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &stores); err != nil {
		m.logger.Printf("[pnpm] parsing global list: %v", err)
		return binName
	}

	for _, store := range stores {
		for pkg, info := range store.Dependencies {
			if info.Path == "" {
				continue
			}
			manifest, err := nodepkg.ReadManifest(filepath.Join(info.Path, "package.json"))
			if err != nil {
				continue
			}
			if manifest.ProvidesBin(binName) {
				return pkg
			}
		}
	}
	return binName
}

// UpdateCommand returns `pnpm update -g <pkg>`
func (m *PnpmManager) UpdateCommand(pkg string) Command {
	return Command{Name: "pnpm", Args: []string{"update", "-g", pkg}}
}

// InstalledVersion reads the version from pnpm's global listing
func (m *PnpmManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	if version, ok := nodeListVersion(ctx, m.run, "pnpm", pkg); ok {
		return version, nil
	}
	return binaryVersion(ctx, m.run, binName)
}
