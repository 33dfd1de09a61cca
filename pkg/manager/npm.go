// pkg/manager/npm.go
package manager

import (
	"context"
	"encoding/json"
	"log"
	"path/filepath"
	"runtime"

	"github.com/bin-tools/update-bin/pkg/nodepkg"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// NpmManager handles binaries installed with `npm install -g`
type NpmManager struct {
	run    shell.Commander
	logger *log.Logger
}

// NewNpmManager creates an npm manager
func NewNpmManager(cfg *Config) *NpmManager {
	return &NpmManager{
		run:    cfg.Runner,
		logger: cfg.Logger,
	}
}

// Kind returns the manager identity
func (m *NpmManager) Kind() Kind { return KindNpm }

// Executable returns the npm executable name
func (m *NpmManager) Executable() string { return "npm" }

// Available reports whether npm is on PATH
func (m *NpmManager) Available() bool {
	_, err := m.run.LookPath("npm")
	return err == nil
}

// Owns checks whether the binary sits in the same directory as the npm
// executable itself, which is where npm links global binaries.
func (m *NpmManager) Owns(ctx context.Context, binPath string) (bool, error) {
	npmPath, err := m.run.LookPath("npm")
	if err != nil {
		return false, nil
	}
	return pathWithin(binPath, filepath.Dir(npmPath)), nil
}

// PackageName scans the global node_modules for the package whose "bin"
// entry provides the binary
func (m *NpmManager) PackageName(ctx context.Context, binName string) string {
	out, err := m.run.Output(ctx, "npm", "list", "-g", "--json", "--depth=0")
	if err != nil {
		return binName
	}

	var tree struct {
		Dependencies map[string]json.RawMessage `json:"dependencies"`
	}
	if err := json.Unmarshal([]byte(out), &tree); err != nil {
		m.logger.Printf("[npm] parsing global list: %v", err)
		return binName
	}

	modulesDir := m.globalNodeModules()
	if modulesDir == "" {
		return binName
	}

	for pkg := range tree.Dependencies {
		manifest, err := nodepkg.ReadManifest(filepath.Join(modulesDir, pkg, "package.json"))
		if err != nil {
			continue
		}
		if manifest.ProvidesBin(binName) {
			return pkg
		}
	}
	return binName
}

// UpdateCommand returns `npm update -g <pkg>`
func (m *NpmManager) UpdateCommand(pkg string) Command {
	return Command{Name: "npm", Args: []string{"update", "-g", pkg}}
}

// InstalledVersion reads the version from npm's global listing
func (m *NpmManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	if version, ok := nodeListVersion(ctx, m.run, "npm", pkg); ok {
		return version, nil
	}
	return binaryVersion(ctx, m.run, binName)
}

// globalNodeModules derives the global node_modules directory from the
// npm executable's location: <prefix>/lib/node_modules on Unix,
// <prefix>\node_modules on Windows.
func (m *NpmManager) globalNodeModules() string {
	npmPath, err := m.run.LookPath("npm")
	if err != nil {
		return ""
	}

	prefix := filepath.Dir(filepath.Dir(npmPath))
	if runtime.GOOS == "windows" {
		return filepath.Join(filepath.Dir(npmPath), "node_modules")
	}
	return filepath.Join(prefix, "lib", "node_modules")
}
