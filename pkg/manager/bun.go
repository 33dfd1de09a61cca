// pkg/manager/bun.go
package manager

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bin-tools/update-bin/pkg/nodepkg"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// BunManager handles binaries installed with `bun add -g`
type BunManager struct {
	run     shell.Commander
	logger  *log.Logger
	homeDir string
}

// NewBunManager creates a Bun manager
func NewBunManager(cfg *Config) *BunManager {
	return &BunManager{
		run:     cfg.Runner,
		logger:  cfg.Logger,
		homeDir: cfg.HomeDir,
	}
}

// Kind returns the manager identity
func (m *BunManager) Kind() Kind { return KindBun }

// Executable returns the bun executable name
func (m *BunManager) Executable() string { return "bun" }

// Available reports whether bun is on PATH
func (m *BunManager) Available() bool {
	_, err := m.run.LookPath("bun")
	return err == nil
}

// Owns checks for bun's install root in the binary path
func (m *BunManager) Owns(ctx context.Context, binPath string) (bool, error) {
	if runtime.GOOS == "windows" {
		lower := strings.ToLower(filepath.ToSlash(binPath))
		return strings.Contains(lower, "/appdata/roaming/bun/"), nil
	}
	if root := os.Getenv("BUN_INSTALL"); root != "" && pathWithin(binPath, root) {
		return true, nil
	}
	return pathContains(binPath, "/.bun/"), nil
}

// PackageName scans bun's global install manifest for the package whose
// "bin" entry provides the binary
func (m *BunManager) PackageName(ctx context.Context, binName string) string {
	if pkg, ok := nodepkg.FindOwner(m.globalDir(), binName); ok {
		return pkg
	}
	return binName
}

// UpdateCommand returns `bun update -g <pkg>`
func (m *BunManager) UpdateCommand(pkg string) Command {
	return Command{Name: "bun", Args: []string{"update", "-g", pkg}}
}

// InstalledVersion reads the version from bun's global listing
func (m *BunManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	if version, ok := nodeListVersion(ctx, m.run, "bun", pkg); ok {
		return version, nil
	}
	return binaryVersion(ctx, m.run, binName)
}

// globalDir is where bun keeps the global package.json and node_modules
func (m *BunManager) globalDir() string {
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "bun")
		}
	}
	root := os.Getenv("BUN_INSTALL")
	if root == "" {
		root = filepath.Join(m.homeDir, ".bun")
	}
	return filepath.Join(root, "install", "global")
}
