// pkg/manager/yarn.go
package manager

import (
	"context"
	"log"

	"github.com/bin-tools/update-bin/pkg/nodepkg"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// YarnManager handles binaries installed with `yarn global add`
type YarnManager struct {
	run    shell.Commander
	logger *log.Logger
}

// NewYarnManager creates a yarn manager
func NewYarnManager(cfg *Config) *YarnManager {
	return &YarnManager{
		run:    cfg.Runner,
		logger: cfg.Logger,
	}
}

// Kind returns the manager identity
func (m *YarnManager) Kind() Kind { return KindYarn }

// Executable returns the yarn executable name
func (m *YarnManager) Executable() string { return "yarn" }

// Available reports whether yarn is on PATH
func (m *YarnManager) Available() bool {
	_, err := m.run.LookPath("yarn")
	return err == nil
}

// Owns asks yarn for its global bin directory and checks the binary
// path against it
func (m *YarnManager) Owns(ctx context.Context, binPath string) (bool, error) {
	dir, err := m.run.Output(ctx, "yarn", "global", "bin")
	if err != nil || dir == "" {
		return false, nil
	}
	return pathWithin(binPath, dir), nil
}

// PackageName scans yarn's global install directory for the package
// whose "bin" entry provides the binary
func (m *YarnManager) PackageName(ctx context.Context, binName string) string {
	globalDir, err := m.run.Output(ctx, "yarn", "global", "dir")
	if err != nil || globalDir == "" {
		return binName
	}
	if pkg, ok := nodepkg.FindOwner(globalDir, binName); ok {
		return pkg
	}
	return binName
}

// UpdateCommand returns `yarn global upgrade <pkg>`
func (m *YarnManager) UpdateCommand(pkg string) Command {
	return Command{Name: "yarn", Args: []string{"global", "upgrade", pkg}}
}

// InstalledVersion falls back to the binary's own version output; yarn
// has no cheap global listing with versions.
func (m *YarnManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	return binaryVersion(ctx, m.run, binName)
}
