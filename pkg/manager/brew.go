// pkg/manager/brew.go
package manager

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bin-tools/update-bin/pkg/shell"
)

// BrewManager handles binaries installed with Homebrew
type BrewManager struct {
	run    shell.Commander
	logger *log.Logger
}

// NewBrewManager creates a Homebrew manager
func NewBrewManager(cfg *Config) *BrewManager {
	return &BrewManager{
		run:    cfg.Runner,
		logger: cfg.Logger,
	}
}

// Kind returns the manager identity
func (m *BrewManager) Kind() Kind { return KindHomebrew }

// Executable returns the brew executable name
func (m *BrewManager) Executable() string { return "brew" }

// Available reports whether brew is on PATH
func (m *BrewManager) Available() bool {
	_, err := m.run.LookPath("brew")
	return err == nil
}

// Owns reports whether the binary lives under a Homebrew prefix.
// Homebrew never claims anything on Windows.
func (m *BrewManager) Owns(ctx context.Context, binPath string) (bool, error) {
	if runtime.GOOS == "windows" {
		return false, nil
	}

	prefixes := []string{"/opt/homebrew/", "/usr/local/"}
	if hp := os.Getenv("HOMEBREW_PREFIX"); hp != "" {
		prefixes = append([]string{filepath.ToSlash(hp) + "/"}, prefixes...)
	}

	for _, prefix := range prefixes {
		if pathContains(binPath, prefix) {
			return true, nil
		}
	}
	return false, nil
}

// PackageName maps a binary to its formula via `brew which-formula`,
// keeping only candidates that are actually installed.
func (m *BrewManager) PackageName(ctx context.Context, binName string) string {
	installed, err := m.run.Output(ctx, "brew", "list", "--formula")
	if err != nil {
		m.logger.Printf("[brew] listing formulae: %v", err)
		return binName
	}

	installedSet := make(map[string]struct{})
	for _, line := range strings.Split(installed, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			installedSet[line] = struct{}{}
		}
	}

	candidates, err := m.run.Output(ctx, "brew", "which-formula", binName)
	if err != nil || candidates == "" || strings.Contains(candidates, "Error") {
		return binName
	}

	for _, candidate := range strings.Split(candidates, "\n") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if _, ok := installedSet[candidate]; ok {
			return candidate
		}
	}
	return binName
}

// UpdateCommand returns `brew upgrade <pkg>`
func (m *BrewManager) UpdateCommand(pkg string) Command {
	return Command{Name: "brew", Args: []string{"upgrade", pkg}}
}

// InstalledVersion reads the version from `brew list --versions`
func (m *BrewManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	out, err := m.run.Output(ctx, "brew", "list", "--versions", pkg)
	if err != nil {
		return "", fmt.Errorf("querying brew versions: %w", err)
	}

	fields := strings.Fields(firstLine(out))
	if len(fields) < 2 {
		return "", fmt.Errorf("package %s not listed by brew", pkg)
	}
	return fields[1], nil
}
