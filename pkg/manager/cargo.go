// pkg/manager/cargo.go
package manager

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bin-tools/update-bin/pkg/crates"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// CargoManager handles binaries installed with `cargo install`
type CargoManager struct {
	run     shell.Commander
	logger  *log.Logger
	homeDir string
}

// NewCargoManager creates a cargo manager
func NewCargoManager(cfg *Config) *CargoManager {
	return &CargoManager{
		run:     cfg.Runner,
		logger:  cfg.Logger,
		homeDir: cfg.HomeDir,
	}
}

// Kind returns the manager identity
func (m *CargoManager) Kind() Kind { return KindCargo }

// Executable returns the cargo executable name
func (m *CargoManager) Executable() string { return "cargo" }

// Available reports whether cargo is on PATH
func (m *CargoManager) Available() bool {
	_, err := m.run.LookPath("cargo")
	return err == nil
}

// Owns checks whether the binary lives in $CARGO_HOME/bin
func (m *CargoManager) Owns(ctx context.Context, binPath string) (bool, error) {
	return pathWithin(binPath, filepath.ToSlash(filepath.Join(m.cargoHome(), "bin"))+"/"), nil
}

// PackageName resolves the crate that installed the binary. Cargo
// records the mapping in .crates.toml, so no subprocess is needed on
// the happy path.
func (m *CargoManager) PackageName(ctx context.Context, binName string) string {
	if list, err := crates.Load(m.manifestPath()); err == nil {
		if crate, ok := list.Owner(binName); ok {
			return crate.Name
		}
	}
	if name, _, ok := m.installListEntry(ctx, binName); ok {
		return name
	}
	return binName
}

// UpdateCommand returns `cargo install <pkg> --force`
func (m *CargoManager) UpdateCommand(pkg string) Command {
	return Command{Name: "cargo", Args: []string{"install", pkg, "--force"}}
}

// InstalledVersion reads the crate version from .crates.toml, falling
// back to `cargo install --list` and then the binary itself
func (m *CargoManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	if list, err := crates.Load(m.manifestPath()); err == nil {
		if version, ok := list.Version(pkg); ok {
			return strings.TrimPrefix(version, "v"), nil
		}
	}
	if _, version, ok := m.installListEntry(ctx, pkg); ok {
		return version, nil
	}
	return binaryVersion(ctx, m.run, binName)
}

// installListEntry parses `cargo install --list` for a "name vX.Y.Z:" line
func (m *CargoManager) installListEntry(ctx context.Context, name string) (string, string, bool) {
	out, err := m.run.Output(ctx, "cargo", "install", "--list")
	if err != nil {
		return "", "", false
	}

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] != name {
			continue
		}
		version := strings.TrimSuffix(strings.TrimPrefix(fields[1], "v"), ":")
		return fields[0], version, true
	}
	return "", "", false
}

func (m *CargoManager) cargoHome() string {
	if home := os.Getenv("CARGO_HOME"); home != "" {
		return home
	}
	return filepath.Join(m.homeDir, ".cargo")
}

func (m *CargoManager) manifestPath() string {
	return filepath.Join(m.cargoHome(), crates.ManifestName)
}
