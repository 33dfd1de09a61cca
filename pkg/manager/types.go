// pkg/manager/types.go
package manager

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bin-tools/update-bin/pkg/shell"
)

// Kind identifies a supported package manager
type Kind string

const (
	// KindHomebrew is the Homebrew package manager
	KindHomebrew Kind = "homebrew"
	// KindBun is the Bun runtime's global package store
	KindBun Kind = "bun"
	// KindCargo is Rust's cargo install
	KindCargo Kind = "cargo"
	// KindPnpm is the pnpm global store
	KindPnpm Kind = "pnpm"
	// KindNpm is npm's global prefix
	KindNpm Kind = "npm"
	// KindYarn is yarn classic's global store
	KindYarn Kind = "yarn"
)

// DefaultPriority is the order in which ownership is probed when several
// managers could plausibly claim a binary. Filesystem-prefix probes come
// before the managers that need a subprocess query to locate their bin
// directory, so overlapping claims resolve to the cheaper, more specific
// signal.
var DefaultPriority = []Kind{
	KindHomebrew,
	KindBun,
	KindCargo,
	KindPnpm,
	KindNpm,
	KindYarn,
}

// ParseKind converts a config or flag value into a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range DefaultPriority {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q", s)
}

// Command is a package manager invocation: executable plus arguments
type Command struct {
	Name string
	Args []string
}

// String renders the command the way a user would type it
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Manager is the interface every supported package manager implements
type Manager interface {
	// Kind returns the manager's identity
	Kind() Kind

	// Executable returns the manager's own executable name
	Executable() string

	// Available reports whether the manager executable is on PATH
	Available() bool

	// Owns reports whether binPath was installed by this manager
	Owns(ctx context.Context, binPath string) (bool, error)

	// PackageName maps an installed binary name to the package that
	// provides it, falling back to the binary name itself
	PackageName(ctx context.Context, binName string) string

	// UpdateCommand returns the native update invocation for pkg
	UpdateCommand(pkg string) Command

	// InstalledVersion returns the currently installed version of pkg
	InstalledVersion(ctx context.Context, binName, pkg string) (string, error)
}

// Config holds shared configuration for manager construction
type Config struct {
	// HomeDir overrides the user home directory (tests use a temp dir)
	HomeDir string

	// Runner executes subprocess probes and update commands
	Runner shell.Commander

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger
}
