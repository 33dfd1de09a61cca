// updatebin.go
package updatebin

import (
	"context"
	"io"
	"log"
	"os"

	"github.com/bin-tools/update-bin/pkg/manager"
	"github.com/bin-tools/update-bin/pkg/resolve"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// Re-export domain types for convenience
type (
	Kind       = manager.Kind
	Command    = manager.Command
	Resolution = resolve.Resolution
)

// Re-export the manager enumeration
const (
	KindHomebrew = manager.KindHomebrew
	KindBun      = manager.KindBun
	KindCargo    = manager.KindCargo
	KindPnpm     = manager.KindPnpm
	KindNpm      = manager.KindNpm
	KindYarn     = manager.KindYarn
)

// Options configures an Updater
type Options struct {
	// Priority overrides the manager probe order
	Priority []Kind

	// Debug enables debug logging to stderr
	Debug bool

	// Plain disables the styled subprocess relay
	Plain bool

	// Logger for custom logging
	Logger *log.Logger

	// Runner overrides subprocess execution (tests use a fake)
	Runner shell.Commander
}

// Updater resolves a binary's provenance and delegates updates to the
// owning package manager
type Updater struct {
	registry *manager.Registry
	resolver *resolve.Resolver
	runner   shell.Commander
	logger   *log.Logger
}

// New creates an Updater
func New(opts *Options) *Updater {
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		if opts.Debug {
			logger = log.New(os.Stderr, "", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	runner := opts.Runner
	if runner == nil {
		runner = shell.NewRunner(logger, opts.Plain)
	}
	registry := manager.NewRegistry(&manager.Config{
		Runner: runner,
		Debug:  opts.Debug,
		Logger: logger,
	})

	return &Updater{
		registry: registry,
		resolver: resolve.New(registry, opts.Priority, runner, logger),
		runner:   runner,
		logger:   logger,
	}
}

// Resolve determines which package manager installed the binary
func (u *Updater) Resolve(ctx context.Context, bin string) (*Resolution, error) {
	return u.resolver.Resolve(ctx, bin)
}

// InstalledVersion returns the resolved package's installed version,
// or "unknown" when it cannot be determined. Best effort only.
func (u *Updater) InstalledVersion(ctx context.Context, res *Resolution) string {
	version, err := res.Manager.InstalledVersion(ctx, res.Bin, res.Package)
	if err != nil {
		u.logger.Printf("[update] version lookup for %s: %v", res.Bin, err)
		return "unknown"
	}
	if version == "" {
		u.logger.Printf("[update] version lookup for %s: empty result", res.Bin)
		return "unknown"
	}
	return version
}

// Update runs the owning manager's native update command, relaying its
// output. The delegated command's exit status is preserved as a
// shell.ExitError.
func (u *Updater) Update(ctx context.Context, res *Resolution) error {
	exe := res.Manager.Executable()
	if _, err := u.runner.LookPath(exe); err != nil {
		return &Error{Op: "update", Bin: res.Bin, Err: ErrManagerUnavailable}
	}

	cmd := res.Manager.UpdateCommand(res.Package)
	u.logger.Printf("[update] %s", cmd)
	return u.runner.Run(ctx, cmd.Name, cmd.Args...)
}

// Registry exposes the manager set, for listing availability
func (u *Updater) Registry() *manager.Registry {
	return u.registry
}
