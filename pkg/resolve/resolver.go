// pkg/resolve/resolver.go

// Package resolve maps an installed binary to the package manager that
// owns it.
package resolve

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/bin-tools/update-bin/pkg/manager"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// Resolution is the outcome of a successful provenance lookup
type Resolution struct {
	Bin     string          // Binary name as given by the user
	Path    string          // Absolute path of the binary on PATH
	Manager manager.Manager // Owning package manager
	Package string          // Package name in the owning manager's terms
}

// Source yields managers in probe order. *manager.Registry satisfies it.
type Source interface {
	Ordered(priority []manager.Kind) []manager.Manager
}

// Resolver probes the supported managers in priority order
type Resolver struct {
	registry Source
	priority []manager.Kind
	run      shell.Commander
	logger   *log.Logger
}

// New creates a Resolver. An empty priority uses manager.DefaultPriority.
func New(registry Source, priority []manager.Kind, run shell.Commander, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Resolver{
		registry: registry,
		priority: priority,
		run:      run,
		logger:   logger,
	}
}

// Resolve locates the binary on PATH and returns the first manager in
// priority order that claims it. A probe error from one manager is
// logged and does not mask a later match.
func (r *Resolver) Resolve(ctx context.Context, bin string) (*Resolution, error) {
	path, err := r.run.LookPath(bin)
	if err != nil {
		return nil, fmt.Errorf("binary %q: %w", bin, manager.ErrBinaryNotFound)
	}
	r.logger.Printf("[resolve] %s -> %s", bin, path)

	for _, m := range r.registry.Ordered(r.priority) {
		owns, err := m.Owns(ctx, path)
		if err != nil {
			r.logger.Printf("[resolve] %s probe failed: %v", m.Kind(), err)
			continue
		}
		if !owns {
			continue
		}

		pkg := m.PackageName(ctx, bin)
		r.logger.Printf("[resolve] %s owns %s (package %s)", m.Kind(), bin, pkg)
		return &Resolution{
			Bin:     bin,
			Path:    path,
			Manager: m,
			Package: pkg,
		}, nil
	}

	return nil, fmt.Errorf("binary %q at %s: %w", bin, path, manager.ErrUnknownOwner)
}
