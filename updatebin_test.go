// updatebin_test.go
package updatebin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bin-tools/update-bin/pkg/manager"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// fakeCommander scripts subprocess results for tests
type fakeCommander struct {
	paths  map[string]string // LookPath results
	runs   []string
	runErr error
}

func (f *fakeCommander) LookPath(name string) (string, error) {
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

func (f *fakeCommander) Output(ctx context.Context, name string, args ...string) (string, error) {
	return "", fmt.Errorf("no scripted output for %s", name)
}

func (f *fakeCommander) Run(ctx context.Context, name string, args ...string) error {
	f.runs = append(f.runs, strings.Join(append([]string{name}, args...), " "))
	return f.runErr
}

func getManager(t *testing.T, u *Updater, kind Kind) manager.Manager {
	t.Helper()
	m, ok := u.Registry().Get(kind)
	require.True(t, ok)
	return m
}

func TestUpdateManagerUnavailable(t *testing.T) {
	run := &fakeCommander{} // cargo missing from PATH
	u := New(&Options{Runner: run})

	res := &Resolution{
		Bin:     "rg",
		Path:    "/home/u/.cargo/bin/rg",
		Manager: getManager(t, u, KindCargo),
		Package: "ripgrep",
	}

	err := u.Update(context.Background(), res)
	assert.ErrorIs(t, err, ErrManagerUnavailable)
	assert.Empty(t, run.runs, "nothing must be dispatched without the manager executable")
}

func TestUpdateDispatchesNativeCommand(t *testing.T) {
	run := &fakeCommander{paths: map[string]string{"cargo": "/home/u/.cargo/bin/cargo"}}
	u := New(&Options{Runner: run})

	res := &Resolution{
		Bin:     "rg",
		Path:    "/home/u/.cargo/bin/rg",
		Manager: getManager(t, u, KindCargo),
		Package: "ripgrep",
	}

	require.NoError(t, u.Update(context.Background(), res))
	assert.Equal(t, []string{"cargo install ripgrep --force"}, run.runs)
}

func TestUpdatePropagatesExitError(t *testing.T) {
	run := &fakeCommander{
		paths:  map[string]string{"brew": "/opt/homebrew/bin/brew"},
		runErr: &shell.ExitError{Cmd: "brew", Code: 5},
	}
	u := New(&Options{Runner: run})

	res := &Resolution{
		Bin:     "wget",
		Path:    "/opt/homebrew/bin/wget",
		Manager: getManager(t, u, KindHomebrew),
		Package: "wget",
	}

	err := u.Update(context.Background(), res)
	var exitErr *shell.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 5, exitErr.Code)

	// the CLI wraps Update errors; the child's code must stay extractable
	wrapped := fmt.Errorf("updating %s with %s: %w", res.Package, res.Manager.Kind(), err)
	require.ErrorAs(t, wrapped, &exitErr)
	assert.Equal(t, 5, exitErr.Code)
}

// fixedVersionManager overrides just the version lookup
type fixedVersionManager struct {
	manager.Manager
	version string
	err     error
}

func (f *fixedVersionManager) InstalledVersion(ctx context.Context, binName, pkg string) (string, error) {
	return f.version, f.err
}

func TestInstalledVersionDegradesToUnknown(t *testing.T) {
	u := New(&Options{Runner: &fakeCommander{}})
	base := getManager(t, u, KindYarn)

	tests := []struct {
		name    string
		version string
		err     error
	}{
		{"lookup error", "", errors.New("no listing")},
		{"empty result", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Resolution{
				Bin:     "serve",
				Manager: &fixedVersionManager{Manager: base, version: tt.version, err: tt.err},
				Package: "serve",
			}
			assert.Equal(t, "unknown", u.InstalledVersion(context.Background(), res))
		})
	}
}

func TestInstalledVersionPassesThrough(t *testing.T) {
	u := New(&Options{Runner: &fakeCommander{}})
	res := &Resolution{
		Bin:     "serve",
		Manager: &fixedVersionManager{Manager: getManager(t, u, KindYarn), version: "14.2.1"},
		Package: "serve",
	}

	assert.Equal(t, "14.2.1", u.InstalledVersion(context.Background(), res))
}
