// pkg/manager/manager_test.go
package manager

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCommander scripts subprocess results for tests
type fakeCommander struct {
	paths   map[string]string // LookPath results
	outputs map[string]string // "cmd arg..." -> stdout
	runs    []string
	runErr  error
}

func (f *fakeCommander) LookPath(name string) (string, error) {
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", fmt.Errorf("%s: executable file not found in $PATH", name)
}

func (f *fakeCommander) Output(ctx context.Context, name string, args ...string) (string, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	if out, ok := f.outputs[key]; ok {
		return out, nil
	}
	return "", fmt.Errorf("no scripted output for %q", key)
}

func (f *fakeCommander) Run(ctx context.Context, name string, args ...string) error {
	f.runs = append(f.runs, strings.Join(append([]string{name}, args...), " "))
	return f.runErr
}

func testConfig(t *testing.T, run *fakeCommander) *Config {
	t.Helper()
	if run == nil {
		run = &fakeCommander{}
	}
	return &Config{
		HomeDir: t.TempDir(),
		Runner:  run,
		Logger:  log.New(io.Discard, "", 0),
	}
}

func TestUpdateCommands(t *testing.T) {
	registry := NewRegistry(testConfig(t, nil))

	tests := []struct {
		kind Kind
		name string
		args []string
	}{
		{KindHomebrew, "brew", []string{"upgrade", "tool"}},
		{KindBun, "bun", []string{"update", "-g", "tool"}},
		{KindNpm, "npm", []string{"update", "-g", "tool"}},
		{KindPnpm, "pnpm", []string{"update", "-g", "tool"}},
		{KindYarn, "yarn", []string{"global", "upgrade", "tool"}},
		{KindCargo, "cargo", []string{"install", "tool", "--force"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			m, ok := registry.Get(tt.kind)
			require.True(t, ok)

			cmd := m.UpdateCommand("tool")
			assert.Equal(t, tt.name, cmd.Name)
			assert.Equal(t, tt.args, cmd.Args)
		})
	}
}

func TestCommandString(t *testing.T) {
	cmd := Command{Name: "npm", Args: []string{"update", "-g", "tool"}}
	assert.Equal(t, "npm update -g tool", cmd.String())
	assert.Equal(t, "brew", Command{Name: "brew"}.String())
}

func TestParseKind(t *testing.T) {
	for _, kind := range DefaultPriority {
		got, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}

	got, err := ParseKind(" Homebrew ")
	require.NoError(t, err)
	assert.Equal(t, KindHomebrew, got)

	_, err = ParseKind("apt")
	assert.Error(t, err)
}

func TestRegistryOrdered(t *testing.T) {
	registry := NewRegistry(testConfig(t, nil))

	def := registry.Ordered(nil)
	require.Len(t, def, len(DefaultPriority))
	for i, m := range def {
		assert.Equal(t, DefaultPriority[i], m.Kind())
	}

	custom := registry.Ordered([]Kind{KindCargo, KindHomebrew})
	require.Len(t, custom, 2)
	assert.Equal(t, KindCargo, custom[0].Kind())
	assert.Equal(t, KindHomebrew, custom[1].Kind())
}

func TestRegistryAvailable(t *testing.T) {
	run := &fakeCommander{paths: map[string]string{
		"cargo": "/home/u/.cargo/bin/cargo",
		"npm":   "/usr/bin/npm",
	}}
	registry := NewRegistry(testConfig(t, run))

	assert.Equal(t, []Kind{KindCargo, KindNpm}, registry.Available())
}

func TestExecutables(t *testing.T) {
	registry := NewRegistry(testConfig(t, nil))

	want := map[Kind]string{
		KindHomebrew: "brew",
		KindBun:      "bun",
		KindCargo:    "cargo",
		KindPnpm:     "pnpm",
		KindNpm:      "npm",
		KindYarn:     "yarn",
	}
	for kind, exe := range want {
		m, ok := registry.Get(kind)
		require.True(t, ok)
		assert.Equal(t, exe, m.Executable())
		assert.Equal(t, kind, m.Kind())
	}
}
