// pkg/crates/crates_test.go
package crates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[v1]
"ripgrep 14.1.0 (registry+https://github.com/rust-lang/crates.io-index)" = ["rg"]
"cargo-edit 0.12.2 (registry+https://github.com/rust-lang/crates.io-index)" = ["cargo-add", "cargo-rm"]
"bat 0.24.0 (registry+https://github.com/rust-lang/crates.io-index)" = ["bat.exe"]
`

func loadSample(t *testing.T) *List {
	t.Helper()
	path := filepath.Join(t.TempDir(), ManifestName)
	require.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	list, err := Load(path)
	require.NoError(t, err)
	return list
}

func TestOwner(t *testing.T) {
	list := loadSample(t)

	crate, ok := list.Owner("rg")
	require.True(t, ok)
	assert.Equal(t, "ripgrep", crate.Name)
	assert.Equal(t, "14.1.0", crate.Version)

	crate, ok = list.Owner("cargo-rm")
	require.True(t, ok)
	assert.Equal(t, "cargo-edit", crate.Name)

	// .exe suffix is ignored
	crate, ok = list.Owner("bat")
	require.True(t, ok)
	assert.Equal(t, "bat", crate.Name)

	_, ok = list.Owner("unclaimed")
	assert.False(t, ok)
}

func TestVersion(t *testing.T) {
	list := loadSample(t)

	version, ok := list.Version("cargo-edit")
	require.True(t, ok)
	assert.Equal(t, "0.12.2", version)

	_, ok = list.Version("unknown-crate")
	assert.False(t, ok)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), ManifestName)
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}
