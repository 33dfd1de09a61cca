// pkg/crates/crates.go

// Package crates reads cargo's install manifest ($CARGO_HOME/.crates.toml),
// which records every `cargo install`ed crate together with the binaries
// it placed into $CARGO_HOME/bin.
package crates

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the manifest file name under $CARGO_HOME
const ManifestName = ".crates.toml"

// List is the parsed .crates.toml. The [v1] table maps a
// "name version (source)" key to the crate's installed binaries.
type List struct {
	V1 map[string][]string `toml:"v1"`
}

// Crate identifies one installed crate
type Crate struct {
	Name    string
	Version string
}

// Load reads and parses a .crates.toml file
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading crate list: %w", err)
	}

	var list List
	if err := toml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &list, nil
}

// Owner returns the crate that installed binName, if any. Binary names
// are compared with a Windows .exe suffix stripped.
func (l *List) Owner(binName string) (Crate, bool) {
	for key, bins := range l.V1 {
		for _, bin := range bins {
			if bin == binName || strings.TrimSuffix(bin, ".exe") == binName {
				return parseKey(key), true
			}
		}
	}
	return Crate{}, false
}

// Version returns the installed version of a crate by name
func (l *List) Version(name string) (string, bool) {
	for key := range l.V1 {
		c := parseKey(key)
		if c.Name == name {
			return c.Version, true
		}
	}
	return "", false
}

func parseKey(key string) Crate {
	fields := strings.Fields(key)
	if len(fields) == 0 {
		return Crate{}
	}
	c := Crate{Name: fields[0]}
	if len(fields) > 1 {
		c.Version = fields[1]
	}
	return c
}
