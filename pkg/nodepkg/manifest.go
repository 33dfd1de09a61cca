// pkg/nodepkg/manifest.go
package nodepkg

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest is the subset of package.json that ownership detection needs
type Manifest struct {
	Name         string                     `json:"name"`
	Dependencies map[string]json.RawMessage `json:"dependencies"`
	Bin          BinField                   `json:"bin"`
}

// BinField models package.json's "bin" entry, which is either a single
// script path (the binary is named after the package) or an object
// mapping binary names to scripts.
type BinField struct {
	script string
	names  []string
}

func (b *BinField) UnmarshalJSON(data []byte) error {
	var script string
	if err := json.Unmarshal(data, &script); err == nil {
		b.script = script
		return nil
	}

	var byName map[string]string
	if err := json.Unmarshal(data, &byName); err != nil {
		return fmt.Errorf("unsupported bin field: %w", err)
	}
	for name := range byName {
		b.names = append(b.names, name)
	}
	return nil
}

// ReadManifest reads and parses a package.json file
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// ProvidesBin reports whether this package installs a binary called binName.
// With the single-script "bin" form the binary takes the package name.
func (m *Manifest) ProvidesBin(binName string) bool {
	if m.Bin.script != "" {
		return m.Name == binName
	}
	for _, name := range m.Bin.names {
		if name == binName {
			return true
		}
	}
	return false
}

// FindOwner scans a global install directory (one holding a package.json
// plus a node_modules tree, as bun and yarn keep) for the dependency that
// provides binName. Malformed or missing manifests are skipped.
func FindOwner(globalDir, binName string) (string, bool) {
	root, err := ReadManifest(filepath.Join(globalDir, "package.json"))
	if err != nil {
		return "", false
	}

	for dep := range root.Dependencies {
		m, err := ReadManifest(filepath.Join(globalDir, "node_modules", dep, "package.json"))
		if err != nil {
			continue
		}
		if m.ProvidesBin(binName) {
			return dep, true
		}
	}
	return "", false
}
