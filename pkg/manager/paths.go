// pkg/manager/paths.go
package manager

import (
	"path/filepath"
	"strings"
)

// pathContains does a separator-normalized substring check, matching how
// install prefixes are identified regardless of platform.
func pathContains(path, frag string) bool {
	return strings.Contains(filepath.ToSlash(path), frag)
}

// pathWithin reports whether path lies under dir
func pathWithin(path, dir string) bool {
	if dir == "" {
		return false
	}
	return strings.Contains(filepath.ToSlash(path), filepath.ToSlash(dir))
}
