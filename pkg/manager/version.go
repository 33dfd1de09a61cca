// pkg/manager/version.go
package manager

import (
	"context"
	"fmt"
	"strings"

	"github.com/bin-tools/update-bin/pkg/shell"
)

// versionFlags are tried in order when asking a binary for its own version
var versionFlags = []string{"--version", "-v", "-V", "version"}

// binaryVersion asks the binary itself. Last-resort fallback when the
// owning manager's listing gives nothing.
func binaryVersion(ctx context.Context, run shell.Commander, binName string) (string, error) {
	for _, flag := range versionFlags {
		out, err := run.Output(ctx, binName, flag)
		if err != nil || out == "" {
			continue
		}
		return firstLine(out), nil
	}
	return "", fmt.Errorf("could not determine version of %s", binName)
}

// nodeListVersion parses `<mgr> list -g --depth=0` output for a
// "pkg@version" line. Shared by bun, npm and pnpm.
func nodeListVersion(ctx context.Context, run shell.Commander, exe, pkg string) (string, bool) {
	out, err := run.Output(ctx, exe, "list", "-g", "--depth=0")
	if err != nil {
		return "", false
	}

	marker := pkg + "@"
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, marker); i >= 0 {
			version := strings.TrimSpace(line[i+len(marker):])
			if version != "" {
				return version, true
			}
		}
	}
	return "", false
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
