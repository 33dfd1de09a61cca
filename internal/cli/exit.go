// internal/cli/exit.go
package cli

import (
	"errors"

	"github.com/bin-tools/update-bin/pkg/manager"
	"github.com/bin-tools/update-bin/pkg/shell"
)

// Exit codes. Resolution failures get distinct codes; a failed delegated
// update command passes its own exit code through verbatim.
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitNotFound           = 2
	ExitUnknownOwner       = 3
	ExitManagerUnavailable = 4
)

// ExitCode maps an error from Execute to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *shell.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code > 0 {
			return exitErr.Code
		}
		return ExitFailure
	}

	switch {
	case errors.Is(err, manager.ErrBinaryNotFound):
		return ExitNotFound
	case errors.Is(err, manager.ErrUnknownOwner):
		return ExitUnknownOwner
	case errors.Is(err, manager.ErrManagerUnavailable):
		return ExitManagerUnavailable
	}
	return ExitFailure
}
