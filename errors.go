// errors.go
package updatebin

import (
	"fmt"

	"github.com/bin-tools/update-bin/pkg/manager"
)

var (
	// ErrBinaryNotFound indicates the target binary is not on PATH
	ErrBinaryNotFound = manager.ErrBinaryNotFound

	// ErrUnknownOwner indicates no supported package manager claims
	// the binary
	ErrUnknownOwner = manager.ErrUnknownOwner

	// ErrManagerUnavailable indicates the owning manager's executable
	// is missing from PATH
	ErrManagerUnavailable = manager.ErrManagerUnavailable
)

// Error wraps an error with additional context
type Error struct {
	Op  string // Operation that failed
	Bin string // Binary name if applicable
	Err error  // Underlying error
}

func (e *Error) Error() string {
	if e.Bin != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Bin, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
