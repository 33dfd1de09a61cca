// pkg/manager/errors.go
package manager

import "errors"

var (
	// ErrBinaryNotFound indicates the target binary is not on PATH
	ErrBinaryNotFound = errors.New("binary not found")

	// ErrUnknownOwner indicates the binary exists but no supported
	// package manager claims it
	ErrUnknownOwner = errors.New("no supported package manager owns this binary")

	// ErrManagerUnavailable indicates the owning manager's executable
	// is missing from PATH at dispatch time
	ErrManagerUnavailable = errors.New("package manager not available")
)
