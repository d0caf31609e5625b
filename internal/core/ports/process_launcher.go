package ports

import "scriptshim/internal/core/domain/invocation"

// ProcessLauncher runs the assembled invocation and returns the child
// process's exit status.
type ProcessLauncher interface {
	Launch(spec invocation.Spec) (int, error)
}
