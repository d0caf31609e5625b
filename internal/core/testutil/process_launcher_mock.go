package testutil

import (
	"errors"

	"scriptshim/internal/core/domain/invocation"
)

// MockProcessLauncher is a mock implementation of ports.ProcessLauncher.
type MockProcessLauncher struct {
	LaunchFunc func(spec invocation.Spec) (int, error)
}

// Launch calls the mock LaunchFunc.
func (m *MockProcessLauncher) Launch(spec invocation.Spec) (int, error) {
	if m.LaunchFunc != nil {
		return m.LaunchFunc(spec)
	}
	return -1, errors.New("MockProcessLauncher.LaunchFunc not implemented")
}
