package testutil

import "errors"

// MockRawCommandLineSource is a mock implementation of
// ports.RawCommandLineSource.
type MockRawCommandLineSource struct {
	CommandLineFunc func() (string, error)
}

// CommandLine calls the mock CommandLineFunc.
func (m *MockRawCommandLineSource) CommandLine() (string, error) {
	if m.CommandLineFunc != nil {
		return m.CommandLineFunc()
	}
	return "", errors.New("MockRawCommandLineSource.CommandLineFunc not implemented")
}
