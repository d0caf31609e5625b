package testutil

import "errors"

// MockSystemInspector is a mock implementation of ports.SystemInspector.
type MockSystemInspector struct {
	ExecutablePathFunc func() (string, error)
	LookupEnvFunc      func(name string) (string, error)
	AbsolutePathFunc   func(path string) (string, error)
}

// ExecutablePath calls the mock ExecutablePathFunc.
func (m *MockSystemInspector) ExecutablePath() (string, error) {
	if m.ExecutablePathFunc != nil {
		return m.ExecutablePathFunc()
	}
	return "", errors.New("MockSystemInspector.ExecutablePathFunc not implemented")
}

// LookupEnv calls the mock LookupEnvFunc.
func (m *MockSystemInspector) LookupEnv(name string) (string, error) {
	if m.LookupEnvFunc != nil {
		return m.LookupEnvFunc(name)
	}
	return "", errors.New("MockSystemInspector.LookupEnvFunc not implemented")
}

// AbsolutePath calls the mock AbsolutePathFunc.
func (m *MockSystemInspector) AbsolutePath(path string) (string, error) {
	if m.AbsolutePathFunc != nil {
		return m.AbsolutePathFunc(path)
	}
	return "", errors.New("MockSystemInspector.AbsolutePathFunc not implemented")
}
