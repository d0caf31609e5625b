package testutil

import "errors"

// MockEnvMutator is a mock implementation of ports.EnvMutator.
type MockEnvMutator struct {
	SetenvFunc   func(name, value string) error
	UnsetenvFunc func(name string) error
}

// Setenv calls the mock SetenvFunc.
func (m *MockEnvMutator) Setenv(name, value string) error {
	if m.SetenvFunc != nil {
		return m.SetenvFunc(name, value)
	}
	return errors.New("MockEnvMutator.SetenvFunc not implemented")
}

// Unsetenv calls the mock UnsetenvFunc.
func (m *MockEnvMutator) Unsetenv(name string) error {
	if m.UnsetenvFunc != nil {
		return m.UnsetenvFunc(name)
	}
	return errors.New("MockEnvMutator.UnsetenvFunc not implemented")
}
