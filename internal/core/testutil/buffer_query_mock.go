package testutil

import "errors"

// MockBufferQuery is a mock implementation of ports.BufferQuery.
type MockBufferQuery struct {
	QueryFunc func(dst []rune) (int, error)
	// Calls records every destination capacity the prober tried.
	Calls []int
}

// Query calls the mock QueryFunc, recording the destination capacity.
func (m *MockBufferQuery) Query(dst []rune) (int, error) {
	m.Calls = append(m.Calls, len(dst))
	if m.QueryFunc != nil {
		return m.QueryFunc(dst)
	}
	return 0, errors.New("MockBufferQuery.QueryFunc not implemented")
}
