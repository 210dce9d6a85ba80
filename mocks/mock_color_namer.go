package mocks

import "github.com/stretchr/testify/mock"

// MockColorNamer is a mock implementation of port.ColorNamer.
type MockColorNamer struct {
	mock.Mock
}

func (m *MockColorNamer) NameFor(hex string) string {
	args := m.Called(hex)
	return args.String(0)
}
