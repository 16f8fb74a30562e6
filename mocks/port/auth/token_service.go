// Package auth contains testify mocks for the identity ports.
package auth

import "github.com/stretchr/testify/mock"

// MockTokenService is a mock implementation of the TokenService interface
type MockTokenService struct {
	mock.Mock
}

// Generate provides a mock function
func (m *MockTokenService) Generate(userID uint64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// Validate provides a mock function
func (m *MockTokenService) Validate(token string) (uint64, error) {
	args := m.Called(token)
	return args.Get(0).(uint64), args.Error(1)
}
