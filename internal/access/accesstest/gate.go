// Package accesstest provides a testify mock of access.Gate.
package accesstest

import (
	"context"

	"gymdesk/internal/access"

	"github.com/stretchr/testify/mock"
)

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Authorize(ctx context.Context, userID int, kind access.Kind, id int) error {
	return m.Called(ctx, userID, kind, id).Error(0)
}

// Allow expects one successful check of kind/id for userID.
func (m *MockGate) Allow(userID int, kind access.Kind, id int) *mock.Call {
	return m.On("Authorize", mock.Anything, userID, kind, id).Return(nil)
}

// Deny expects one check of kind/id for userID that fails with err.
func (m *MockGate) Deny(userID int, kind access.Kind, id int, err error) *mock.Call {
	return m.On("Authorize", mock.Anything, userID, kind, id).Return(err)
}
