package member

import (
	"context"
	"testing"

	"gymdesk/internal/access"
	"gymdesk/internal/access/accesstest"
	"gymdesk/internal/apperr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, gymID int, req CreateMemberRequest) (*Member, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID int) ([]Member, error) {
	args := m.Called(ctx, gymID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Member), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, req UpdateMemberRequest) (*Member, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Member), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestServiceCreateInOwnGym(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	req := CreateMemberRequest{Name: "Ravi", Phone: "9876500000"}
	gate.Allow(1, access.KindGym, 2)
	repo.On("Create", ctx, 2, req).Return(&Member{ID: 3, Name: "Ravi", GymID: 2, Active: true}, nil)

	m, err := NewService(repo, gate).Create(ctx, 1, 2, req)
	require.NoError(t, err)
	assert.Equal(t, 2, m.GymID)
	assert.True(t, m.Active)
}

func TestServiceStrangerCannotTouchMember(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	gate.On("Authorize", mock.Anything, 9, access.KindMember, 3).Return(apperr.Forbidden("Unauthorized"))
	gate.Deny(9, access.KindGym, 2, apperr.Forbidden("Unauthorized"))

	svc := NewService(repo, gate)
	name := "x"

	_, err := svc.Get(ctx, 9, 3)
	assert.Equal(t, 403, apperr.StatusOf(err))
	_, err = svc.Update(ctx, 9, 3, UpdateMemberRequest{Name: &name})
	assert.Equal(t, 403, apperr.StatusOf(err))
	assert.Equal(t, 403, apperr.StatusOf(svc.Delete(ctx, 9, 3)))
	_, err = svc.Create(ctx, 9, 2, CreateMemberRequest{Name: "x", Phone: "1"})
	assert.Equal(t, 403, apperr.StatusOf(err))
	_, err = svc.List(ctx, 9, 2)
	assert.Equal(t, 403, apperr.StatusOf(err))

	assert.Empty(t, repo.Calls)
}

func TestServiceGetMissingMember(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	gate.Deny(1, access.KindMember, 404, apperr.NotFound("Member not found"))

	_, err := NewService(repo, gate).Get(ctx, 1, 404)
	assert.Equal(t, 404, apperr.StatusOf(err))
}

func TestServiceDeleteRestricted(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	gate.Allow(1, access.KindMember, 3)
	repo.On("Delete", ctx, 3).Return(&pq.Error{Code: "23503"})

	err := NewService(repo, gate).Delete(ctx, 1, 3)
	assert.Equal(t, 409, apperr.StatusOf(err))
}
