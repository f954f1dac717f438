package access

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"gymdesk/internal/apperr"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupAccessMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return NewRepository(sqlxDB), m
}

func TestOwnerOfTraversals(t *testing.T) {
	tests := []struct {
		kind  Kind
		chain string
	}{
		{KindGym, "FROM gyms g WHERE g.id = $1"},
		{KindStaff, "FROM staff s JOIN gyms g ON g.id = s.gym_id WHERE s.id = $1"},
		{KindPlan, "FROM membership_plans p JOIN gyms g ON g.id = p.gym_id WHERE p.id = $1"},
		{KindMember, "FROM members m JOIN gyms g ON g.id = m.gym_id WHERE m.id = $1"},
		{KindMembership, "FROM memberships ms JOIN members m ON m.id = ms.member_id JOIN gyms g ON g.id = m.gym_id WHERE ms.id = $1"},
		{KindPayment, "FROM payments p JOIN members m ON m.id = p.member_id JOIN gyms g ON g.id = m.gym_id WHERE p.id = $1"},
		{KindNotification, "FROM notifications n WHERE n.id = $1"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			repo, m := setupAccessMock(t)

			m.ExpectQuery(regexp.QuoteMeta(tt.chain)).
				WithArgs(11).
				WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(3))

			owner, err := repo.OwnerOf(context.Background(), tt.kind, 11)
			require.NoError(t, err)
			assert.Equal(t, 3, owner)
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestOwnerOfMissing(t *testing.T) {
	repo, m := setupAccessMock(t)

	m.ExpectQuery(regexp.QuoteMeta("FROM payments p")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	_, err := repo.OwnerOf(context.Background(), KindPayment, 99)
	assert.ErrorIs(t, err, ErrNoOwner)
}

func TestOwnerOfUnknownKind(t *testing.T) {
	repo, _ := setupAccessMock(t)

	_, err := repo.OwnerOf(context.Background(), Kind(42), 1)
	assert.Error(t, err)
}

type MockRepository struct{ mock.Mock }

func (m *MockRepository) OwnerOf(ctx context.Context, kind Kind, id int) (int, error) {
	args := m.Called(ctx, kind, id)
	return args.Int(0), args.Error(1)
}

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	tests := []struct {
		name       string
		kind       Kind
		owner      int
		repoErr    error
		wantStatus int
		wantMsg    string
	}{
		{"owner allowed", KindGym, 1, nil, 0, ""},
		{"other user forbidden", KindMember, 2, nil, 403, "Unauthorized"},
		{"missing member", KindMember, 0, ErrNoOwner, 404, "Member not found"},
		{"missing gym", KindGym, 0, ErrNoOwner, 404, "Gym not found"},
		{"broken chain for payment", KindPayment, 0, ErrNoOwner, 404, "Payment not found"},
		{"database failure", KindStaff, 0, dbErr, 500, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("OwnerOf", ctx, tt.kind, 10).Return(tt.owner, tt.repoErr)

			err := NewGate(repo).Authorize(ctx, 1, tt.kind, 10)

			switch tt.wantStatus {
			case 0:
				assert.NoError(t, err)
			case 500:
				assert.ErrorIs(t, err, dbErr)
				assert.Equal(t, 500, apperr.StatusOf(err))
			default:
				require.Error(t, err)
				appErr, ok := apperr.As(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantStatus, appErr.Status())
				assert.Equal(t, tt.wantMsg, appErr.Message)
			}
			repo.AssertExpectations(t)
		})
	}
}
