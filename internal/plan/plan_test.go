package plan

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/access/accesstest"
	"gymdesk/internal/api"
	"gymdesk/internal/apperr"
	"gymdesk/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var planRowColumns = []string{"id", "name", "description", "duration", "price", "type", "gym_id", "created_at", "updated_at"}

func setupPlanMock(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, m, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewRepository(sqlxDB), m
}

func TestRepositoryCreateFreePlan(t *testing.T) {
	repo, m := setupPlanMock(t)
	now := time.Now()
	price := 0.0

	m.ExpectQuery(regexp.QuoteMeta("INSERT INTO membership_plans (name, description, duration, price, type, gym_id)")).
		WithArgs("Trial", nil, 1, 0.0, TypeMonthly, 2).
		WillReturnRows(sqlmock.NewRows(planRowColumns).AddRow(1, "Trial", nil, 1, "0.00", TypeMonthly, 2, now, now))

	p, err := repo.Create(context.Background(), 2, CreatePlanRequest{Name: "Trial", Duration: 1, Price: &price, Type: TypeMonthly})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.Price)
	assert.Equal(t, 2, p.GymID)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestRepositoryListOrdersByDuration(t *testing.T) {
	repo, m := setupPlanMock(t)
	now := time.Now()

	m.ExpectQuery(regexp.QuoteMeta("FROM membership_plans WHERE gym_id = $1 ORDER BY duration, price")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(planRowColumns).
			AddRow(1, "Monthly", nil, 1, "1500.00", TypeMonthly, 2, now, now).
			AddRow(2, "Annual", nil, 12, "15000.00", TypeAnnual, 2, now, now))

	plans, err := repo.ListByGym(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Monthly", plans[0].Name)
}

func TestRepositoryUpdatePartial(t *testing.T) {
	repo, m := setupPlanMock(t)
	now := time.Now()
	price := 1800.0

	m.ExpectQuery(regexp.QuoteMeta("UPDATE membership_plans SET price = $1, updated_at = NOW() WHERE id = $2")).
		WithArgs(1800.0, 1).
		WillReturnRows(sqlmock.NewRows(planRowColumns).AddRow(1, "Monthly", nil, 1, "1800.00", TypeMonthly, 2, now, now))

	p, err := repo.Update(context.Background(), 1, UpdatePlanRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 1800.0, p.Price)
}

type MockRepository struct{ mock.Mock }

func (m *MockRepository) Create(ctx context.Context, gymID int, req CreatePlanRequest) (*Plan, error) {
	args := m.Called(ctx, gymID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) ListByGym(ctx context.Context, gymID int) ([]Plan, error) {
	args := m.Called(ctx, gymID)
	return args.Get(0).([]Plan), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Plan), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func TestServiceListRequiresGymOwnership(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	gate.Deny(2, access.KindGym, 1, apperr.Forbidden("Unauthorized"))

	_, err := NewService(repo, gate).List(ctx, 2, 1)
	assert.Equal(t, 403, apperr.StatusOf(err))
	repo.AssertNotCalled(t, "ListByGym", mock.Anything, mock.Anything)
}

func TestServiceDeleteInUseConflicts(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	gate.Allow(1, access.KindPlan, 3)
	repo.On("Delete", ctx, 3).Return(&pq.Error{Code: "23503"})

	err := NewService(repo, gate).Delete(ctx, 1, 3)
	assert.Equal(t, 409, apperr.StatusOf(err))
}

func TestServiceUpdateChecksPlan(t *testing.T) {
	ctx := context.Background()
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	name := "Gold"
	gate.Allow(1, access.KindPlan, 3)
	repo.On("Update", ctx, 3, UpdatePlanRequest{Name: &name}).Return(&Plan{ID: 3, Name: "Gold"}, nil)

	p, err := NewService(repo, gate).Update(ctx, 1, 3, UpdatePlanRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Gold", p.Name)
	gate.AssertExpectations(t)
}

func newTestRouter(repo Repository, gate access.Gate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(api.ErrorHandler(false), func(c *gin.Context) { auth.SetUserID(c, 1); c.Next() })
	NewHandler(NewService(repo, gate)).RegisterRoutes(r.Group("/api"))
	return r
}

func TestHandlerCreatePlanValidation(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"free plan", `{"name":"Trial","duration":1,"price":0,"type":"monthly"}`, http.StatusCreated},
		{"negative price", `{"name":"Trial","duration":1,"price":-5,"type":"monthly"}`, http.StatusBadRequest},
		{"zero duration", `{"name":"Trial","duration":0,"price":10,"type":"monthly"}`, http.StatusBadRequest},
		{"unknown type", `{"name":"Trial","duration":1,"price":10,"type":"weekly"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, gate := new(MockRepository), new(accesstest.MockGate)
			gate.Allow(1, access.KindGym, 2)
			repo.On("Create", mock.Anything, 2, mock.Anything).Return(&Plan{ID: 1, GymID: 2}, nil)

			w := httptest.NewRecorder()
			newTestRouter(repo, gate).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/gyms/2/plans", bytes.NewBufferString(tt.body)))
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestHandlerGetPlanInvalidID(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(new(MockRepository), new(accesstest.MockGate)).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/plans/abc", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid plan ID"}`, w.Body.String())
}
