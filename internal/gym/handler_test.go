package gym

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gymdesk/internal/api"
	"gymdesk/internal/apperr"
	"gymdesk/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, userID int) ([]Gym, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Gym), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, userID int, req CreateGymRequest) (*Gym, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, userID, id int) (*Gym, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, userID, id int, req UpdateGymRequest) (*Gym, error) {
	args := m.Called(ctx, userID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Gym), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, userID, id int) error {
	return m.Called(ctx, userID, id).Error(0)
}

func newTestRouter(svc Service, userID int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(api.ErrorHandler(false))
	r.Use(func(c *gin.Context) {
		auth.SetUserID(c, userID)
		c.Next()
	})
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func TestCreateGymHandler(t *testing.T) {
	svc := new(MockService)
	req := CreateGymRequest{Name: "Fitness Plus", Address: "12 MG Road", City: "Mumbai", State: "Maharashtra", Zipcode: "400001"}
	svc.On("Create", mock.Anything, 1, req).Return(&Gym{ID: 10, Name: "Fitness Plus", UserID: 1}, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	newTestRouter(svc, 1).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/gyms", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	var got Gym
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 10, got.ID)
	assert.Contains(t, w.Body.String(), `"userId":1`)
}

func TestCreateGymHandlerValidation(t *testing.T) {
	svc := new(MockService)

	w := httptest.NewRecorder()
	newTestRouter(svc, 1).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/gyms", bytes.NewBufferString(`{"name":"Fitness Plus","email":"nope"}`)))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	fields := []string{}
	for _, f := range resp.Errors {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"address", "city", "state", "zipcode", "email"}, fields)
}

func TestGetGymHandlerStatuses(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"found", "/api/gyms/5", nil, http.StatusOK},
		{"forbidden", "/api/gyms/5", apperr.Forbidden("Unauthorized"), http.StatusForbidden},
		{"not found", "/api/gyms/5", apperr.NotFound("Gym not found"), http.StatusNotFound},
		{"bad id", "/api/gyms/abc", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			if tt.err != nil {
				svc.On("Get", mock.Anything, 1, 5).Return(nil, tt.err)
			} else {
				svc.On("Get", mock.Anything, 1, 5).Return(&Gym{ID: 5}, nil)
			}

			w := httptest.NewRecorder()
			newTestRouter(svc, 1).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestDeleteGymHandler(t *testing.T) {
	svc := new(MockService)
	svc.On("Delete", mock.Anything, 1, 5).Return(nil)

	w := httptest.NewRecorder()
	newTestRouter(svc, 1).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/gyms/5", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertExpectations(t)
}
