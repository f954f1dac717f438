package user

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gymdesk/internal/api"
	"gymdesk/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, req RegisterRequest) (*User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockService) Login(ctx context.Context, req LoginRequest) (*User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockService) Logout(ctx context.Context, tokenID string, expiresAt time.Time) error {
	return m.Called(ctx, tokenID, expiresAt).Error(0)
}

func (m *MockService) GetByID(ctx context.Context, userID int) (*User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockService) RefreshToken(ctx context.Context, refreshToken string) (string, *User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(1) == nil {
		return "", nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*User), args.Error(2)
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(api.ErrorHandler(false))
	h := NewHandler(svc)
	public := r.Group("/api")
	protected := r.Group("/api", auth.AuthMiddleware(testSecret, nil))
	h.RegisterRoutes(public, protected)
	return r
}

func TestRegisterHandler(t *testing.T) {
	svc := new(MockService)
	req := RegisterRequest{Username: "owner", Password: "owner123", Name: "Owner", Email: "owner@example.com"}
	svc.On("Register", mock.Anything, req).Return(&User{ID: 1, Username: "owner", Password: "hash"}, "a", "r", nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hash")

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "a", resp.AccessToken)
	assert.Equal(t, "owner", resp.User.Username)
}

func TestRegisterHandlerValidation(t *testing.T) {
	svc := new(MockService)

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewBufferString(`{"username":"ow","password":"123"}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password must be at least 6 characters")
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	svc := new(MockService)
	svc.On("Login", mock.Anything, LoginRequest{Username: "owner", Password: "bad"}).Return(nil, "", "", ErrInvalidCredentials)

	w := httptest.NewRecorder()
	newTestRouter(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewBufferString(`{"username":"owner","password":"bad"}`)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Invalid username or password"}`, w.Body.String())
}

func TestGetMeAndLogout(t *testing.T) {
	token, err := auth.GenerateAccessToken(9, "owner", RoleOwner, testSecret)
	require.NoError(t, err)
	claims, _ := auth.ValidateToken(token, testSecret)

	svc := new(MockService)
	svc.On("GetByID", mock.Anything, 9).Return(&User{ID: 9, Username: "owner"}, nil)
	svc.On("Logout", mock.Anything, claims.ID, claims.ExpiresAt.Time).Return(nil)
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"owner"`)

	req = httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	svc.AssertExpectations(t)
}

func TestGetMeRequiresToken(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(new(MockService)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/user", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
