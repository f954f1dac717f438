package payment

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gymdesk/internal/access"
	"gymdesk/internal/access/accesstest"
	"gymdesk/internal/api"
	"gymdesk/internal/apperr"
	"gymdesk/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestRouter(repo Repository, gate access.Gate) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(api.ErrorHandler(false), func(c *gin.Context) { auth.SetUserID(c, 1); c.Next() })
	NewHandler(NewService(repo, gate, nil, nil)).RegisterRoutes(r.Group("/api"))
	return r
}

func TestCreatePaymentHandlerAmountBoundary(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{"zero accepted", `{"amount":0,"paymentMethod":"cash"}`, http.StatusCreated},
		{"negative rejected", `{"amount":-1,"paymentMethod":"cash"}`, http.StatusBadRequest},
		{"missing amount", `{"paymentMethod":"cash"}`, http.StatusBadRequest},
		{"unknown status", `{"amount":10,"paymentMethod":"cash","status":"refunded"}`, http.StatusBadRequest},
		{"netbanking", `{"amount":1500,"paymentMethod":"netbanking"}`, http.StatusCreated},
		{"free text method", `{"amount":1500,"paymentMethod":"Bank Transfer"}`, http.StatusCreated},
		{"empty method", `{"amount":10,"paymentMethod":""}`, http.StatusBadRequest},
		{"method too long", `{"amount":10,"paymentMethod":"` + strings.Repeat("x", 51) + `"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, gate := new(MockRepository), new(accesstest.MockGate)
			gate.Allow(1, access.KindMember, 3)
			repo.On("Create", mock.Anything, 3, mock.Anything).Return(&Payment{ID: 1, MemberID: 3, Status: StatusPaid}, nil)

			w := httptest.NewRecorder()
			newTestRouter(repo, gate).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/members/3/payments", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestGetPaymentHandlerNotFound(t *testing.T) {
	repo, gate := new(MockRepository), new(accesstest.MockGate)
	gate.Deny(1, access.KindPayment, 40, errNotFound())

	w := httptest.NewRecorder()
	newTestRouter(repo, gate).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/payments/40", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Payment not found"}`, w.Body.String())
}

func errNotFound() error {
	return apperr.NotFound("Payment not found")
}
