package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"gymdesk/internal/access"
	"gymdesk/internal/api"
	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/dashboard"
	"gymdesk/internal/email"
	"gymdesk/internal/gym"
	"gymdesk/internal/member"
	"gymdesk/internal/membership"
	"gymdesk/internal/notification"
	"gymdesk/internal/payment"
	"gymdesk/internal/plan"
	"gymdesk/internal/report"
	"gymdesk/internal/staff"
	"gymdesk/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
}

// New builds the router and every service behind it. emailService may be
// nil, in which case no receipts are queued.
func New(cfg *config.Config, database *sqlx.DB, rdb *redis.Client, emailService *email.Service) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		RecoveryMiddleware(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
	)
	if cfg.IsProduction() {
		router.Use(SecurityHeadersMiddleware())
	}
	router.Use(api.ErrorHandler(cfg.IsProduction()))

	router.GET("/health", Health(database, rdb))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	var tokens *auth.TokenStore
	if rdb != nil {
		tokens = auth.NewTokenStore(rdb)
	}

	gate := access.NewGate(access.NewRepository(database))

	notificationService := notification.NewService(notification.NewRepository(database), gate)
	membershipRepo := membership.NewRepository(database)
	paymentRepo := payment.NewRepository(database)

	var mailer payment.Mailer
	if emailService != nil {
		mailer = emailService
	}

	var revoker user.Revoker
	var checker auth.RevocationChecker
	if tokens != nil {
		revoker, checker = tokens, tokens
	}

	dashboardService := dashboard.NewService(dashboard.NewRepository(database), membershipRepo, paymentRepo, gate, time.Now)

	userHandler := user.NewHandler(user.NewService(user.NewRepository(database), revoker, cfg.Auth.JWTSecret))
	handlers := []interface{ RegisterRoutes(*gin.RouterGroup) }{
		gym.NewHandler(gym.NewService(gym.NewRepository(database), gate)),
		staff.NewHandler(staff.NewService(staff.NewRepository(database), gate)),
		plan.NewHandler(plan.NewService(plan.NewRepository(database), gate)),
		member.NewHandler(member.NewService(member.NewRepository(database), gate)),
		membership.NewHandler(membership.NewService(membershipRepo, gate)),
		payment.NewHandler(payment.NewService(paymentRepo, gate, notificationService, mailer)),
		notification.NewHandler(notificationService),
		dashboard.NewHandler(dashboardService),
		report.NewHandler(report.NewService(dashboardService)),
	}

	apiGroup := router.Group("/api")
	public := apiGroup.Group("", RateLimitMiddleware(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst))
	protected := apiGroup.Group("", auth.AuthMiddleware(cfg.Auth.JWTSecret, checker))

	userHandler.RegisterRoutes(public, protected)
	for _, h := range handlers {
		h.RegisterRoutes(protected)
	}

	return &Server{
		router: router,
		config: cfg,
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
