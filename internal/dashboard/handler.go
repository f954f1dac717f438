package dashboard

import (
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/apperr"

	"github.com/gin-gonic/gin"
)

const maxRecentLimit = 100

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gyms/:gymId/dashboard", h.GetDashboard)
	r.GET("/gyms/:gymId/stats", h.GetStats)
	r.GET("/gyms/:gymId/revenue", h.GetRevenue)
	r.GET("/gyms/:gymId/memberships/distribution", h.GetDistribution)
	r.GET("/gyms/:gymId/memberships/expiring", h.GetExpiring)
	r.GET("/gyms/:gymId/payments/recent", h.GetRecentPayments)
}

func gymParams(c *gin.Context) (userID, gymID int, err error) {
	if userID, err = api.UserID(c); err != nil {
		return 0, 0, err
	}
	if gymID, err = api.ParamID(c, "gymId", "gym"); err != nil {
		return 0, 0, err
	}
	return userID, gymID, nil
}

// GetDashboard godoc
// @Summary      Gym dashboard
// @Description  Stats, active membership distribution, 12 months of revenue, the 5 latest payments and memberships ending within 7 days.
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {object}  Overview
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	userID, gymID, err := gymParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	overview, err := h.service.Dashboard(c.Request.Context(), userID, gymID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, overview)
}

// GetStats godoc
// @Summary      Gym summary statistics
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {object}  Stats
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	userID, gymID, err := gymParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID, gymID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetRevenue godoc
// @Summary      Revenue overview
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        gymId   path      int     true   "Gym ID"
// @Param        period  query     string  false  "monthly (12 months) or yearly (5 years)"  Enums(monthly, yearly)  default(monthly)
// @Success      200     {array}   RevenuePoint
// @Failure      400     {object}  api.ErrorResponse
// @Failure      403     {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/revenue [get]
func (h *Handler) GetRevenue(c *gin.Context) {
	userID, gymID, err := gymParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	points, err := h.service.RevenueOverview(c.Request.Context(), userID, gymID, c.DefaultQuery("period", PeriodMonthly))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// GetDistribution godoc
// @Summary      Active memberships by plan type
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {array}   TypeCount
// @Failure      403    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/memberships/distribution [get]
func (h *Handler) GetDistribution(c *gin.Context) {
	userID, gymID, err := gymParams(c)
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.service.MembershipDistribution(c.Request.Context(), userID, gymID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetExpiring godoc
// @Summary      Memberships ending soon
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true   "Gym ID"
// @Param        days   query     int  false  "Window in days, 0 for today"  default(7)
// @Success      200    {array}   membership.Membership
// @Failure      400    {object}  api.ErrorResponse
// @Failure      403    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/memberships/expiring [get]
func (h *Handler) GetExpiring(c *gin.Context) {
	userID, gymID, err := gymParams(c)
	if err != nil {
		c.Error(err)
		return
	}
	days, err := api.QueryNonNegativeInt(c, "days", dashboardExpiringDays)
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.service.ExpiringMemberships(c.Request.Context(), userID, gymID, days)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetRecentPayments godoc
// @Summary      Latest payments of a gym
// @Tags         dashboard
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true   "Gym ID"
// @Param        limit  query     int  false  "Max payments (1-100)"  default(5)
// @Success      200    {array}   payment.Payment
// @Failure      400    {object}  api.ErrorResponse
// @Failure      403    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/payments/recent [get]
func (h *Handler) GetRecentPayments(c *gin.Context) {
	userID, gymID, err := gymParams(c)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := api.QueryInt(c, "limit", dashboardRecentLimit)
	if err != nil {
		c.Error(err)
		return
	}
	if limit > maxRecentLimit {
		c.Error(apperr.Validation(apperr.Field("limit", "limit must be less than or equal to 100")))
		return
	}

	list, err := h.service.RecentPayments(c.Request.Context(), userID, gymID, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}
