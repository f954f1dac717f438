package payment

import (
	"net/http"

	"gymdesk/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gyms/:gymId/payments", h.ListGymPayments)
	r.GET("/members/:memberId/payments", h.ListMemberPayments)
	r.POST("/members/:memberId/payments", h.CreatePayment)
	r.GET("/payments/:id", h.GetPayment)
	r.PUT("/payments/:id", h.UpdatePayment)
	r.DELETE("/payments/:id", h.DeletePayment)
}

// ListGymPayments godoc
// @Summary      List payments of a gym
// @Description  Most recent payment first.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {array}   Payment
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/payments [get]
func (h *Handler) ListGymPayments(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	gymID, err := api.ParamID(c, "gymId", "gym")
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.service.ListByGym(c.Request.Context(), userID, gymID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// ListMemberPayments godoc
// @Summary      List payments of a member
// @Description  Most recent payment first.
// @Tags         payments
// @Security     BearerAuth
// @Produce      json
// @Param        memberId  path      int  true  "Member ID"
// @Success      200       {array}   Payment
// @Router       /api/members/{memberId}/payments [get]
func (h *Handler) ListMemberPayments(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	memberID, err := api.ParamID(c, "memberId", "member")
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.service.ListByMember(c.Request.Context(), userID, memberID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreatePayment godoc
// @Summary      Record a payment
// @Description  paymentDate defaults to now and status to paid.
// @Tags         payments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberId  path      int                   true  "Member ID"
// @Param        request   body      CreatePaymentRequest  true  "Payment data"
// @Success      201       {object}  Payment
// @Failure      400       {object}  api.ErrorResponse
// @Failure      403       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /api/members/{memberId}/payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	memberID, err := api.ParamID(c, "memberId", "member")
	if err != nil {
		c.Error(err)
		return
	}

	var req CreatePaymentRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	p, err := h.service.Create(c.Request.Context(), userID, memberID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary  Get payment
// @Tags     payments
// @Security BearerAuth
// @Param    id  path  int  true  "Payment ID"
// @Success  200 {object} Payment
// @Router   /api/payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "payment")
	if err != nil {
		c.Error(err)
		return
	}

	p, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary  Update payment
// @Tags     payments
// @Security BearerAuth
// @Param    id       path  int                   true  "Payment ID"
// @Param    request  body  UpdatePaymentRequest  true  "Fields to change"
// @Success  200 {object} Payment
// @Router   /api/payments/{id} [put]
func (h *Handler) UpdatePayment(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "payment")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdatePaymentRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	p, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary  Delete payment
// @Tags     payments
// @Security BearerAuth
// @Param    id  path  int  true  "Payment ID"
// @Success  204
// @Router   /api/payments/{id} [delete]
func (h *Handler) DeletePayment(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "payment")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
