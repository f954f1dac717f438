package plan

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
	r.GET("/gyms/:gymId/plans", h.ListPlans)
	r.POST("/gyms/:gymId/plans", h.CreatePlan)
	r.GET("/plans/:id", h.GetPlan)
	r.PUT("/plans/:id", h.UpdatePlan)
	r.DELETE("/plans/:id", h.DeletePlan)
}

// ListPlans godoc
// @Summary      List membership plans of a gym
// @Tags         plans
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {array}   Plan
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/plans [get]
func (h *Handler) ListPlans(c *gin.Context) {
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

	list, err := h.service.List(c.Request.Context(), userID, gymID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreatePlan godoc
// @Summary      Create membership plan
// @Tags         plans
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        gymId    path      int                 true  "Gym ID"
// @Param        request  body      CreatePlanRequest  true  "Plan data"
// @Success      201      {object}  Plan
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/plans [post]
func (h *Handler) CreatePlan(c *gin.Context) {
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

	var req CreatePlanRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	s, err := h.service.Create(c.Request.Context(), userID, gymID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

// @Summary  Get membership plan
// @Tags     plans
// @Security BearerAuth
// @Param    id  path  int  true  "Plan ID"
// @Success  200 {object} Plan
// @Router   /api/plans/{id} [get]
func (h *Handler) GetPlan(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "plan")
	if err != nil {
		c.Error(err)
		return
	}

	s, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary  Update membership plan
// @Tags     plans
// @Security BearerAuth
// @Param    id       path  int                 true  "Plan ID"
// @Param    request  body  UpdatePlanRequest  true  "Fields to change"
// @Success  200 {object} Plan
// @Router   /api/plans/{id} [put]
func (h *Handler) UpdatePlan(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "plan")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdatePlanRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	s, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary  Delete membership plan
// @Tags     plans
// @Security BearerAuth
// @Param    id  path  int  true  "Plan ID"
// @Success  204
// @Router   /api/plans/{id} [delete]
func (h *Handler) DeletePlan(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "plan")
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
