package staff

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
	r.GET("/gyms/:gymId/staff", h.ListStaff)
	r.POST("/gyms/:gymId/staff", h.CreateStaff)
	r.GET("/staff/:id", h.GetStaff)
	r.PUT("/staff/:id", h.UpdateStaff)
	r.DELETE("/staff/:id", h.DeleteStaff)
}

// ListStaff godoc
// @Summary      List staff of a gym
// @Tags         staff
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {array}   Staff
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/staff [get]
func (h *Handler) ListStaff(c *gin.Context) {
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

// CreateStaff godoc
// @Summary      Add staff member
// @Tags         staff
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        gymId    path      int                 true  "Gym ID"
// @Param        request  body      CreateStaffRequest  true  "Staff data"
// @Success      201      {object}  Staff
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/staff [post]
func (h *Handler) CreateStaff(c *gin.Context) {
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

	var req CreateStaffRequest
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

// @Summary  Get staff member
// @Tags     staff
// @Security BearerAuth
// @Param    id  path  int  true  "Staff ID"
// @Success  200 {object} Staff
// @Router   /api/staff/{id} [get]
func (h *Handler) GetStaff(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "staff")
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

// @Summary  Update staff member
// @Tags     staff
// @Security BearerAuth
// @Param    id       path  int                 true  "Staff ID"
// @Param    request  body  UpdateStaffRequest  true  "Fields to change"
// @Success  200 {object} Staff
// @Router   /api/staff/{id} [put]
func (h *Handler) UpdateStaff(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "staff")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateStaffRequest
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

// @Summary  Remove staff member
// @Tags     staff
// @Security BearerAuth
// @Param    id  path  int  true  "Staff ID"
// @Success  204
// @Router   /api/staff/{id} [delete]
func (h *Handler) DeleteStaff(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "staff")
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
