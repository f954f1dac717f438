package gym

import (
	"net/http"

	"gymdesk/internal/api"
	"gymdesk/internal/apperr"
	"gymdesk/internal/auth"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gyms", h.ListGyms)
	r.POST("/gyms", h.CreateGym)
	r.GET("/gyms/:gymId", h.GetGym)
	r.PUT("/gyms/:gymId", h.UpdateGym)
	r.DELETE("/gyms/:gymId", h.DeleteGym)
}

// ListGyms godoc
// @Summary      List gyms
// @Description  Returns the gyms owned by the caller.
// @Tags         gyms
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Gym
// @Failure      401  {object}  api.ErrorResponse
// @Router       /api/gyms [get]
func (h *Handler) ListGyms(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.Error(apperr.Unauthorized("User not authenticated"))
		return
	}

	gyms, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gyms)
}

// CreateGym godoc
// @Summary      Create gym
// @Tags         gyms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateGymRequest  true  "Gym data"
// @Success      201      {object}  Gym
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/gyms [post]
func (h *Handler) CreateGym(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.Error(apperr.Unauthorized("User not authenticated"))
		return
	}

	var req CreateGymRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	gym, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gym)
}

// GetGym godoc
// @Summary      Get gym
// @Tags         gyms
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {object}  Gym
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId} [get]
func (h *Handler) GetGym(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.Error(apperr.Unauthorized("User not authenticated"))
		return
	}

	id, err := api.ParamID(c, "gymId", "gym")
	if err != nil {
		c.Error(err)
		return
	}

	gym, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gym)
}

// UpdateGym godoc
// @Summary      Update gym
// @Description  Applies the supplied fields only.
// @Tags         gyms
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        gymId    path      int               true  "Gym ID"
// @Param        request  body      UpdateGymRequest  true  "Fields to change"
// @Success      200      {object}  Gym
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId} [put]
func (h *Handler) UpdateGym(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.Error(apperr.Unauthorized("User not authenticated"))
		return
	}

	id, err := api.ParamID(c, "gymId", "gym")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateGymRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	gym, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gym)
}

// DeleteGym godoc
// @Summary      Delete gym
// @Description  Fails with 409 while staff, plans or members still reference the gym.
// @Tags         gyms
// @Security     BearerAuth
// @Param        gymId  path  int  true  "Gym ID"
// @Success      204
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId} [delete]
func (h *Handler) DeleteGym(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.Error(apperr.Unauthorized("User not authenticated"))
		return
	}

	id, err := api.ParamID(c, "gymId", "gym")
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
