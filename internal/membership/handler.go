package membership

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
	r.GET("/gyms/:gymId/memberships", h.ListGymMemberships)
	r.GET("/members/:memberId/memberships", h.ListMemberMemberships)
	r.POST("/members/:memberId/memberships", h.CreateMembership)
	r.GET("/memberships/:id", h.GetMembership)
	r.PUT("/memberships/:id", h.UpdateMembership)
	r.DELETE("/memberships/:id", h.DeleteMembership)
}

// ListGymMemberships godoc
// @Summary      List memberships of a gym
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {array}   Membership
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/memberships [get]
func (h *Handler) ListGymMemberships(c *gin.Context) {
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

// ListMemberMemberships godoc
// @Summary      List memberships of a member
// @Tags         memberships
// @Security     BearerAuth
// @Produce      json
// @Param        memberId  path      int  true  "Member ID"
// @Success      200       {array}   Membership
// @Router       /api/members/{memberId}/memberships [get]
func (h *Handler) ListMemberMemberships(c *gin.Context) {
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

// CreateMembership godoc
// @Summary      Grant a plan to a member
// @Description  endDate defaults to startDate plus the plan duration.
// @Tags         memberships
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberId  path      int                      true  "Member ID"
// @Param        request   body      CreateMembershipRequest  true  "Membership data"
// @Success      201       {object}  Membership
// @Failure      400       {object}  api.ErrorResponse
// @Failure      403       {object}  api.ErrorResponse
// @Failure      404       {object}  api.ErrorResponse
// @Router       /api/members/{memberId}/memberships [post]
func (h *Handler) CreateMembership(c *gin.Context) {
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

	var req CreateMembershipRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	m, err := h.service.Create(c.Request.Context(), userID, memberID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary  Get membership
// @Tags     memberships
// @Security BearerAuth
// @Param    id  path  int  true  "Membership ID"
// @Success  200 {object} Membership
// @Router   /api/memberships/{id} [get]
func (h *Handler) GetMembership(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "membership")
	if err != nil {
		c.Error(err)
		return
	}

	m, err := h.service.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary  Update membership
// @Description  Status changes are caller driven; cancelling is done here.
// @Tags     memberships
// @Security BearerAuth
// @Param    id       path  int                      true  "Membership ID"
// @Param    request  body  UpdateMembershipRequest  true  "Fields to change"
// @Success  200 {object} Membership
// @Router   /api/memberships/{id} [put]
func (h *Handler) UpdateMembership(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "membership")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateMembershipRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	m, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary  Delete membership
// @Tags     memberships
// @Security BearerAuth
// @Param    id  path  int  true  "Membership ID"
// @Success  204
// @Router   /api/memberships/{id} [delete]
func (h *Handler) DeleteMembership(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "membership")
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
