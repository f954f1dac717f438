package member

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
	r.GET("/gyms/:gymId/members", h.ListMembers)
	r.POST("/gyms/:gymId/members", h.CreateMember)
	r.GET("/members/:memberId", h.GetMember)
	r.PUT("/members/:memberId", h.UpdateMember)
	r.DELETE("/members/:memberId", h.DeleteMember)
}

// ListMembers godoc
// @Summary      List members of a gym
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        gymId  path      int  true  "Gym ID"
// @Success      200    {array}   Member
// @Failure      403    {object}  api.ErrorResponse
// @Failure      404    {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
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

	members, err := h.service.List(c.Request.Context(), userID, gymID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember godoc
// @Summary      Create member
// @Description  active defaults to true when omitted.
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        gymId    path      int                  true  "Gym ID"
// @Param        request  body      CreateMemberRequest  true  "Member data"
// @Success      201      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/gyms/{gymId}/members [post]
func (h *Handler) CreateMember(c *gin.Context) {
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

	var req CreateMemberRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	m, err := h.service.Create(c.Request.Context(), userID, gymID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// GetMember godoc
// @Summary      Get member
// @Tags         members
// @Security     BearerAuth
// @Produce      json
// @Param        memberId  path      int  true  "Member ID"
// @Success      200  {object}  Member
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/members/{memberId} [get]
func (h *Handler) GetMember(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "memberId", "member")
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

// UpdateMember godoc
// @Summary      Update member
// @Tags         members
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        memberId  path      int                  true  "Member ID"
// @Param        request  body      UpdateMemberRequest  true  "Fields to change"
// @Success      200      {object}  Member
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /api/members/{memberId} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "memberId", "member")
	if err != nil {
		c.Error(err)
		return
	}

	var req UpdateMemberRequest
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

// DeleteMember godoc
// @Summary      Delete member
// @Description  Fails with 409 while memberships or payments reference the member.
// @Tags         members
// @Security     BearerAuth
// @Param        memberId  path  int  true  "Member ID"
// @Success      204
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Failure      409  {object}  api.ErrorResponse
// @Router       /api/members/{memberId} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "memberId", "member")
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
