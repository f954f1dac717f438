package notification

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
	r.GET("/notifications", h.ListNotifications)
	r.POST("/notifications", h.CreateNotification)
	r.GET("/notifications/unread-count", h.UnreadCount)
	r.PUT("/notifications/read-all", h.MarkAllRead)
	r.PUT("/notifications/:id/read", h.MarkRead)
	r.DELETE("/notifications/:id", h.DeleteNotification)
}

// ListNotifications godoc
// @Summary      List notifications
// @Description  Newest first. limit is optional.
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of notifications"
// @Success      200    {array}   Notification
// @Failure      401    {object}  api.ErrorResponse
// @Router       /api/notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	limit, err := api.QueryInt(c, "limit", 0)
	if err != nil {
		c.Error(err)
		return
	}

	list, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// CreateNotification godoc
// @Summary      Create notification for the caller
// @Tags         notifications
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateNotificationRequest  true  "Notification"
// @Success      201      {object}  Notification
// @Failure      400      {object}  api.ErrorResponse
// @Router       /api/notifications [post]
func (h *Handler) CreateNotification(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req CreateNotificationRequest
	if err := api.BindJSON(c, &req); err != nil {
		c.Error(err)
		return
	}

	n, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, n)
}

// UnreadCount godoc
// @Summary      Count unread notifications
// @Tags         notifications
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  api.CountResponse
// @Router       /api/notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	count, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, api.CountResponse{Count: count})
}

// MarkRead godoc
// @Summary      Mark one notification as read
// @Tags         notifications
// @Security     BearerAuth
// @Param        id  path  int  true  "Notification ID"
// @Success      204
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /api/notifications/{id}/read [put]
func (h *Handler) MarkRead(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "notification")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead godoc
// @Summary      Mark all notifications as read
// @Description  Safe to repeat.
// @Tags         notifications
// @Security     BearerAuth
// @Success      204
// @Router       /api/notifications/read-all [put]
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary  Delete notification
// @Tags     notifications
// @Security BearerAuth
// @Param    id  path  int  true  "Notification ID"
// @Success  204
// @Router   /api/notifications/{id} [delete]
func (h *Handler) DeleteNotification(c *gin.Context) {
	userID, err := api.UserID(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := api.ParamID(c, "id", "notification")
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
