package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/leadflow-api/internal/application/service"
	"github.com/sangkips/leadflow-api/internal/presentation/http/dto/response"
)

// NotificationHandler exposes failures of background store writes
type NotificationHandler struct {
	notifier *service.Notifier
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifier *service.Notifier) *NotificationHandler {
	return &NotificationHandler{notifier: notifier}
}

// List handles listing recent notifications, newest first
func (h *NotificationHandler) List(c *gin.Context) {
	response.OK(c, "Notifications retrieved successfully", h.notifier.Recent())
}

// Clear handles dismissing every notification
func (h *NotificationHandler) Clear(c *gin.Context) {
	h.notifier.Clear()
	response.NoContent(c)
}
