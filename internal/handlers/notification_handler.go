package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chretie17/nadege-backend/internal/httperr"
	"github.com/chretie17/nadege-backend/internal/httpresp"
	"github.com/chretie17/nadege-backend/internal/models"
)

// Read surface over appointment_notifications. The notify dispatcher is
// the only writer; this handler just serves the feed.
type NotificationHandler struct {
	db *gorm.DB
}

func NewNotificationHandler(db *gorm.DB) *NotificationHandler {
	return &NotificationHandler{db: db}
}

// GET /api/notifications/:user_id?limit=&offset=
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 {
		limit = 10
	}

	var rows []models.AppointmentNotification
	err := h.db.
		Where("user_id = ?", userID).
		Order("sent_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	httpresp.List(c, rows)
}

// GET /api/notifications/:user_id/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	var count int64
	err := h.db.
		Model(&models.AppointmentNotification{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"unread_count": count})
}

// PUT /api/notifications/:user_id/read/:id
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}
	id, ok := paramUint(c, "id")
	if !ok {
		return
	}

	res := h.db.
		Model(&models.AppointmentNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if res.Error != nil {
		httperr.Internal(c, "internal_error", res.Error.Error())
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, httperr.CodeNotFound, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// PUT /api/notifications/:user_id/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := paramUint(c, "user_id")
	if !ok {
		return
	}

	err := h.db.
		Model(&models.AppointmentNotification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error
	if err != nil {
		httperr.Internal(c, "internal_error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
