package notificationControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/services/chat"
	"github.com/kk-clothing/storefront-api/services/mailbox"
)

// Admin inbox handlers.

// GET /admin/notifications
func GetAdminNotifications(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, box.AdminNotifications())
	}
}

// PUT /admin/notifications/:id/read
func MarkAdminNotificationRead(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		box.MarkAdminRead(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"unread_count": box.AdminUnreadCount()})
	}
}

// GET /admin/notifications/unread-count
func GetAdminUnreadCount(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"unread_count": box.AdminUnreadCount()})
	}
}

type ReplyInput struct {
	ChatID  string `json:"chat_id" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// POST /admin/reply
func AdminReply(engine *chat.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ReplyInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		msg := engine.AdminReply(input.ChatID, input.Message)
		c.JSON(http.StatusOK, msg)
	}
}

// Visitor inbox handlers.

// GET /user/notifications
func GetUserNotifications(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, box.UserNotifications())
	}
}

// PUT /user/notifications/:id/read
func MarkUserNotificationRead(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		box.MarkUserRead(c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"unread_count": box.UserUnreadCount()})
	}
}

// PUT /user/notifications/read-all
func ClearAllUserNotifications(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		box.ClearAllUserNotifications()
		c.JSON(http.StatusOK, gin.H{"unread_count": 0})
	}
}

// GET /user/notifications/unread-count
func GetUserUnreadCount(box *mailbox.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"unread_count": box.UserUnreadCount()})
	}
}
