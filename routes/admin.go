package routes

import (
	"github.com/gin-gonic/gin"

	chatControllers "github.com/kk-clothing/storefront-api/controllers/chat"
	notificationControllers "github.com/kk-clothing/storefront-api/controllers/notification"
	orderControllers "github.com/kk-clothing/storefront-api/controllers/order"
	productController "github.com/kk-clothing/storefront-api/controllers/product"
	"github.com/kk-clothing/storefront-api/middleware"
)

// SetupAdminRoutes registers the dashboard endpoints, guarded by the API key.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ──────────────── Visitor Requests ────────────────
		adminGroup.GET("/notifications", notificationControllers.GetAdminNotifications(deps.Mailbox))
		adminGroup.GET("/notifications/unread-count", notificationControllers.GetAdminUnreadCount(deps.Mailbox))
		adminGroup.PUT("/notifications/:id/read", notificationControllers.MarkAdminNotificationRead(deps.Mailbox))
		adminGroup.POST("/reply", notificationControllers.AdminReply(deps.Chat))

		// ──────────────── Chat Review ────────────────
		adminGroup.GET("/chats", chatControllers.GetMessages(deps.Chat))

		// ──────────────── Exports ────────────────
		adminGroup.GET("/export/products", productController.ExportProductsToExcel())
		adminGroup.GET("/export/orders", orderControllers.ExportOrdersToExcel(deps.Orders))

		// ──────────────── Live Notifications ────────────────
		adminGroup.GET("/ws", notificationControllers.AdminNotificationSocket(deps.Hub))
	}
}
