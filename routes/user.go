package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/kk-clothing/storefront-api/controllers/cart"
	chatControllers "github.com/kk-clothing/storefront-api/controllers/chat"
	notificationControllers "github.com/kk-clothing/storefront-api/controllers/notification"
	orderControllers "github.com/kk-clothing/storefront-api/controllers/order"
	"github.com/kk-clothing/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints plus the chat widget and
// the visitor notification socket. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps *Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Cart))
			cartGroup.POST("/", cartControllers.AddCartItem(deps.Cart))
			cartGroup.PUT("/:product_id", cartControllers.SetCartItemQuantity(deps.Cart))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(deps.Orders))
		userGroup.GET("/orders", orderControllers.GetOrders(deps.Orders))

		// ──────────────── Notifications ────────────────
		notifGroup := userGroup.Group("/notifications")
		{
			notifGroup.GET("/", notificationControllers.GetUserNotifications(deps.Mailbox))
			notifGroup.GET("/unread-count", notificationControllers.GetUserUnreadCount(deps.Mailbox))
			notifGroup.PUT("/read-all", notificationControllers.ClearAllUserNotifications(deps.Mailbox))
			notifGroup.PUT("/:id/read", notificationControllers.MarkUserNotificationRead(deps.Mailbox))
		}
	}

	// ──────────────── Chat Widget ────────────────
	chatGroup := r.Group("/chat")
	{
		chatGroup.POST("/messages", chatControllers.PostMessage(deps.Chat))
		chatGroup.GET("/messages", chatControllers.GetMessages(deps.Chat))
		chatGroup.GET("/language", chatControllers.GetDetectedLanguage())
	}

	// ──────────────── Live Notifications ────────────────
	r.GET("/ws/notifications", notificationControllers.UserNotificationSocket(deps.Hub))
}
