package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/auth"
	notificationControllers "github.com/kk-clothing/storefront-api/controllers/notification"
	"github.com/kk-clothing/storefront-api/services/cart"
	"github.com/kk-clothing/storefront-api/services/chat"
	"github.com/kk-clothing/storefront-api/services/engagement"
	"github.com/kk-clothing/storefront-api/services/mailbox"
	"github.com/kk-clothing/storefront-api/services/order"
)

// Deps bundles the storefront services the route handlers close over.
type Deps struct {
	Auth       *auth.Service
	Cart       *cart.Service
	Orders     *order.Service
	Mailbox    *mailbox.Service
	Engagement *engagement.Service
	Chat       *chat.Engine
	Hub        *notificationControllers.Hub
}

// SetupRoutes is the single entry point that wires up the public, user and
// admin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// Public routes (no middleware)
	SetupPublicRoutes(r, deps)

	// User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, deps)
}
