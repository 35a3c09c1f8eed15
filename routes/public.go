package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/auth"
	currencyControllers "github.com/kk-clothing/storefront-api/controllers/currency"
	productController "github.com/kk-clothing/storefront-api/controllers/product"
)

// SetupPublicRoutes registers everything a visitor can reach without a
// session: browsing, search, currency conversion and the mock social login.
func SetupPublicRoutes(r *gin.Engine, deps *Deps) {
	// ──────────────── Browse Products ────────────────
	r.GET("/products", productController.GetProducts())
	r.GET("/products/:id", productController.GetProductByID())
	r.GET("/categories", productController.GetCategories())
	r.GET("/search", productController.SearchProducts())

	// ──────────────── Product Engagement ────────────────
	r.GET("/products/:id/views", productController.GetViews(deps.Engagement))
	r.POST("/products/:id/views", productController.RecordView(deps.Engagement))
	r.POST("/products/:id/rating", productController.SubmitRating(deps.Engagement))

	// ──────────────── Currency ────────────────
	r.GET("/currency/convert", currencyControllers.Convert())

	// ──────────────── Mock Social Login ────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/accounts", auth.ListAccounts(deps.Auth))
		authGroup.POST("/social", auth.SocialLogin(deps.Auth))
		authGroup.POST("/logout", auth.Logout(deps.Auth))
	}
}
