package productController

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/services/catalog"
	"github.com/kk-clothing/storefront-api/services/engagement"
)

// GetViews returns a product's view counters without recording a view.
// GET /products/:id/views
func GetViews(svc *engagement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Views(c.Param("id")))
	}
}

// RecordView counts a product-page view, deduplicated per session.
// POST /products/:id/views, body: {"session_id": "..."}
func RecordView(svc *engagement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.ProductByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input struct {
			SessionID string `json:"session_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, svc.RecordView(id, input.SessionID))
	}
}

// SubmitRating stores the visitor's star rating for a product.
// POST /products/:id/rating, body: {"stars": 1..5}
func SubmitRating(svc *engagement.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := catalog.ProductByID(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		var input struct {
			Stars int `json:"stars" binding:"required,min=1,max=5"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		svc.SetRating(id, input.Stars)
		c.JSON(http.StatusOK, gin.H{"message": "Thank you for rating!"})
	}
}
