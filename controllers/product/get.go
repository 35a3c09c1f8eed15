package productController

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/services/catalog"
)

// GetProducts returns the catalog, optionally filtered.
// Query params: category, q (free-text search), min_price, max_price.
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		if category := c.Query("category"); category != "" {
			c.JSON(http.StatusOK, catalog.ProductsByCategory(category))
			return
		}
		if q := c.Query("q"); q != "" {
			c.JSON(http.StatusOK, catalog.SearchProducts(q))
			return
		}
		if c.Query("min_price") != "" || c.Query("max_price") != "" {
			min, err := parsePrice(c.Query("min_price"), 0)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			max, err := parsePrice(c.Query("max_price"), 50000)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			c.JSON(http.StatusOK, catalog.ProductsByPriceRange(min, max))
			return
		}
		c.JSON(http.StatusOK, catalog.AllProducts())
	}
}

func parsePrice(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// SearchProducts answers the storefront search bar.
// GET /search?q=
func SearchProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "q is required"})
			return
		}
		c.JSON(http.StatusOK, catalog.SearchProducts(q))
	}
}

// GetProductByID returns a single catalog entry.
// URL param: /products/:id
func GetProductByID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		product, ok := catalog.ProductByID(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// GetCategories returns the storefront section summaries.
func GetCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog.Categories())
	}
}
