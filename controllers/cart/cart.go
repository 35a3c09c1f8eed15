package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/services/cart"
)

type AddItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size"`
}

type SetQuantityInput struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// POST /user/cart
func AddCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := svc.Add(input.ProductID, input.Size)
		if err != nil {
			if errors.Is(err, cart.ErrProductNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /user/cart/:product_id
func SetCartItemQuantity(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := svc.SetQuantity(c.Param("product_id"), *input.Quantity); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": svc.Items(), "total": svc.Total()})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Remove(c.Param("product_id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /user/cart
func GetCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": svc.Items(), "total": svc.Total()})
	}
}
