package orderControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/services/currency"
	"github.com/kk-clothing/storefront-api/services/order"
)

type CheckoutInput struct {
	PaymentMethod string `json:"payment_method" binding:"required"` // "card" or "bank"
	Currency      string `json:"currency"`
}

// POST /user/checkout
func Checkout(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		placed, err := svc.Checkout(c.Request.Context(), input.PaymentMethod, input.Currency)
		if err != nil {
			switch {
			case errors.Is(err, order.ErrEmptyCart):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.Is(err, currency.ErrUnsupportedCurrency):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}
		c.JSON(http.StatusCreated, placed)
	}
}

// GET /user/orders
func GetOrders(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, svc.Orders())
	}
}
