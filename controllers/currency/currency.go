package currencyControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kk-clothing/storefront-api/services/currency"
)

// Convert converts an amount between supported currency codes.
// GET /currency/convert?amount=6500&from=PKR&to=USD
func Convert() gin.HandlerFunc {
	return func(c *gin.Context) {
		amount, err := strconv.ParseFloat(c.Query("amount"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
			return
		}
		from := c.DefaultQuery("from", "PKR")
		to := c.Query("to")

		converted, err := currency.Convert(amount, from, to)
		if err != nil {
			if errors.Is(err, currency.ErrUnsupportedCurrency) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported currency"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Conversion failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"amount":    converted,
			"currency":  to,
			"symbol":    currency.Symbol(to),
			"from":      from,
			"converted": true,
		})
	}
}
