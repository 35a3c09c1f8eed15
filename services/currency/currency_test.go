package currency

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	got, err := Convert(10000, "PKR", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(36), got)

	got, err = Convert(36, "USD", "PKR")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), got)

	// Identity.
	got, err = Convert(6500, "PKR", "PKR")
	require.NoError(t, err)
	assert.Equal(t, int64(6500), got)
}

// Converting there and back again must land within integer rounding
// tolerance of the original amount.
func TestConvertRoundTrip(t *testing.T) {
	codes := []string{"PKR", "USD", "AED", "GBP"}
	amounts := []float64{100, 999, 6500, 15000, 100000}

	for _, from := range codes {
		for _, to := range codes {
			for _, amount := range amounts {
				there, err := Convert(amount, from, to)
				require.NoError(t, err)
				back, err := Convert(float64(there), to, from)
				require.NoError(t, err)

				// One unit of the weakest currency involved can be lost to
				// rounding in each direction.
				tolerance := math.Ceil(1/ratesMin(from, to)) + 1
				assert.InDeltaf(t, amount, float64(back), tolerance,
					"%v %s -> %s -> %s", amount, from, to, from)
			}
		}
	}
}

func ratesMin(a, b string) float64 {
	ra, rb := rates[a], rates[b]
	if ra < rb {
		return ra
	}
	return rb
}

func TestConvertUnsupportedCurrency(t *testing.T) {
	_, err := Convert(100, "EUR", "PKR")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	_, err = Convert(100, "PKR", "EUR")
	assert.ErrorIs(t, err, ErrUnsupportedCurrency)

	assert.True(t, Supported("AED"))
	assert.False(t, Supported("EUR"))
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "PKR", Symbol("PKR"))
	assert.Equal(t, "EUR", Symbol("EUR"))
}
