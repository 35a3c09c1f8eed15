package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A message matching both a specific product and a price band must get the
// product answer: the chain is ordered most-specific-first.
func TestSpecificProductBeatsPriceBand(t *testing.T) {
	got := ProductResponse("is the silk kurta under 5000")
	assert.Contains(t, got, "Embroidered Silk Kurta")
	assert.NotContains(t, got, "products under PKR")
}

func TestPriceBandResponses(t *testing.T) {
	got := ProductResponse("anything below 5000?")
	assert.Contains(t, got, "products under PKR")
	assert.Contains(t, got, "Casual Chic Outfit (PKR 3200)")
	assert.Contains(t, got, "Designer Lawn Collection (PKR 4200)")

	got = ProductResponse("show me the mid range options")
	assert.Contains(t, got, "5000-10000")
	// 12000-listed, 9500-effective product counts as mid range.
	assert.Contains(t, got, "Formal Wear Ensemble (PKR 9500)")

	got = ProductResponse("something premium please")
	assert.Contains(t, got, "premium collection")
}

func TestCategoryResponses(t *testing.T) {
	got := ProductResponse("any new arrival items")
	assert.Contains(t, got, "New Arrivals collection")
	assert.Contains(t, got, "Designer Lawn Collection")

	got = ProductResponse("unstitched options")
	assert.Contains(t, got, "Unstitched collection")
}

func TestAttributeResponses(t *testing.T) {
	assert.Contains(t, ProductResponse("which sizes do you offer"), "Small (S), Medium (M)")
	assert.Contains(t, ProductResponse("what material do you use"), "Pure Silk")
	assert.Contains(t, ProductResponse("colour options"), "Color availability varies by product")
	assert.Contains(t, ProductResponse("is everything in stock"), "5 out of 5")
	assert.Contains(t, ProductResponse("how long is delivery"), "worldwide shipping")
}

func TestFallbackListsTopicsAndCatalogSize(t *testing.T) {
	got := ProductResponse("asdfgh")
	assert.Contains(t, got, "Specific products by name")
	assert.Contains(t, got, "5 available products")
}

func TestLocalizedResponse(t *testing.T) {
	// Urdu-script product query answers with Urdu fragments.
	got := ProductResponse("ریشمی کرتا")
	assert.Contains(t, got, "کی قیمت PKR")
	assert.Contains(t, got, "6500")
}

func TestResponderChainKeywordsAreLowercase(t *testing.T) {
	// Matching happens on the lowered message, so keyword entries must be
	// lowercase themselves.
	for _, r := range responders {
		for _, kw := range r.keywords {
			assert.Equal(t, strings.ToLower(kw), kw)
		}
	}
}
