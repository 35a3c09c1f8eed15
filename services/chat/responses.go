package chat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kk-clothing/storefront-api/models"
	"github.com/kk-clothing/storefront-api/services/catalog"
)

// responder is one link of the canned-response chain. respond may decline
// (ok=false) even when the keywords matched, e.g. a referenced product id
// missing from the catalog, in which case evaluation falls through to the
// next link.
type responder struct {
	keywords []string
	respond  func(t translations) (string, bool)
}

func matchesAny(message string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(message, kw) {
			return true
		}
	}
	return false
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func listWithPrices(products []models.Product) string {
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, fmt.Sprintf("%s (PKR %s)", p.Name, formatPrice(p.EffectivePrice())))
	}
	return strings.Join(parts, ", ")
}

// responders is the ordered chain of canned responses. Order is load-bearing:
// specific products come before price bands, price bands before categories,
// categories before attribute answers, so the most specific applicable answer
// always wins.
var responders = []responder{
	{
		keywords: []string{"embroidered silk kurta", "kurta 1", "silk kurta", "کرتا", "ریشمی"},
		respond: func(t translations) (string, bool) {
			p, ok := catalog.ProductByID("1")
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%s %s %s (%s %s). %s %s %s %s. %s %s. %s %.1f %s %d %s.",
				p.Name, t.pricedAt, formatPrice(p.DiscountPrice), t.originally, formatPrice(p.Price),
				t.madeFrom, p.Fabric, t.availableInSizes, strings.Join(p.Sizes, ", "),
				t.colorsAvailable, strings.Join(p.Colors, ", "),
				t.rating, p.Rating, t.starRating, p.Reviews, t.reviews), true
		},
	},
	{
		keywords: []string{"designer lawn", "lawn collection", "لان", "ڈیزائنر"},
		respond: func(t translations) (string, bool) {
			p, ok := catalog.ProductByID("2")
			if !ok {
				return "", false
			}
			return fmt.Sprintf("%s %s %s (%s %s). %s %s, %s %s. Sizes: %s. %s %.1f %s %d customers.",
				p.Name, t.pricedAt, formatPrice(p.DiscountPrice), t.originally, formatPrice(p.Price),
				t.madeFrom, p.Fabric, t.colorsAvailable, strings.Join(p.Colors, ", "),
				strings.Join(p.Sizes, ", "),
				t.rating, p.Rating, t.starRating, p.Reviews), true
		},
	},
	{
		keywords: []string{"under 5000", "below 5000", "5000 se kam", "کم", "5000"},
		respond: func(t translations) (string, bool) {
			products := catalog.ProductsByPriceRange(0, 5000)
			return fmt.Sprintf("%s %d %s 5000: %s. %s.",
				t.productsUnder, len(products), t.productsUnderPKR, listWithPrices(products), t.greatValue), true
		},
	},
	{
		keywords: []string{"5000 to 10000", "mid range", "5000 se 10000", "درمیانی"},
		respond: func(t translations) (string, bool) {
			products := catalog.ProductsByPriceRange(5000, 10000)
			return fmt.Sprintf("%s 5000-10000 %s %d %s %s. %s.",
				t.inRange, t.rangeWord, len(products), t.beautifulOptions, listWithPrices(products), t.perfectBalance), true
		},
	},
	{
		keywords: []string{"above 10000", "premium", "luxury", "10000 se zyada", "پریمیم", "مہنگا"},
		respond: func(t translations) (string, bool) {
			products := catalog.ProductsByPriceRange(10000, 50000)
			return fmt.Sprintf("%s %s. %s.",
				t.premiumCollection, listWithPrices(products), t.finestPieces), true
		},
	},
	{
		keywords: []string{"new arrival", "نیا", "latest", "naya", "नया"},
		respond: func(t translations) (string, bool) {
			products := catalog.ProductsByCategory("New Arrivals")
			return fmt.Sprintf("%s %d %s %s. %s",
				t.newArrivalsFeatures, len(products), t.latestDesigns, listWithPrices(products), t.checkTrends), true
		},
	},
	{
		keywords: []string{"ready to wear", "تیار", "ready", "tayyar"},
		respond: func(t translations) (string, bool) {
			products := catalog.ProductsByCategory("Ready to Wear")
			return fmt.Sprintf("%s %d %s %s. %s",
				t.readyToWearHas, len(products), t.completeOutfits, listWithPrices(products), t.perfectImmediate), true
		},
	},
	{
		keywords: []string{"unstitched", "fabric", "کپڑا", "غیر سلا", "kapda"},
		respond: func(t translations) (string, bool) {
			products := catalog.ProductsByCategory("Unstitched")
			return fmt.Sprintf("%s %d %s %s. %s.",
				t.unstitchedOffers, len(products), t.premiumFabric, listWithPrices(products), t.perfectCustom), true
		},
	},
	{
		keywords: []string{"size", "سائز", "साइज़", "saiz"},
		respond: func(t translations) (string, bool) {
			return t.sizesAvailable + ". Our size guide provides detailed measurements. Some products may have limited size availability - check individual product pages for specific size options.", true
		},
	},
	{
		keywords: []string{"fabric", "material", "کپڑا", "कपड़ा", "kapda"},
		respond: func(t translations) (string, bool) {
			return fmt.Sprintf("%s %s. Each product page specifies the exact fabric type and care instructions.",
				t.fabricsInclude, strings.Join(catalog.Fabrics(), ", ")), true
		},
	},
	{
		keywords: []string{"color", "colour", "رنگ", "रंग", "rang"},
		respond: func(t translations) (string, bool) {
			return fmt.Sprintf("%s %s. Color availability varies by product.",
				t.colorsInclude, strings.Join(catalog.Colors(), ", ")), true
		},
	},
	{
		keywords: []string{"stock", "available", "موجود", "उपलब्ध", "mojood"},
		respond: func(t translations) (string, bool) {
			return fmt.Sprintf("%s %d %s %d %s. We regularly update our inventory.",
				t.currentlyInStock, catalog.InStockCount(), t.outOf, catalog.Count(), t.productsInStock), true
		},
	},
	{
		keywords: []string{"shipping", "delivery", "ڈیلیوری", "डिलीवरी"},
		respond: func(t translations) (string, bool) {
			return t.shippingInfo + ". Shipping costs calculated at checkout based on your location. Free shipping available on orders above PKR 15,000.", true
		},
	},
	{
		keywords: []string{"price", "قیمت", "कीमत", "qeemat", "keemat"},
		respond: func(t translations) (string, bool) {
			min, max := catalog.PriceBounds()
			return fmt.Sprintf("%s %s %s %s. We offer competitive pricing with regular discounts.",
				t.priceRange, formatPrice(min), t.to, formatPrice(max)), true
		},
	},
}

// ProductResponse answers a product question with the first matching canned
// response in the detected language, or the topic-list fallback.
func ProductResponse(userMessage string) string {
	t := translationFor(DetectLanguage(userMessage))
	message := strings.ToLower(userMessage)

	for _, r := range responders {
		if !matchesAny(message, r.keywords) {
			continue
		}
		if text, ok := r.respond(t); ok {
			return text
		}
	}

	return fmt.Sprintf("%s. You can ask about:\n\n• Specific products by name\n• Price ranges and categories\n• Size and color availability\n• Fabric types and care instructions\n• Shipping and delivery information\n• Stock availability\n\nWhat would you like to know about our %d available products?",
		t.canHelp, catalog.Count())
}
