// Package catalog holds the static product list and the pure lookup functions
// the rest of the storefront queries it with.
package catalog

import (
	"strings"

	"github.com/kk-clothing/storefront-api/models"
)

// AllProducts returns a copy of the full catalog.
func AllProducts() []models.Product {
	out := make([]models.Product, len(allProducts))
	copy(out, allProducts)
	return out
}

// Count returns the catalog size.
func Count() int { return len(allProducts) }

// ProductByID returns the catalog entry with the exact id.
func ProductByID(id string) (models.Product, bool) {
	for _, p := range allProducts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductsByCategory filters by category name, case-insensitively.
func ProductsByCategory(category string) []models.Product {
	var out []models.Product
	for _, p := range allProducts {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// SearchProducts returns products whose name, description, category or fabric
// contains the query as a substring, case-insensitively.
func SearchProducts(query string) []models.Product {
	term := strings.ToLower(query)
	var out []models.Product
	for _, p := range allProducts {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Fabric), term) {
			out = append(out, p)
		}
	}
	return out
}

// ProductsByPriceRange returns products whose effective price falls in
// [min, max], inclusive.
func ProductsByPriceRange(min, max float64) []models.Product {
	var out []models.Product
	for _, p := range allProducts {
		price := p.EffectivePrice()
		if price >= min && price <= max {
			out = append(out, p)
		}
	}
	return out
}

// Fabrics returns the distinct fabric names across the catalog, in catalog
// order.
func Fabrics() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range allProducts {
		if p.Fabric == "" || seen[p.Fabric] {
			continue
		}
		seen[p.Fabric] = true
		out = append(out, p.Fabric)
	}
	return out
}

// Colors returns the distinct colors across the catalog, in catalog order.
func Colors() []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range allProducts {
		for _, c := range p.Colors {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}

// InStockCount returns how many catalog entries are currently in stock.
func InStockCount() int {
	n := 0
	for _, p := range allProducts {
		if p.InStock {
			n++
		}
	}
	return n
}

// PriceBounds returns the lowest and highest effective price in the catalog.
func PriceBounds() (min, max float64) {
	for i, p := range allProducts {
		price := p.EffectivePrice()
		if i == 0 || price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

// Categories summarizes the storefront sections. The accessories count is a
// fixed placeholder carried over from the storefront copy.
func Categories() []models.Category {
	return []models.Category{
		{Name: "New Arrivals", Description: "Latest fashion trends and seasonal collections", Products: len(ProductsByCategory("New Arrivals"))},
		{Name: "Ready to Wear", Description: "Complete outfits ready to wear", Products: len(ProductsByCategory("Ready to Wear"))},
		{Name: "Unstitched", Description: "Premium fabrics for custom tailoring", Products: len(ProductsByCategory("Unstitched"))},
		{Name: "Accessories", Description: "Perfect finishing touches", Products: 15},
	}
}
