package models

// Product is an immutable catalog entry, created at build time and never
// mutated at runtime. DiscountPrice of 0 means no discount is active.
type Product struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         float64  `json:"price"`
	DiscountPrice float64  `json:"discount_price,omitempty"`
	Image         string   `json:"image"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	Fabric        string   `json:"fabric,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	InStock       bool     `json:"in_stock"`
}

// EffectivePrice is the price a buyer actually pays: the discount price when
// one is set, otherwise the regular price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountPrice > 0 {
		return p.DiscountPrice
	}
	return p.Price
}

// Category summarizes one storefront section.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Products    int    `json:"products"`
}
