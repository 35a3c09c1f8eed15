package models

// CartItem is a line item in the session cart. Price is the effective price
// captured when the product was added.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image"`
	Size     string  `json:"size,omitempty"`
}
