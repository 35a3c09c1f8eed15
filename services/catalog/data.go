package catalog

import "github.com/kk-clothing/storefront-api/models"

// allProducts is the storefront catalog. Entries are fixed at build time.
var allProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Embroidered Silk Kurta",
		Price:         8500,
		DiscountPrice: 6500,
		Image:         "/placeholder.svg",
		Description:   "Luxurious silk kurta with intricate embroidery work",
		Category:      "Featured",
		Rating:        4.8,
		Reviews:       124,
		Fabric:        "Pure Silk",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Red", "Gold", "Navy"},
		InStock:       true,
	},
	{
		ID:            "2",
		Name:          "Designer Lawn Collection",
		Price:         5500,
		DiscountPrice: 4200,
		Image:         "/placeholder.svg",
		Description:   "Premium lawn fabric with modern prints",
		Category:      "New Arrivals",
		Rating:        4.6,
		Reviews:       89,
		Fabric:        "Premium Lawn",
		Sizes:         []string{"S", "M", "L", "XL", "XXL"},
		Colors:        []string{"Pink", "Blue", "Green"},
		InStock:       true,
	},
	{
		ID:            "3",
		Name:          "Formal Wear Ensemble",
		Price:         12000,
		DiscountPrice: 9500,
		Image:         "/placeholder.svg",
		Description:   "Complete formal wear set for special occasions",
		Category:      "Ready to Wear",
		Rating:        4.9,
		Reviews:       156,
		Fabric:        "Chiffon & Silk",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"Black", "Maroon", "Royal Blue"},
		InStock:       true,
	},
	{
		ID:            "4",
		Name:          "Casual Chic Outfit",
		Price:         4500,
		DiscountPrice: 3200,
		Image:         "/placeholder.svg",
		Description:   "Comfortable everyday wear with style",
		Category:      "Unstitched",
		Rating:        4.4,
		Reviews:       67,
		Fabric:        "Cotton",
		Sizes:         []string{"S", "M", "L", "XL"},
		Colors:        []string{"White", "Cream", "Light Blue"},
		InStock:       true,
	},
	{
		ID:            "5",
		Name:          "Traditional Shalwar Kameez",
		Price:         7500,
		DiscountPrice: 5800,
		Image:         "/placeholder.svg",
		Description:   "Classic Pakistani traditional wear",
		Category:      "Ready to Wear",
		Rating:        4.7,
		Reviews:       203,
		Fabric:        "Cotton Blend",
		Sizes:         []string{"S", "M", "L", "XL", "XXL"},
		Colors:        []string{"White", "Off-White", "Beige"},
		InStock:       true,
	},
}
