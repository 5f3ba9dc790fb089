package catalog

// Demo catalog. IDs are stable; cart lines and wishlist entries persist
// snapshots of these records.

var seedCategories = []Category{
	{ID: "electronics", Name: "Electronics", SubCategories: []string{"Phones", "Laptops", "Audio", "Cameras"}, ProductCount: 245},
	{ID: "fashion", Name: "Fashion", SubCategories: []string{"Men", "Women", "Kids", "Accessories"}, ProductCount: 892},
	{ID: "home", Name: "Home & Living", SubCategories: []string{"Furniture", "Decor", "Kitchen", "Bedding"}, ProductCount: 534},
	{ID: "beauty", Name: "Beauty", SubCategories: []string{"Skincare", "Makeup", "Haircare", "Fragrance"}, ProductCount: 321},
	{ID: "sports", Name: "Sports", SubCategories: []string{"Sportswear", "Fitness", "Outdoor", "Equipment"}, ProductCount: 178},
	{ID: "books", Name: "Books", SubCategories: []string{"Fiction", "Non-fiction", "Academic", "Comics"}, ProductCount: 412},
}

var seedItems = []Item{
	{
		ID: "1", Name: "Premium Wireless Headphones",
		Description: "Experience crystal-clear audio with active noise cancellation. Premium build with 30hr battery life.",
		Price:       4999, OriginalPrice: 7999, Discount: 38,
		Category: "electronics", SubCategory: "Audio",
		Images: []string{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
		},
		Rating: 4.5, ReviewCount: 2341, InStock: true, StockCount: 45,
		Variants:   []Variant{{Type: "Color", Options: []string{"Midnight Black", "Pearl White", "Navy Blue"}}},
		Tags:       []string{"bestseller", "trending"},
		IsFeatured: true, IsTrending: true,
	},
	{
		ID: "2", Name: "Slim Fit Cotton Shirt",
		Description: "Premium cotton slim fit shirt perfect for any occasion. Breathable and comfortable.",
		Price:       1299, OriginalPrice: 2499, Discount: 48,
		Category: "fashion", SubCategory: "Men",
		Images: []string{
			"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800&q=80",
			"https://images.unsplash.com/photo-1602810318383-e386cc2a3ccf?w=800&q=80",
		},
		Rating: 4.3, ReviewCount: 876, InStock: true, StockCount: 120,
		Variants: []Variant{
			{Type: "Size", Options: []string{"S", "M", "L", "XL"}},
			{Type: "Color", Options: []string{"White", "Sky Blue", "Navy"}},
		},
		Tags:       []string{"trending"},
		IsFeatured: true, IsTrending: true,
	},
	{
		ID: "3", Name: "Smart Fitness Watch",
		Description: "Track your health with precision. Heart rate, SpO2, sleep tracking and 14-day battery.",
		Price:       3499, OriginalPrice: 5999, Discount: 42,
		Category: "electronics", SubCategory: "Phones",
		Images: []string{
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
			"https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800&q=80",
		},
		Rating: 4.6, ReviewCount: 3210, InStock: true, StockCount: 78,
		Variants:   []Variant{{Type: "Color", Options: []string{"Black", "Green", "Rose Gold"}}},
		Tags:       []string{"bestseller"},
		IsFeatured: true, IsTrending: true,
	},
	{
		ID: "4", Name: "Ergonomic Office Chair",
		Description: "Designed for all-day comfort with lumbar support and adjustable armrests.",
		Price:       12999, OriginalPrice: 18999, Discount: 32,
		Category: "home", SubCategory: "Furniture",
		Images: []string{
			"https://images.unsplash.com/photo-1580480055273-228ff5388ef8?w=800&q=80",
		},
		Rating: 4.4, ReviewCount: 567, InStock: true, StockCount: 23,
		Variants:   []Variant{{Type: "Color", Options: []string{"Black", "Grey", "Blue"}}},
		Tags:       []string{"featured"},
		IsFeatured: true,
	},
	{
		ID: "5", Name: "Natural Glow Serum",
		Description: "Vitamin C enriched serum for radiant, youthful skin. Dermatologically tested.",
		Price:       899, OriginalPrice: 1599, Discount: 44,
		Category: "beauty", SubCategory: "Skincare",
		Images: []string{
			"https://images.unsplash.com/photo-1620916566398-39f1143ab7be?w=800&q=80",
		},
		Rating: 4.7, ReviewCount: 4521, InStock: true, StockCount: 200,
		Tags:       []string{"bestseller", "trending"},
		IsTrending: true,
	},
	{
		ID: "6", Name: "Running Shoes Pro",
		Description: "Lightweight, responsive cushioning for your daily run. Breathable mesh upper.",
		Price:       2999, OriginalPrice: 4999, Discount: 40,
		Category: "sports", SubCategory: "Sportswear",
		Images: []string{
			"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800&q=80",
		},
		Rating: 4.5, ReviewCount: 1890, InStock: true, StockCount: 65,
		Variants: []Variant{
			{Type: "Size", Options: []string{"7", "8", "9", "10", "11"}},
			{Type: "Color", Options: []string{"Black/Red", "White/Blue", "Grey"}},
		},
		Tags:       []string{"trending"},
		IsTrending: true,
	},
	{
		ID: "7", Name: "Bluetooth Speaker Mini",
		Description: "Compact speaker with powerful bass. IPX7 waterproof, 12hr playtime.",
		Price:       1999, OriginalPrice: 3499, Discount: 43,
		Category: "electronics", SubCategory: "Audio",
		Images: []string{
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800&q=80",
		},
		Rating: 4.2, ReviewCount: 1234, InStock: true, StockCount: 90,
		Variants:   []Variant{{Type: "Color", Options: []string{"Black", "Red", "Teal"}}},
		Tags:       []string{"featured"},
		IsFeatured: true,
	},
	{
		ID: "8", Name: "Designer Handbag",
		Description: "Elegant leather handbag with premium finish. Spacious compartments.",
		Price:       3999, OriginalPrice: 6999, Discount: 43,
		Category: "fashion", SubCategory: "Accessories",
		Images: []string{
			"https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=800&q=80",
		},
		Rating: 4.6, ReviewCount: 432, InStock: true, StockCount: 15,
		Variants:   []Variant{{Type: "Color", Options: []string{"Tan", "Black", "Burgundy"}}},
		Tags:       []string{"premium"},
		IsFeatured: true,
	},
	{
		ID: "9", Name: "Ceramic Dinner Set",
		Description: "12-piece premium ceramic dinner set. Microwave and dishwasher safe.",
		Price:       2499, OriginalPrice: 3999, Discount: 38,
		Category: "home", SubCategory: "Kitchen",
		Images: []string{
			"https://images.unsplash.com/photo-1578500494198-246f612d3b3d?w=800&q=80",
		},
		Rating: 4.3, ReviewCount: 289, InStock: true, StockCount: 34,
		Tags: []string{"featured"},
	},
	{
		ID: "10", Name: "Yoga Mat Premium",
		Description: "Extra thick, non-slip yoga mat. Eco-friendly TPE material.",
		Price:       999, OriginalPrice: 1799, Discount: 44,
		Category: "sports", SubCategory: "Fitness",
		Images: []string{
			"https://images.unsplash.com/photo-1601925260368-ae2f83cf8b7f?w=800&q=80",
		},
		Rating: 4.4, ReviewCount: 876, InStock: false, StockCount: 0,
		Tags: []string{"popular"},
	},
	{
		ID: "11", Name: "Aromatic Candle Set",
		Description: "Set of 3 luxury scented candles. Soy wax, 40hr burn time each.",
		Price:       799, OriginalPrice: 1299, Discount: 38,
		Category: "home", SubCategory: "Decor",
		Images: []string{
			"https://images.unsplash.com/photo-1602874801006-e7d7a9e9a9b0?w=800&q=80",
		},
		Rating: 4.5, ReviewCount: 654, InStock: true, StockCount: 88,
		Tags: []string{"gifting"},
	},
	{
		ID: "12", Name: "Laptop Backpack",
		Description: "Water-resistant laptop backpack with USB charging port. Fits 15.6\" laptops.",
		Price:       1499, OriginalPrice: 2499, Discount: 40,
		Category: "fashion", SubCategory: "Accessories",
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
		},
		Rating: 4.3, ReviewCount: 1567, InStock: true, StockCount: 45,
		Tags: []string{"bestseller"},
	},
}
