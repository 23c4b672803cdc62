package catalog

import "github.com/nikolayk812/shoestore/internal/domain"

func usd(amount string) domain.Money {
	return domain.MustMoney(amount, domain.DefaultCurrency)
}

// Default returns the built-in catalog. Each call returns fresh slices.
func Default() []domain.Product {
	return []domain.Product{
		{
			ID:       "p1",
			Name:     "Nike Air Zoom Pegasus 41",
			Brand:    domain.BrandNike,
			Category: domain.CategoryUnisex,
			Price:    usd("469"),
			Colors: []domain.Color{
				{Code: "black", Label: "Black", Hex: "#111827"},
				{Code: "white", Label: "White", Hex: "#f3f4f6"},
			},
			Images: []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?q=80&w=1200&auto=format&fit=crop"},
			Sizes:  []domain.Size{38, 39, 40, 41, 42, 43, 44, 45},
			Rating: 4.7,
			Badge:  "New",
		},
		{
			ID:       "p2",
			Name:     "Adidas Ultraboost Light",
			Brand:    domain.BrandAdidas,
			Category: domain.CategoryMen,
			Price:    usd("529"),
			Colors: []domain.Color{
				{Code: "blue", Label: "Blue", Hex: "#1e3a8a"},
				{Code: "gray", Label: "Gray", Hex: "#6b7280"},
			},
			Images: []string{"https://images.unsplash.com/photo-1528701800489-20be3c2ea33f?q=80&w=1200&auto=format&fit=crop"},
			Sizes:  []domain.Size{40, 41, 42, 43, 44},
			Rating: 4.6,
			Badge:  "Best seller",
		},
		{
			ID:       "p3",
			Name:     "New Balance 9060",
			Brand:    domain.BrandNewBalance,
			Category: domain.CategoryWomen,
			Price:    usd("489"),
			Colors: []domain.Color{
				{Code: "beige", Label: "Beige", Hex: "#d6ccc2"},
				{Code: "olive", Label: "Olive", Hex: "#6b705c"},
			},
			Images: []string{"https://images.unsplash.com/photo-1543508282-6319a3e2621f?q=80&w=1200&auto=format&fit=crop"},
			Sizes:  []domain.Size{36, 37, 38, 39, 40, 41},
			Rating: 4.8,
		},
		{
			ID:       "p4",
			Name:     "Puma RS-X Efekt",
			Brand:    domain.BrandPuma,
			Category: domain.CategoryUnisex,
			Price:    usd("399"),
			Colors: []domain.Color{
				{Code: "mint", Label: "Mint", Hex: "#a7f3d0"},
				{Code: "black", Label: "Black", Hex: "#111827"},
			},
			Images: []string{"https://images.unsplash.com/photo-1542293787938-c9e299b88054?q=80&w=1200&auto=format&fit=crop"},
			Sizes:  []domain.Size{39, 40, 41, 42, 43},
			Rating: 4.4,
		},
		{
			ID:       "p5",
			Name:     "Asics Gel-Kayano 30",
			Brand:    domain.BrandAsics,
			Category: domain.CategoryUnisex,
			Price:    usd("559"),
			Colors: []domain.Color{
				{Code: "navy", Label: "Navy", Hex: "#1f2937"},
				{Code: "orange", Label: "Orange", Hex: "#fb923c"},
			},
			Images: []string{"https://images.unsplash.com/photo-1608231387042-66d1773070a5?q=80&w=1200&auto=format&fit=crop"},
			Sizes:  []domain.Size{40, 41, 42, 43, 44, 45, 46},
			Rating: 4.9,
		},
		{
			ID:       "p6",
			Name:     "Reebok Club C 85",
			Brand:    domain.BrandReebok,
			Category: domain.CategoryUnisex,
			Price:    usd("349"),
			Colors: []domain.Color{
				{Code: "white", Label: "White", Hex: "#ffffff"},
				{Code: "green", Label: "Green", Hex: "#22c55e"},
			},
			Images: []string{"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?q=80&w=1200&auto=format&fit=crop"},
			Sizes:  []domain.Size{36, 37, 38, 39, 40, 41, 42, 43},
			Rating: 4.5,
			Badge:  "Sale",
		},
	}
}
