package store

import (
	"time"

	"github.com/pankajarora1984/chandan-sarees-api/models"
)

func seedTime(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedProducts is the sample catalog loaded on every start. State is
// volatile; a restart always returns to exactly this data.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:            "1",
			Name:          "Banarasi Silk Saree",
			Description:   "Traditional Banarasi silk saree with intricate gold work and zari embroidery. Perfect for weddings and special occasions.",
			Price:         15999,
			OriginalPrice: 19999,
			Category:      "silk-sarees",
			CategoryName:  "Silk Sarees",
			Images: []string{
				"https://images.unsplash.com/photo-1583391733956-6c78276477e1?w=400",
				"https://images.unsplash.com/photo-1583391733956-6c78276477e1?w=800",
			},
			Colors:    []string{"Red", "Gold", "Maroon"},
			Sizes:     []string{"Free Size"},
			Material:  "Pure Silk",
			Occasion:  []string{"Wedding", "Festival", "Party"},
			InStock:   true,
			Featured:  true,
			Rating:    4.8,
			Reviews:   156,
			Tags:      []string{"banarasi", "silk", "traditional", "zari"},
			CreatedAt: seedTime("2024-01-15T10:00:00Z"),
			UpdatedAt: seedTime("2024-01-15T10:00:00Z"),
		},
		{
			ID:            "2",
			Name:          "Designer Lehenga",
			Description:   "Embroidered bridal lehenga with heavy dupatta and intricate stone work. Comes with matching choli and dupatta.",
			Price:         25999,
			OriginalPrice: 32999,
			Category:      "lehengas",
			CategoryName:  "Lehengas",
			Images: []string{
				"https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400",
				"https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=800",
			},
			Colors:    []string{"Pink", "Red", "Blue", "Green"},
			Sizes:     []string{"S", "M", "L", "XL"},
			Material:  "Net with Silk Lining",
			Occasion:  []string{"Wedding", "Reception", "Engagement"},
			InStock:   true,
			Featured:  true,
			Rating:    4.9,
			Reviews:   89,
			Tags:      []string{"lehenga", "bridal", "designer", "embroidered"},
			CreatedAt: seedTime("2024-01-16T11:00:00Z"),
			UpdatedAt: seedTime("2024-01-16T11:00:00Z"),
		},
		{
			ID:            "3",
			Name:          "Cotton Chanderi Saree",
			Description:   "Lightweight chanderi saree perfect for daily wear and office. Comfortable and elegant with subtle border design.",
			Price:         3999,
			OriginalPrice: 4999,
			Category:      "cotton-sarees",
			CategoryName:  "Cotton Sarees",
			Images: []string{
				"https://images.unsplash.com/photo-1594736797933-d0f59aec2070?w=400",
				"https://images.unsplash.com/photo-1594736797933-d0f59aec2070?w=800",
			},
			Colors:    []string{"White", "Cream", "Light Blue", "Mint Green"},
			Sizes:     []string{"Free Size"},
			Material:  "Cotton Chanderi",
			Occasion:  []string{"Daily Wear", "Office", "Casual"},
			InStock:   true,
			Featured:  true,
			Rating:    4.6,
			Reviews:   203,
			Tags:      []string{"cotton", "chanderi", "daily-wear", "comfortable"},
			CreatedAt: seedTime("2024-01-17T09:00:00Z"),
			UpdatedAt: seedTime("2024-01-17T09:00:00Z"),
		},
		{
			ID:            "4",
			Name:          "Anarkali Suit",
			Description:   "Flowing anarkali suit with embroidered details and matching dupatta. Perfect for festivals and parties.",
			Price:         8999,
			OriginalPrice: 11999,
			Category:      "salwar-suits",
			CategoryName:  "Salwar Suits",
			Images: []string{
				"https://images.unsplash.com/photo-1583391733956-6c78276477e1?w=400",
				"https://images.unsplash.com/photo-1583391733956-6c78276477e1?w=800",
			},
			Colors:    []string{"Purple", "Navy Blue", "Emerald Green", "Wine"},
			Sizes:     []string{"S", "M", "L", "XL", "XXL"},
			Material:  "Georgette",
			Occasion:  []string{"Festival", "Party", "Function"},
			InStock:   true,
			Featured:  true,
			Rating:    4.7,
			Reviews:   134,
			Tags:      []string{"anarkali", "suit", "embroidered", "georgette"},
			CreatedAt: seedTime("2024-01-18T14:00:00Z"),
			UpdatedAt: seedTime("2024-01-18T14:00:00Z"),
		},
		{
			ID:            "5",
			Name:          "Georgette Saree",
			Description:   "Elegant georgette saree with sequin work and beautiful drape. Perfect for evening parties and functions.",
			Price:         7999,
			OriginalPrice: 9999,
			Category:      "georgette-sarees",
			CategoryName:  "Georgette Sarees",
			Images: []string{
				"https://images.unsplash.com/photo-1594736797933-d0f59aec2070?w=400",
				"https://images.unsplash.com/photo-1594736797933-d0f59aec2070?w=800",
			},
			Colors:    []string{"Black", "Navy Blue", "Burgundy", "Teal"},
			Sizes:     []string{"Free Size"},
			Material:  "Pure Georgette",
			Occasion:  []string{"Party", "Evening", "Function"},
			InStock:   true,
			Featured:  false,
			Rating:    4.5,
			Reviews:   98,
			Tags:      []string{"georgette", "sequin", "party-wear", "elegant"},
			CreatedAt: seedTime("2024-01-19T16:00:00Z"),
			UpdatedAt: seedTime("2024-01-19T16:00:00Z"),
		},
		{
			ID:            "6",
			Name:          "Sharara Set",
			Description:   "Traditional sharara set with heavy dupatta and intricate embroidery. Perfect for weddings and special occasions.",
			Price:         12999,
			OriginalPrice: 15999,
			Category:      "sharara-sets",
			CategoryName:  "Sharara Sets",
			Images: []string{
				"https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400",
				"https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=800",
			},
			Colors:    []string{"Peach", "Mint Green", "Lavender", "Coral"},
			Sizes:     []string{"S", "M", "L", "XL"},
			Material:  "Silk with Net Dupatta",
			Occasion:  []string{"Wedding", "Mehndi", "Sangeet"},
			InStock:   true,
			Featured:  false,
			Rating:    4.8,
			Reviews:   67,
			Tags:      []string{"sharara", "traditional", "wedding", "embroidered"},
			CreatedAt: seedTime("2024-01-20T12:00:00Z"),
			UpdatedAt: seedTime("2024-01-20T12:00:00Z"),
		},
	}
}

// SeedCategories is the sample category list loaded on every start.
func SeedCategories() []models.Category {
	created := seedTime("2024-01-15T10:00:00Z")
	return []models.Category{
		{
			ID:          "1",
			Name:        "Silk Sarees",
			Slug:        "silk-sarees",
			Description: "Luxurious silk sarees for special occasions and festivals",
			Image:       "https://images.unsplash.com/photo-1583391733956-6c78276477e1?w=400",
			Featured:    true,
			Tags:        []string{"silk", "traditional", "wedding", "festival"},
			CreatedAt:   created,
		},
		{
			ID:          "2",
			Name:        "Cotton Sarees",
			Slug:        "cotton-sarees",
			Description: "Comfortable daily wear cotton sarees for everyday elegance",
			Image:       "https://images.unsplash.com/photo-1594736797933-d0f59aec2070?w=400",
			Featured:    true,
			Tags:        []string{"cotton", "daily-wear", "comfortable", "office"},
			CreatedAt:   created,
		},
		{
			ID:          "3",
			Name:        "Lehengas",
			Slug:        "lehengas",
			Description: "Stunning lehengas for weddings, receptions and grand celebrations",
			Image:       "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400",
			Featured:    true,
			Tags:        []string{"lehenga", "bridal", "wedding", "reception"},
			CreatedAt:   created,
		},
		{
			ID:          "4",
			Name:        "Salwar Suits",
			Slug:        "salwar-suits",
			Description: "Elegant salwar suits and anarkali sets for every occasion",
			Image:       "https://images.unsplash.com/photo-1583391733956-6c78276477e1?w=400",
			Featured:    true,
			Tags:        []string{"salwar", "suit", "anarkali", "party"},
			CreatedAt:   created,
		},
		{
			ID:          "5",
			Name:        "Georgette Sarees",
			Slug:        "georgette-sarees",
			Description: "Elegant georgette sarees perfect for parties and evening functions",
			Image:       "https://images.unsplash.com/photo-1594736797933-d0f59aec2070?w=400",
			Featured:    false,
			Tags:        []string{"georgette", "party", "evening", "elegant"},
			CreatedAt:   created,
		},
		{
			ID:          "6",
			Name:        "Sharara Sets",
			Slug:        "sharara-sets",
			Description: "Traditional sharara sets with heavy work for special occasions",
			Image:       "https://images.unsplash.com/photo-1610030469983-98e550d6193c?w=400",
			Featured:    false,
			Tags:        []string{"sharara", "traditional", "heavy-work", "special"},
			CreatedAt:   created,
		},
	}
}
