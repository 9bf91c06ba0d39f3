package memory

import (
	"time"

	"github.com/cartcraft/backend/internal/domain"
)

func discount(v float64) *float64 { return &v }

func created(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

// SeedProducts возвращает демо-каталог из 12 товаров.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:                 1,
			Name:               "Smartphone X1",
			Price:              699.99,
			ImageURL:           "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=200&h=200&fit=crop",
			Category:           "Electronics",
			Stock:              25,
			Description:        "Latest smartphone with advanced features",
			Brand:              "TechPro",
			Rating:             4.5,
			DiscountPercentage: discount(10),
			CreatedAt:          created("2025-01-01T10:00:00Z"),
		},
		{
			ID:                 2,
			Name:               "Wireless Earbuds Pro",
			Price:              149.99,
			ImageURL:           "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=200&h=200&fit=crop",
			Category:           "Electronics",
			Stock:              50,
			Description:        "Premium wireless earbuds with noise cancellation",
			Brand:              "AudioMax",
			Rating:             4.7,
			DiscountPercentage: discount(15),
			CreatedAt:          created("2025-02-01T10:00:00Z"),
		},
		{
			ID:          3,
			Name:        "Leather Laptop Bag",
			Price:       89.99,
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=200&h=200&fit=crop",
			Category:    "Accessories",
			Stock:       30,
			Description: "Premium leather laptop bag for professionals",
			Brand:       "LeatherCraft",
			Rating:      4.6,
			CreatedAt:   created("2025-03-01T10:00:00Z"),
		},
		{
			ID:                 4,
			Name:               "Smartwatch Series 5",
			Price:              299.99,
			ImageURL:           "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=200&h=200&fit=crop",
			Category:           "Electronics",
			Stock:              20,
			Description:        "Advanced smartwatch with health monitoring",
			Brand:              "WatchTech",
			Rating:             4.8,
			DiscountPercentage: discount(5),
			CreatedAt:          created("2025-04-01T10:00:00Z"),
		},
		{
			ID:                 5,
			Name:               "Bluetooth Speaker",
			Price:              89.99,
			ImageURL:           "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=200&h=200&fit=crop",
			Category:           "Electronics",
			Stock:              40,
			Description:        "Portable Bluetooth speaker with rich sound",
			Brand:              "SoundWave",
			Rating:             4.4,
			DiscountPercentage: discount(20),
			CreatedAt:          created("2025-05-01T10:00:00Z"),
		},
		{
			ID:                 6,
			Name:               "Gaming Console Z",
			Price:              499.99,
			ImageURL:           "https://images.unsplash.com/photo-1606144042614-7d8f8e9e6a2f?w=200&h=200&fit=crop",
			Category:           "Electronics",
			Stock:              10,
			Description:        "Next-gen gaming console with 4K graphics",
			Brand:              "GameMaster",
			Rating:             4.8,
			DiscountPercentage: discount(5),
			CreatedAt:          created("2025-06-15T15:00:00Z"),
		},
		{
			ID:          7,
			Name:        "DSLR Camera 3000D",
			Price:       799.99,
			ImageURL:    "https://images.unsplash.com/photo-1505739998589-00fc191ce01d?w=200&h=200&fit=crop",
			Category:    "Electronics",
			Stock:       8,
			Description: "Professional DSLR camera with 24MP sensor",
			Brand:       "PhotoPro",
			Rating:      4.6,
			CreatedAt:   created("2025-07-01T10:00:00Z"),
		},
		{
			ID:          8,
			Name:        "4K LED TV 55\"",
			Price:       999.99,
			ImageURL:    "https://images.unsplash.com/photo-1593753936307-90c6f6e4a5f5?w=200&h=200&fit=crop",
			Category:    "Electronics",
			Stock:       14,
			Description: "55-inch 4K LED TV with smart streaming capabilities",
			Brand:       "VisionTech",
			Rating:      4.5,
			CreatedAt:   created("2025-08-10T12:00:00Z"),
		},
		{
			ID:                 9,
			Name:               "Portable Charger 20,000mAh",
			Price:              59.99,
			ImageURL:           "https://images.unsplash.com/photo-1593399483886-6e2627c25d77?w=200&h=200&fit=crop",
			Category:           "Electronics",
			Stock:              50,
			Description:        "High-capacity portable charger with fast charging",
			Brand:              "PowerUp",
			Rating:             4.3,
			DiscountPercentage: discount(20),
			CreatedAt:          created("2025-09-01T09:00:00Z"),
		},
		{
			ID:          10,
			Name:        "VR Headset Pro",
			Price:       399.99,
			ImageURL:    "https://images.unsplash.com/photo-1611403894987-35c4f91f4a5f?w=200&h=200&fit=crop",
			Category:    "Electronics",
			Stock:       6,
			Description: "Immersive VR headset with high-resolution display",
			Brand:       "VirtualVibe",
			Rating:      4.7,
			CreatedAt:   created("2025-09-15T14:00:00Z"),
		},
		{
			ID:          11,
			Name:        "Wireless Mouse Pro",
			Price:       49.99,
			ImageURL:    "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=200&h=200&fit=crop",
			Category:    "Electronics",
			Stock:       35,
			Description: "Ergonomic wireless mouse for productivity",
			Brand:       "TechGear",
			Rating:      4.2,
			CreatedAt:   created("2025-10-01T10:00:00Z"),
		},
		{
			ID:                 12,
			Name:               "Coffee Maker Deluxe",
			Price:              129.99,
			ImageURL:           "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=200&h=200&fit=crop",
			Category:           "Appliances",
			Stock:              18,
			Description:        "Premium coffee maker with programmable features",
			Brand:              "BrewMaster",
			Rating:             4.5,
			DiscountPercentage: discount(10),
			CreatedAt:          created("2025-11-01T10:00:00Z"),
		},
	}
}
