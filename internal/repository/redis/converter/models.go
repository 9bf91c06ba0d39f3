package converter

import "time"

// ProductCacheModel — JSON-представление продукта в Redis.
type ProductCacheModel struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Price              float64   `json:"price"`
	ImageURL           string    `json:"imageUrl"`
	Category           string    `json:"category"`
	Stock              int64     `json:"stock"`
	Description        string    `json:"description"`
	Brand              string    `json:"brand"`
	Rating             float64   `json:"rating"`
	DiscountPercentage *float64  `json:"discountPercentage,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}
