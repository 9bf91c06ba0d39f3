package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                 int64     `db:"id"`
	Name               string    `db:"name"`
	Price              float64   `db:"price"`
	ImageURL           string    `db:"image_url"`
	Category           string    `db:"category"`
	Stock              int64     `db:"stock"`
	Description        string    `db:"description"`
	Brand              string    `db:"brand"`
	Rating             float64   `db:"rating"`
	DiscountPercentage *float64  `db:"discount_percentage"`
	CreatedAt          time.Time `db:"created_at"`
}
