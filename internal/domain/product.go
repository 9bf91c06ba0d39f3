package domain

import "time"

// Product описывает товар каталога. Каталог неизменяемый:
// записи не редактируются и не удаляются после загрузки.
type Product struct {
	ID                 int64
	Name               string
	Price              float64
	ImageURL           string
	Category           string
	Stock              int64
	Description        string
	Brand              string
	Rating             float64 // от 0 до 5
	DiscountPercentage *float64
	CreatedAt          time.Time
}

func NewProduct(id int64, name string, price float64, category string) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
	}
}
