//go:generate goverter gen github.com/cartcraft/backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/cartcraft/backend/internal/domain"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerFloat
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []*domain.Product
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerFloat(f *float64) *float64 {
	return f
}
