//go:generate goverter gen github.com/cartcraft/backend/internal/repository/redis/converter
package converter

import (
	"time"

	"github.com/cartcraft/backend/internal/domain"
)

// ProductConverter преобразует Product между domain и кэш-моделью Redis.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerFloat
type ProductConverter interface {
	ToCacheModel(entity *domain.Product) *ProductCacheModel
	ToEntity(model *ProductCacheModel) *domain.Product
	ToArrCacheModel(entities []domain.Product) []ProductCacheModel
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerFloat(f *float64) *float64 {
	return f
}
