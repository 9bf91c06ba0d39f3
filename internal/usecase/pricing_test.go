package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cartcraft/backend/internal/domain"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 20.0, LineTotal(10, 2).InexactFloat64())
	assert.Equal(t, 0.3, LineTotal(0.1, 3).InexactFloat64())
	assert.Equal(t, 2099.97, LineTotal(699.99, 3).InexactFloat64())
}

func TestOrderTotal(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: 1, Price: 699.99, Quantity: 2},
		{ProductID: 2, Price: 149.99, Quantity: 1},
		{ProductID: 3, Price: 0.1, Quantity: 3},
	}

	assert.Equal(t, 1550.27, OrderTotal(items))
	assert.Equal(t, 0.0, OrderTotal(nil))
}

func TestDiscountedPrice(t *testing.T) {
	ten := 10.0
	zero := 0.0

	assert.Equal(t, 629.991, DiscountedPrice(699.99, &ten))
	assert.Equal(t, 699.99, DiscountedPrice(699.99, nil))
	assert.Equal(t, 699.99, DiscountedPrice(699.99, &zero))
}
