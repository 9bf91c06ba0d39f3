package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartcraft/backend/internal/domain"
)

var (
	phone   = domain.Product{ID: 1, Name: "Smartphone X1", Price: 699.99}
	earbuds = domain.Product{ID: 2, Name: "Wireless Earbuds Pro", Price: 149.99}
)

func TestAdd(t *testing.T) {
	items := Add(nil, phone)
	require.Len(t, items, 1)
	assert.Equal(t, int64(1), items[0].Quantity)

	items = Add(items, phone)
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Quantity)

	items = Add(items, earbuds)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[1].Quantity)
}

func TestAdd_DoesNotMutateInput(t *testing.T) {
	original := []Item{{Product: phone, Quantity: 1}}

	_ = Add(original, phone)

	assert.Equal(t, int64(1), original[0].Quantity)
}

func TestSetQuantity(t *testing.T) {
	items := []Item{
		{Product: phone, Quantity: 1},
		{Product: earbuds, Quantity: 3},
	}

	updated := SetQuantity(items, 2, 5)
	assert.Equal(t, int64(5), updated[1].Quantity)
	assert.Equal(t, int64(3), items[1].Quantity)
}

func TestSetQuantity_ZeroRemoves(t *testing.T) {
	items := []Item{
		{Product: phone, Quantity: 1},
		{Product: earbuds, Quantity: 3},
	}

	updated := SetQuantity(items, 1, 0)
	require.Len(t, updated, 1)
	assert.Equal(t, int64(2), updated[0].Product.ID)

	updated = SetQuantity(items, 2, -4)
	require.Len(t, updated, 1)
	assert.Equal(t, int64(1), updated[0].Product.ID)
}

func TestSetQuantity_AbsentProductNoOp(t *testing.T) {
	items := []Item{{Product: phone, Quantity: 1}}

	updated := SetQuantity(items, 999, 5)
	assert.Equal(t, items, updated)
}

func TestRemove(t *testing.T) {
	items := []Item{
		{Product: phone, Quantity: 2},
		{Product: earbuds, Quantity: 1},
	}

	updated := Remove(items, 1)
	require.Len(t, updated, 1)
	assert.Equal(t, int64(2), updated[0].Product.ID)
}

func TestRemove_AbsentProductIdentity(t *testing.T) {
	items := []Item{{Product: phone, Quantity: 2}}

	updated := Remove(items, 999)
	assert.Equal(t, items, updated)
}

func TestExpandToUnitList(t *testing.T) {
	items := []Item{
		{Product: phone, Quantity: 2},
		{Product: earbuds, Quantity: 3},
	}

	ids := ExpandToUnitList(items)
	assert.Equal(t, []int64{1, 1, 2, 2, 2}, ids)
	assert.Equal(t, TotalUnits(items), int64(len(ids)))
}

func TestExpandToUnitList_Empty(t *testing.T) {
	assert.Empty(t, ExpandToUnitList(nil))
	assert.Equal(t, int64(0), TotalUnits(nil))
}
