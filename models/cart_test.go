package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func chuteira() Product {
	return Product{ID: "p1", Name: "Chuteira X", Price: 9990}
}

func meiao() Product {
	return Product{ID: "p2", Name: "Meião Pro", Price: 2490}
}

func assertDerived(t *testing.T, c Cart) {
	t.Helper()
	var total int64
	count := 0
	for _, item := range c.Items {
		total += item.Product.Price * int64(item.Quantity)
		count += item.Quantity
	}
	assert.Equal(t, total, c.Total)
	assert.Equal(t, count, c.ItemCount)
}

func TestCartAddItemMergesSameIdentity(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 1, "42")
	c.AddItem(chuteira(), 2, "42")

	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, int64(3*9990), c.Total)
	assertDerived(t, c)
}

func TestCartAddItemDistinctSizes(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 1, "42")
	c.AddItem(chuteira(), 1, "43")
	c.AddItem(chuteira(), 1, "")

	assert.Len(t, c.Items, 3, "same product with different sizes (or none) are separate lines")
	assert.Equal(t, 3, c.ItemCount)
	assertDerived(t, c)
}

func TestCartAddItemSnapshotsProduct(t *testing.T) {
	var c Cart
	p := chuteira()
	c.AddItem(p, 1, "")

	p.Price = 1
	p.Name = "renamed"

	assert.Equal(t, int64(9990), c.Items[0].Product.Price)
	assert.Equal(t, "Chuteira X", c.Items[0].Product.Name)
}

func TestCartRemoveItemExactMatch(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 2, "42")
	c.AddItem(chuteira(), 1, "")
	c.AddItem(meiao(), 1, "")

	c.RemoveItem("p1", "42")

	assert.Len(t, c.Items, 2)
	for _, item := range c.Items {
		assert.False(t, item.Product.ID == "p1" && item.Size == "42")
	}
	assertDerived(t, c)
}

func TestCartRemoveItemMissingIsNoop(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 1, "42")

	c.RemoveItem("p1", "43")
	c.RemoveItem("nope", "42")

	assert.Len(t, c.Items, 1)
	assertDerived(t, c)
}

func TestCartUpdateQuantity(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 1, "42")

	c.UpdateQuantity("p1", 5, "42")
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, int64(5*9990), c.Total)
	assertDerived(t, c)

	// quantity for a line that does not exist is a no-op
	c.UpdateQuantity("p1", 9, "43")
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
}

func TestCartUpdateQuantityZeroRemoves(t *testing.T) {
	var viaUpdate, viaRemove Cart
	viaUpdate.AddItem(chuteira(), 3, "42")
	viaRemove.AddItem(chuteira(), 3, "42")

	viaUpdate.UpdateQuantity("p1", 0, "42")
	viaRemove.RemoveItem("p1", "42")

	assert.Equal(t, viaRemove, viaUpdate)
	assert.Empty(t, viaUpdate.Items)
	assert.Zero(t, viaUpdate.Total)
	assert.Zero(t, viaUpdate.ItemCount)
}

func TestCartClear(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 2, "42")
	c.AddItem(meiao(), 4, "")

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.ItemCount)
}

func TestCartDerivedTotalsAcrossMutations(t *testing.T) {
	var c Cart
	c.AddItem(chuteira(), 2, "42")
	assertDerived(t, c)
	c.AddItem(meiao(), 1, "")
	assertDerived(t, c)
	c.UpdateQuantity("p2", 7, "")
	assertDerived(t, c)
	c.RemoveItem("p1", "42")
	assertDerived(t, c)
	c.UpdateQuantity("p2", 0, "")
	assertDerived(t, c)
	assert.Empty(t, c.Items)
}
