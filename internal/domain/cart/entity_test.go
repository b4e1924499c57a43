package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartIsEmpty(t *testing.T) {
	c := NewCart(7)
	assert.Equal(t, uint(7), c.ClientID)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.TotalQuantity())
}

func TestAddProductMergesQuantities(t *testing.T) {
	c := NewCart(1)
	require.NoError(t, c.AddProduct(10, 2))
	require.NoError(t, c.AddProduct(10, 3))

	require.Len(t, c.Lines, 1)
	assert.Equal(t, 5, c.Lines[0].Quantity)
	assert.Equal(t, uint(10), c.Lines[0].ProductID)
}

func TestAddRejectsNonPositiveQuantity(t *testing.T) {
	c := NewCart(1)
	assert.Error(t, c.AddProduct(10, 0))
	assert.Error(t, c.AddPromotion(20, -1))
	assert.True(t, c.IsEmpty())
}

func TestProductAndPromotionWithSameIDAreSeparateLines(t *testing.T) {
	c := NewCart(1)
	require.NoError(t, c.AddProduct(5, 1))
	require.NoError(t, c.AddPromotion(5, 1))

	require.Len(t, c.Lines, 2)
	assert.Equal(t, LineProduct, c.Lines[0].Kind)
	assert.Equal(t, LinePromotion, c.Lines[1].Kind)
	assert.Equal(t, uint(5), c.Lines[0].RefID())
	assert.Equal(t, uint(5), c.Lines[1].RefID())
}

func TestSetQuantityReplaces(t *testing.T) {
	c := NewCart(1)
	require.NoError(t, c.AddProduct(10, 2))

	require.NoError(t, c.SetQuantity(LineProduct, 10, 7))
	assert.Equal(t, 7, c.Lines[0].Quantity)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	c := NewCart(1)
	require.NoError(t, c.AddProduct(10, 2))
	require.NoError(t, c.AddProduct(11, 1))

	require.NoError(t, c.SetQuantity(LineProduct, 10, 0))
	require.Len(t, c.Lines, 1)
	assert.Equal(t, uint(11), c.Lines[0].ProductID)
}

func TestSetQuantityMissingLine(t *testing.T) {
	c := NewCart(1)
	assert.Error(t, c.SetQuantity(LineProduct, 99, 3))
	assert.Error(t, c.SetQuantity(LineProduct, 99, 0))
}

func TestRemovePreservesOrder(t *testing.T) {
	c := NewCart(1)
	require.NoError(t, c.AddProduct(10, 1))
	require.NoError(t, c.AddPromotion(20, 1))
	require.NoError(t, c.AddProduct(30, 1))

	assert.True(t, c.Remove(LinePromotion, 20))
	require.Len(t, c.Lines, 2)
	assert.Equal(t, uint(10), c.Lines[0].RefID())
	assert.Equal(t, uint(30), c.Lines[1].RefID())

	assert.False(t, c.Remove(LinePromotion, 20))
}

func TestClear(t *testing.T) {
	c := NewCart(1)
	require.NoError(t, c.AddProduct(10, 4))
	require.NoError(t, c.AddPromotion(20, 1))
	assert.Equal(t, 5, c.TotalQuantity())

	c.Clear()
	assert.True(t, c.IsEmpty())
}
