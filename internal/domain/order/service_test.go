package order

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"github.com/your-org/distribuidora-backend/internal/domain/promotion"
	"github.com/your-org/distribuidora-backend/internal/domain/stock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func comboPromo() *promotion.Promotion {
	return &promotion.Promotion{
		ID:               3,
		Code:             "COMBO-VERANO",
		Name:             "Combo Verano",
		PromotionalPrice: decimal.RequireFromString("99.00"),
		Stock:            10,
		StockControl:     promotion.StockControlStock,
		IsActive:         true,
		Items: []promotion.PromotionItem{
			{
				PromotionID: 3,
				ProductID:   1,
				Quantity:    2,
				Product: product.Product{
					ID: 1, Code: "GAS-001", Name: "Gaseosa Cola 2L",
					Price: decimal.RequireFromString("40.00"), Stock: 100,
				},
			},
			{
				PromotionID: 3,
				ProductID:   2,
				Quantity:    1,
				Product: product.Product{
					ID: 2, Code: "AGU-001", Name: "Agua Mineral 6x1.5L",
					Price: decimal.RequireFromString("50.00"), Stock: 100,
				},
			},
		},
	}
}

func TestExplodePromotionSingleBundle(t *testing.T) {
	s := &Service{}
	items, gross, discount, err := s.explodePromotion(comboPromo(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, gross.Equal(decimal.RequireFromString("130.00")), "gross %s", gross)
	assert.True(t, discount.Equal(decimal.RequireFromString("31.00")), "discount %s", discount)

	// Constituents at base price, quantities multiplied out
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].UnitPrice.Equal(decimal.RequireFromString("40.00")))
	require.NotNil(t, items[0].PromotionID)
	assert.Equal(t, uint(3), *items[0].PromotionID)

	assert.Equal(t, 1, items[1].Quantity)
	assert.True(t, items[1].UnitPrice.Equal(decimal.RequireFromString("50.00")))

	// Proportional shares: 31 * 80/130 = 19.08, remainder 11.92 on the last
	assert.True(t, items[0].Discount.Equal(decimal.RequireFromString("19.08")), "got %s", items[0].Discount)
	assert.True(t, items[1].Discount.Equal(decimal.RequireFromString("11.92")), "got %s", items[1].Discount)

	// Line totals reconcile exactly with the promotional price
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("99.00")), "sum %s", sum)
	assert.True(t, gross.Sub(discount).Equal(sum))
}

func TestExplodePromotionMultipleBundles(t *testing.T) {
	s := &Service{}
	items, gross, discount, err := s.explodePromotion(comboPromo(), 3)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 6, items[0].Quantity)
	assert.Equal(t, 3, items[1].Quantity)
	assert.True(t, gross.Equal(decimal.RequireFromString("390.00")))
	assert.True(t, discount.Equal(decimal.RequireFromString("93.00")))

	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.TotalPrice)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("297.00")), "sum %s", sum)
}

func TestExplodePromotionNeverNegativeDiscount(t *testing.T) {
	promo := comboPromo()
	promo.PromotionalPrice = decimal.RequireFromString("150.00")

	s := &Service{}
	items, gross, discount, err := s.explodePromotion(promo, 1)
	require.NoError(t, err)

	assert.True(t, discount.IsZero())
	assert.True(t, gross.Equal(decimal.RequireFromString("130.00")))
	for _, it := range items {
		assert.True(t, it.Discount.IsZero())
	}
}

func TestExplodePromotionInsufficientConstituentStock(t *testing.T) {
	promo := comboPromo()
	promo.Items[0].Product.Stock = 3 // 2 bundles need 4

	s := &Service{}
	_, _, _, err := s.explodePromotion(promo, 2)
	assert.Error(t, err)
}

func TestExplodePromotionMissingProduct(t *testing.T) {
	promo := comboPromo()
	promo.Items[1].Product = product.Product{}

	s := &Service{}
	_, _, _, err := s.explodePromotion(promo, 1)
	assert.Error(t, err)
}

func TestEqualIDPtr(t *testing.T) {
	a, b := uint(4), uint(4)
	c := uint(5)

	assert.True(t, equalIDPtr(nil, nil))
	assert.True(t, equalIDPtr(&a, &b))
	assert.False(t, equalIDPtr(&a, &c))
	assert.False(t, equalIDPtr(&a, nil))
	assert.False(t, equalIDPtr(nil, &a))
}

func TestOrderHasDeliverer(t *testing.T) {
	o := &Order{}
	assert.False(t, o.HasDeliverer())

	id := uint(9)
	o.DelivererID = &id
	assert.True(t, o.HasDeliverer())
}

// brokenDB opens a connection pool against an address nothing listens on,
// so every statement fails at execution time.
func brokenDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=nobody dbname=nothing sslmode=disable"), &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)
	return db
}

// Stock mutations that cannot be applied must fail the surrounding
// transaction instead of silently drifting the counters.
func TestStockMutationsFailWhenUpdatesCannotBeApplied(t *testing.T) {
	db := brokenDB(t)
	s := &Service{db: db, stock: stock.NewService(db, nil)}

	o := &Order{ID: 1, Items: []OrderItem{
		{ProductID: 1, ProductName: "Gaseosa Cola 2L", Quantity: 2},
	}}

	assert.Error(t, s.reserveStock(db, o, 1))
	assert.Error(t, s.restoreStock(db, o, 1))
}
