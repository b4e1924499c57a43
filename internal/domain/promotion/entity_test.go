package promotion

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
)

func bundle() *Promotion {
	// Two sodas at 40.00 plus one water at 50.00 sell for 99.00
	return &Promotion{
		Code:             "COMBO-VERANO",
		Name:             "Combo Verano",
		PromotionalPrice: decimal.RequireFromString("99.00"),
		Stock:            10,
		StockControl:     StockControlStock,
		IsActive:         true,
		Items: []PromotionItem{
			{
				ProductID: 1,
				Quantity:  2,
				Product:   product.Product{ID: 1, Price: decimal.RequireFromString("40.00"), Stock: 100},
			},
			{
				ProductID: 2,
				Quantity:  1,
				Product:   product.Product{ID: 2, Price: decimal.RequireFromString("50.00"), Stock: 100},
			},
		},
	}
}

func TestOriginalPriceAndSavings(t *testing.T) {
	p := bundle()

	assert.True(t, p.OriginalPrice().Equal(decimal.RequireFromString("130.00")))
	assert.True(t, p.Savings().Equal(decimal.RequireFromString("31.00")))
	assert.True(t, p.DiscountPercent().Equal(decimal.RequireFromString("23.85")),
		"got %s", p.DiscountPercent())
}

func TestSavingsNeverNegative(t *testing.T) {
	p := bundle()
	p.PromotionalPrice = decimal.RequireFromString("150.00")

	assert.True(t, p.Savings().IsZero())
	assert.True(t, p.DiscountPercent().IsZero())
}

func TestDiscountPercentEmptyBundle(t *testing.T) {
	p := &Promotion{PromotionalPrice: decimal.RequireFromString("10.00")}
	assert.True(t, p.DiscountPercent().IsZero())
}

func TestInWindow(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-24 * time.Hour)
	after := now.Add(24 * time.Hour)

	p := bundle()
	assert.True(t, p.InWindow(now), "no window means always in window")

	p.StartsAt = &after
	assert.False(t, p.InWindow(now))

	p.StartsAt = &before
	p.EndsAt = &after
	assert.True(t, p.InWindow(now))

	p.EndsAt = &before
	assert.False(t, p.InWindow(now))
}

func TestTracksStock(t *testing.T) {
	p := bundle()

	p.StockControl = StockControlStock
	assert.True(t, p.TracksStock())
	p.StockControl = StockControlBoth
	assert.True(t, p.TracksStock())
	p.StockControl = StockControlDate
	assert.False(t, p.TracksStock())
}

func TestIsAvailableByStock(t *testing.T) {
	now := time.Now().UTC()
	p := bundle()

	assert.True(t, p.IsAvailable(now))

	p.Stock = 0
	assert.False(t, p.IsAvailable(now))
}

func TestIsAvailableByDate(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	ended := now.Add(-24 * time.Hour)

	p := bundle()
	p.StockControl = StockControlDate
	p.Stock = 0 // stock ignored in date mode
	p.StartsAt = &past
	assert.True(t, p.IsAvailable(now))

	p.EndsAt = &ended
	assert.False(t, p.IsAvailable(now))
}

func TestIsAvailableBothMode(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	p := bundle()
	p.StockControl = StockControlBoth
	p.StartsAt = &past
	p.EndsAt = &future
	assert.True(t, p.IsAvailable(now))

	p.Stock = 0
	assert.False(t, p.IsAvailable(now))

	p.Stock = 10
	p.EndsAt = &past
	assert.False(t, p.IsAvailable(now))
}

func TestIsAvailableRequiresConstituentStock(t *testing.T) {
	now := time.Now().UTC()
	p := bundle()
	p.Items[0].Product.Stock = 1 // needs 2 per bundle

	assert.False(t, p.IsAvailable(now))
}

func TestIsAvailableInactiveOrEmpty(t *testing.T) {
	now := time.Now().UTC()

	p := bundle()
	p.IsActive = false
	assert.False(t, p.IsAvailable(now))

	p = bundle()
	p.Items = nil
	assert.False(t, p.IsAvailable(now))
}
