package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func list(pct string, active bool) *PriceList {
	return &PriceList{
		Code:            "MAYORISTA",
		Name:            "Mayorista",
		DiscountPercent: decimal.RequireFromString(pct),
		IsActive:        active,
	}
}

func TestResolveUnitPrice(t *testing.T) {
	tests := []struct {
		name  string
		base  string
		list  *PriceList
		want  string
	}{
		{"fifteen percent off", "100.00", list("15", true), "85.00"},
		{"no list uses base price", "100.00", nil, "100.00"},
		{"inactive list uses base price", "100.00", list("15", false), "100.00"},
		{"zero discount", "49.90", list("0", true), "49.90"},
		{"full discount", "100.00", list("100", true), "0.00"},
		{"negative discount clamps to base", "100.00", list("-5", true), "100.00"},
		{"discount above hundred clamps to base", "100.00", list("120", true), "100.00"},
		{"negative base resolves to zero", "-10.00", list("15", true), "0"},
		{"rounds half up to cents", "33.33", list("10", true), "30.00"},
		{"odd cents", "19.99", list("12.5", true), "17.49"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveUnitPrice(decimal.RequireFromString(tt.base), tt.list)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestResolveUnitPriceScalesWithQuantity(t *testing.T) {
	unit := ResolveUnitPrice(decimal.RequireFromString("100.00"), list("15", true))
	total := unit.Mul(decimal.NewFromInt(2))
	assert.True(t, total.Equal(decimal.RequireFromString("170.00")), "got %s", total)
}

func TestApplicable(t *testing.T) {
	var nilList *PriceList
	assert.False(t, nilList.Applicable())
	assert.False(t, list("10", false).Applicable())
	assert.True(t, list("10", true).Applicable())
}

func TestIsBase(t *testing.T) {
	base := &PriceList{Code: BaseListCode}
	assert.True(t, base.IsBase())
	assert.False(t, list("10", true).IsBase())
}
