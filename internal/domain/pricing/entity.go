// internal/domain/pricing/entity.go
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BaseListCode is the protected code of the zero-discount base list. Every
// client without an assigned price list buys at base prices, and the list
// carrying this code can never be deleted.
const BaseListCode = "BASE"

// PriceList represents a named discount tier assignable to clients
type PriceList struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Code            string          `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Name            string          `gorm:"not null;size:100" json:"name"`
	Description     string          `gorm:"size:500" json:"description"`
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"discount_percent"`
	IsActive        bool            `gorm:"default:true" json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (PriceList) TableName() string {
	return "price_lists"
}

// IsBase reports whether this is the protected base list
func (l *PriceList) IsBase() bool {
	return l.Code == BaseListCode
}

// Applicable reports whether the list may be used for pricing
func (l *PriceList) Applicable() bool {
	return l != nil && l.IsActive
}
