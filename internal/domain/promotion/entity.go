// internal/domain/promotion/entity.go
package promotion

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"gorm.io/gorm"
)

// StockControl determines how a promotion's availability is checked
type StockControl string

const (
	StockControlStock StockControl = "stock" // by remaining promotion stock
	StockControlDate  StockControl = "date"  // by activity window
	StockControlBoth  StockControl = "both"  // both checks must pass
)

// Promotion represents a fixed-price bundle of products sold together below
// their combined standalone price. The promotional price is absolute: client
// price lists never discount it further.
type Promotion struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Code             string          `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Name             string          `gorm:"not null;size:200" json:"name"`
	Description      string          `gorm:"type:text" json:"description"`
	PromotionalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"promotional_price"`
	Stock            int             `gorm:"default:0" json:"stock"`
	MinStock         int             `gorm:"default:0" json:"min_stock"`
	StockControl     StockControl    `gorm:"not null;default:'stock';size:10" json:"stock_control"`
	StartsAt         *time.Time      `json:"starts_at"`
	EndsAt           *time.Time      `json:"ends_at"`
	ImageURL         string          `gorm:"size:500" json:"image_url"`
	IsActive         bool            `gorm:"default:true" json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Items []PromotionItem `gorm:"foreignKey:PromotionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// PromotionItem represents one constituent product of a promotion
type PromotionItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PromotionID uint      `gorm:"not null;index;uniqueIndex:idx_promotion_product" json:"promotion_id"`
	ProductID   uint      `gorm:"not null;index;uniqueIndex:idx_promotion_product" json:"product_id"`
	Quantity    int       `gorm:"not null;default:1" json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Product product.Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"product"`
}

// TableName overrides
func (Promotion) TableName() string     { return "promotions" }
func (PromotionItem) TableName() string { return "promotion_items" }

// Business methods for Promotion

// OriginalPrice sums the constituent products at their standalone base
// prices. Items must be loaded with their products.
func (p *Promotion) OriginalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.Items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total.Round(2)
}

// Savings is the difference between buying the products standalone and
// buying the bundle
func (p *Promotion) Savings() decimal.Decimal {
	savings := p.OriginalPrice().Sub(p.PromotionalPrice)
	if savings.Sign() < 0 {
		return decimal.Zero
	}
	return savings
}

// DiscountPercent is the savings expressed as a percentage of the original
// price, rounded to 2 decimal places. Zero when the original price is zero.
func (p *Promotion) DiscountPercent() decimal.Decimal {
	original := p.OriginalPrice()
	if original.Sign() <= 0 {
		return decimal.Zero
	}
	return p.Savings().Div(original).Mul(decimal.NewFromInt(100)).Round(2)
}

// InWindow reports whether the promotion's activity window covers the given
// time. Promotions without a window are always in window.
func (p *Promotion) InWindow(now time.Time) bool {
	if p.StartsAt != nil && now.Before(*p.StartsAt) {
		return false
	}
	if p.EndsAt != nil && now.After(*p.EndsAt) {
		return false
	}
	return true
}

// TracksStock reports whether the promotion's own stock counter applies
func (p *Promotion) TracksStock() bool {
	return p.StockControl == StockControlStock || p.StockControl == StockControlBoth
}

// IsAvailable reports whether the promotion can currently be sold,
// respecting its stock control mode and the stock of every constituent
// product
func (p *Promotion) IsAvailable(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if len(p.Items) == 0 {
		return false
	}

	if p.StockControl == StockControlDate || p.StockControl == StockControlBoth {
		if !p.InWindow(now) {
			return false
		}
	}
	if p.StockControl == StockControlStock || p.StockControl == StockControlBoth {
		if p.Stock <= 0 {
			return false
		}
	}

	for _, item := range p.Items {
		if item.Product.Stock < item.Quantity {
			return false
		}
	}
	return true
}
