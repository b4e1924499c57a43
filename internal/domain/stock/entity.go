// internal/domain/stock/entity.go
package stock

import (
	"time"

	"github.com/your-org/distribuidora-backend/internal/domain/product"
)

// MovementType classifies why product stock changed
type MovementType string

const (
	MovementSale       MovementType = "sale"       // order confirmation
	MovementReturn     MovementType = "return"     // order rejected after confirmation
	MovementAdjustment MovementType = "adjustment" // manual correction by staff
)

// Movement is one entry in the stock ledger. Quantity is the signed
// delta applied to the product's stock.
type Movement struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	ProductID     uint         `gorm:"not null;index" json:"product_id"`
	Type          MovementType `gorm:"column:movement_type;not null;size:20;index" json:"type"`
	Quantity      int          `gorm:"not null" json:"quantity"`
	PreviousStock int          `gorm:"not null" json:"previous_stock"`
	NewStock      int          `gorm:"not null" json:"new_stock"`
	ReferenceType string       `gorm:"size:20" json:"reference_type"` // "order", "manual"
	ReferenceID   uint         `json:"reference_id"`
	Notes         string       `gorm:"type:text" json:"notes"`
	CreatedBy     uint         `gorm:"index" json:"created_by"`
	CreatedAt     time.Time    `json:"created_at"`

	// Relationships
	Product product.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for movements
func (Movement) TableName() string {
	return "stock_movements"
}
