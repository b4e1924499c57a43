// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog item
type Product struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Code          string          `gorm:"uniqueIndex;not null;size:50" json:"code"`
	Name          string          `gorm:"not null;size:200" json:"name"`
	Description   string          `gorm:"type:text" json:"description"`
	CategoryID    uint            `gorm:"not null;index" json:"category_id"`
	SubcategoryID *uint           `gorm:"index" json:"subcategory_id"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock         int             `gorm:"default:0" json:"stock"`
	MinStock      int             `gorm:"default:0" json:"min_stock"`
	Barcode       string          `gorm:"size:100;index" json:"barcode"`
	ImageURL      string          `gorm:"size:500" json:"image_url"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category    Category     `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"subcategory,omitempty"`
}

// Category represents a product category
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"subcategories,omitempty"`
}

// Subcategory represents a product subcategory inside a category
type Subcategory struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	CategoryID  uint           `gorm:"not null;index;uniqueIndex:idx_subcategory_name" json:"category_id"`
	Name        string         `gorm:"not null;size:100;uniqueIndex:idx_subcategory_name" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string     { return "products" }
func (Category) TableName() string    { return "categories" }
func (Subcategory) TableName() string { return "subcategories" }

// Business methods for Product

// IsInStock reports whether the product has stock available
func (p *Product) IsInStock() bool {
	return p.Stock > 0
}

// IsLowStock reports whether the stock fell to the configured minimum
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}
