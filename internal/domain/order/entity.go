// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Status represents the order lifecycle state. Wire values match the
// values persisted by the original distribution system.
type Status string

const (
	StatusPending   Status = "PENDIENTE"
	StatusPreparing Status = "EN_PREPARACION"
	StatusInvoiced  Status = "FACTURADO"
	StatusDelivered Status = "ENTREGADO"
	StatusRejected  Status = "RECHAZADO"
)

// Valid reports whether the status is a known state
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusInvoiced, StatusDelivered, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are possible
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusRejected
}

// Order represents a client order. Price list name and discount are
// snapshotted at creation so later list edits never change past orders.
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	ClientID    uint   `gorm:"not null;index" json:"client_id"`
	Status      Status `gorm:"not null;default:'PENDIENTE';index" json:"estado"`

	// Price list reference plus a snapshot of its name and discount, so
	// later list edits never change past orders
	PriceListID       *uint           `gorm:"index" json:"price_list_id"`
	PriceListName     string          `gorm:"size:100" json:"price_list_name"`
	PriceListDiscount decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"price_list_discount"`

	// Money
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	DiscountTotal decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"descuento_total"`
	Total         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`

	Notes string `gorm:"type:text" json:"notas"`

	// Delivery assignment, only meaningful once the order is invoiced
	DelivererID *uint `gorm:"index" json:"transportador_id"`

	// Lifecycle timestamps
	ConfirmedAt *time.Time     `json:"fecha_confirmacion"`
	InvoicedAt  *time.Time     `json:"fecha_facturacion"`
	DeliveredAt *time.Time     `json:"fecha_entrega"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Client        *user.User           `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Deliverer     *user.User           `gorm:"foreignKey:DelivererID" json:"deliverer,omitempty"`
	Items         []OrderItem          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	StatusHistory []OrderStatusHistory `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"status_history,omitempty"`
}

// OrderItem represents one product line of an order. Promotion bundles are
// exploded into their constituent products at creation; items that came
// from a bundle keep the promotion reference and carry their share of the
// bundle discount.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderID     uint   `gorm:"not null;index" json:"order_id"`
	ProductID   uint   `gorm:"not null;index" json:"product_id"`
	PromotionID *uint  `gorm:"index" json:"promotion_id"`
	ProductName string `gorm:"not null;size:255" json:"product_name"`
	ProductCode string `gorm:"not null;size:50" json:"product_code"`
	Quantity    int    `gorm:"not null" json:"quantity"`

	// UnitPrice is the resolved per-unit price at creation time
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Discount   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"descuento"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrderStatusHistory tracks order status changes
type OrderStatusHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	FromStatus Status    `gorm:"size:20" json:"from_status"`
	ToStatus   Status    `gorm:"not null;size:20" json:"to_status"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedBy  uint      `gorm:"index" json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string              { return "orders" }
func (OrderItem) TableName() string          { return "order_items" }
func (OrderStatusHistory) TableName() string { return "order_status_history" }

// GenerateOrderNumber generates a unique order number
func (o *Order) GenerateOrderNumber() string {
	// Format: PED-YYYYMMDD-XXXXX
	return fmt.Sprintf("PED-%s-%05d", time.Now().Format("20060102"), o.ID)
}

// HasDeliverer reports whether a deliverer is assigned
func (o *Order) HasDeliverer() bool {
	return o.DelivererID != nil
}

// AddStatusHistory appends a status change to the order's history
func (o *Order) AddStatusHistory(from, to Status, comment string, createdBy uint) {
	o.StatusHistory = append(o.StatusHistory, OrderStatusHistory{
		OrderID:    o.ID,
		FromStatus: from,
		ToStatus:   to,
		Comment:    comment,
		CreatedBy:  createdBy,
		CreatedAt:  time.Now().UTC(),
	})
}
