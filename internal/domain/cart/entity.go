// internal/domain/cart/entity.go
package cart

import (
	"fmt"
	"time"
)

// LineKind discriminates cart line types
type LineKind string

const (
	LineProduct   LineKind = "product"
	LinePromotion LineKind = "promotion"
)

// Line represents a single cart line. Exactly one of ProductID or
// PromotionID is set, according to Kind.
type Line struct {
	Kind        LineKind  `json:"kind"`
	ProductID   uint      `json:"product_id,omitempty"`
	PromotionID uint      `json:"promotion_id,omitempty"`
	Quantity    int       `json:"quantity"`
	AddedAt     time.Time `json:"added_at"`
}

// RefID returns the identifier of whatever the line points at
func (l *Line) RefID() uint {
	if l.Kind == LinePromotion {
		return l.PromotionID
	}
	return l.ProductID
}

// Cart is the per-client cart aggregate stored in Redis. Lines keep
// insertion order; adding an id already present merges quantities in place.
type Cart struct {
	ClientID  uint      `json:"client_id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCart returns an empty cart for a client
func NewCart(clientID uint) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ClientID:  clientID,
		Lines:     []Line{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity sums quantities across all lines
func (c *Cart) TotalQuantity() int {
	total := 0
	for i := range c.Lines {
		total += c.Lines[i].Quantity
	}
	return total
}

// AddProduct adds quantity of a product, merging with an existing line
func (c *Cart) AddProduct(productID uint, quantity int) error {
	return c.add(LineProduct, productID, quantity)
}

// AddPromotion adds quantity of a promotion bundle, merging with an existing line
func (c *Cart) AddPromotion(promotionID uint, quantity int) error {
	return c.add(LinePromotion, promotionID, quantity)
}

func (c *Cart) add(kind LineKind, id uint, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	if line := c.find(kind, id); line != nil {
		line.Quantity += quantity
		c.touch()
		return nil
	}

	line := Line{Kind: kind, Quantity: quantity, AddedAt: time.Now().UTC()}
	if kind == LinePromotion {
		line.PromotionID = id
	} else {
		line.ProductID = id
	}
	c.Lines = append(c.Lines, line)
	c.touch()
	return nil
}

// SetQuantity replaces a line's quantity. Zero or negative removes the line.
func (c *Cart) SetQuantity(kind LineKind, id uint, quantity int) error {
	if quantity <= 0 {
		if !c.Remove(kind, id) {
			return fmt.Errorf("item not found in cart")
		}
		return nil
	}

	line := c.find(kind, id)
	if line == nil {
		return fmt.Errorf("item not found in cart")
	}
	line.Quantity = quantity
	c.touch()
	return nil
}

// Remove deletes a line, preserving the order of the rest. It reports
// whether a line was removed.
func (c *Cart) Remove(kind LineKind, id uint) bool {
	for i := range c.Lines {
		if c.Lines[i].Kind == kind && c.Lines[i].RefID() == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// Clear removes every line
func (c *Cart) Clear() {
	c.Lines = []Line{}
	c.touch()
}

func (c *Cart) find(kind LineKind, id uint) *Line {
	for i := range c.Lines {
		if c.Lines[i].Kind == kind && c.Lines[i].RefID() == id {
			return &c.Lines[i]
		}
	}
	return nil
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
