// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/pricing"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"github.com/your-org/distribuidora-backend/internal/domain/promotion"
	"gorm.io/gorm"
)

// Service handles cart business logic
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
	pricing     *pricing.Service
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
		pricing:     pricing.NewService(db, cfg),
	}
}

// LineResponse represents a priced cart line
type LineResponse struct {
	Kind      LineKind             `json:"kind"`
	Quantity  int                  `json:"quantity"`
	UnitPrice decimal.Decimal      `json:"unit_price"`
	LineTotal decimal.Decimal      `json:"line_total"`
	Product   *product.Product     `json:"product,omitempty"`
	Promotion *promotion.Promotion `json:"promotion,omitempty"`
	AddedAt   time.Time            `json:"added_at"`
}

// SkippedLine explains a cart line dropped from the priced view, for
// example a product deactivated after it was added.
type SkippedLine struct {
	Kind   LineKind `json:"kind"`
	ID     uint     `json:"id"`
	Reason string   `json:"reason"`
}

// CartResponse represents a cart with priced lines and totals
type CartResponse struct {
	ClientID      uint            `json:"client_id"`
	PriceListName string          `json:"price_list_name"`
	Items         []LineResponse  `json:"items"`
	Skipped       []SkippedLine   `json:"skipped,omitempty"`
	ItemCount     int             `json:"item_count"`
	TotalQuantity int             `json:"total_quantity"`
	Total         decimal.Decimal `json:"total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AddToCartRequest represents add to cart request. Kind defaults to product.
type AddToCartRequest struct {
	Kind     LineKind `json:"kind"`
	ItemID   uint     `json:"item_id" binding:"required"`
	Quantity int      `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart retrieves and prices the client's cart
func (s *Service) GetCart(ctx context.Context, clientID uint) (*CartResponse, error) {
	c, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.price(c)
}

// AddItem adds a product or promotion line to the cart
func (s *Service) AddItem(ctx context.Context, clientID uint, req *AddToCartRequest) (*CartResponse, error) {
	kind := req.Kind
	if kind == "" {
		kind = LineProduct
	}

	switch kind {
	case LineProduct:
		var prod product.Product
		if err := s.db.Where("id = ? AND is_active = ?", req.ItemID, true).First(&prod).Error; err != nil {
			return nil, fmt.Errorf("product not found or inactive")
		}
	case LinePromotion:
		var promo promotion.Promotion
		if err := s.db.Preload("Items.Product").
			Where("id = ? AND is_active = ?", req.ItemID, true).First(&promo).Error; err != nil {
			return nil, fmt.Errorf("promotion not found or inactive")
		}
		if !promo.IsAvailable(time.Now().UTC()) {
			return nil, fmt.Errorf("promotion is not available")
		}
	default:
		return nil, fmt.Errorf("unknown cart line kind: %s", kind)
	}

	c, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := c.add(kind, req.ItemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.price(c)
}

// UpdateItem replaces a line's quantity; zero or less removes the line
func (s *Service) UpdateItem(ctx context.Context, clientID uint, kind LineKind, itemID uint, req *UpdateCartItemRequest) (*CartResponse, error) {
	c, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if err := c.SetQuantity(kind, itemID, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.price(c)
}

// RemoveItem removes a line from the cart
func (s *Service) RemoveItem(ctx context.Context, clientID uint, kind LineKind, itemID uint) (*CartResponse, error) {
	c, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}

	if !c.Remove(kind, itemID) {
		return nil, fmt.Errorf("item not found in cart")
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.price(c)
}

// ClearCart removes the client's cart entirely
func (s *Service) ClearCart(ctx context.Context, clientID uint) error {
	return s.redisClient.Del(ctx, s.key(clientID)).Err()
}

// GetCartItemCount returns the total quantity across cart lines
func (s *Service) GetCartItemCount(ctx context.Context, clientID uint) (int, error) {
	c, err := s.load(ctx, clientID)
	if err != nil {
		return 0, err
	}
	return c.TotalQuantity(), nil
}

// Snapshot returns the raw cart aggregate, for order checkout
func (s *Service) Snapshot(ctx context.Context, clientID uint) (*Cart, error) {
	return s.load(ctx, clientID)
}

func (s *Service) key(clientID uint) string {
	return fmt.Sprintf("cart:client:%d", clientID)
}

func (s *Service) load(ctx context.Context, clientID uint) (*Cart, error) {
	data, err := s.redisClient.Get(ctx, s.key(clientID)).Result()
	if err == redis.Nil {
		return NewCart(clientID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.redisClient.Set(ctx, s.key(c.ClientID), data, s.config.Cart.Retention).Err()
}

// price resolves the client's price list and builds the priced view.
// Lines whose underlying product or promotion is gone or unavailable are
// reported as skipped, not silently dropped.
func (s *Service) price(c *Cart) (*CartResponse, error) {
	var row struct {
		PriceListID *uint
	}
	if err := s.db.Table("users").Select("price_list_id").
		Where("id = ?", c.ClientID).Take(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve client: %w", err)
	}

	list := s.pricing.ResolveForClient(row.PriceListID)
	listName := pricing.BaseListCode
	if list != nil {
		listName = list.Name
	}

	resp := &CartResponse{
		ClientID:      c.ClientID,
		PriceListName: listName,
		Items:         []LineResponse{},
		Total:         decimal.Zero,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}

	now := time.Now().UTC()

	for i := range c.Lines {
		line := &c.Lines[i]
		switch line.Kind {
		case LineProduct:
			var prod product.Product
			err := s.db.Preload("Category").Preload("Subcategory").
				First(&prod, line.ProductID).Error
			if err != nil {
				resp.Skipped = append(resp.Skipped, SkippedLine{Kind: line.Kind, ID: line.ProductID, Reason: "product no longer exists"})
				continue
			}
			if !prod.IsActive {
				resp.Skipped = append(resp.Skipped, SkippedLine{Kind: line.Kind, ID: line.ProductID, Reason: "product is inactive"})
				continue
			}

			unit := pricing.ResolveUnitPrice(prod.Price, list)
			lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
			resp.Items = append(resp.Items, LineResponse{
				Kind:      line.Kind,
				Quantity:  line.Quantity,
				UnitPrice: unit,
				LineTotal: lineTotal,
				Product:   &prod,
				AddedAt:   line.AddedAt,
			})
			resp.Total = resp.Total.Add(lineTotal)

		case LinePromotion:
			var promo promotion.Promotion
			err := s.db.Preload("Items.Product").First(&promo, line.PromotionID).Error
			if err != nil {
				resp.Skipped = append(resp.Skipped, SkippedLine{Kind: line.Kind, ID: line.PromotionID, Reason: "promotion no longer exists"})
				continue
			}
			if !promo.IsAvailable(now) {
				resp.Skipped = append(resp.Skipped, SkippedLine{Kind: line.Kind, ID: line.PromotionID, Reason: "promotion is no longer available"})
				continue
			}

			// Promotions carry their own price; client discounts never stack
			unit := promo.PromotionalPrice.Round(2)
			lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
			resp.Items = append(resp.Items, LineResponse{
				Kind:      line.Kind,
				Quantity:  line.Quantity,
				UnitPrice: unit,
				LineTotal: lineTotal,
				Promotion: &promo,
				AddedAt:   line.AddedAt,
			})
			resp.Total = resp.Total.Add(lineTotal)
		}
	}

	resp.ItemCount = len(resp.Items)
	for _, item := range resp.Items {
		resp.TotalQuantity += item.Quantity
	}
	resp.Total = resp.Total.Round(2)

	return resp, nil
}
