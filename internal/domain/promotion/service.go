// internal/domain/promotion/service.go
package promotion

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles promotion business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new promotion service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// PromotionItemRequest represents one (product, quantity) pair of a bundle
type PromotionItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// PromotionCreateRequest represents promotion creation data
type PromotionCreateRequest struct {
	Code             string                 `json:"code" binding:"required"`
	Name             string                 `json:"name" binding:"required"`
	Description      string                 `json:"description"`
	PromotionalPrice decimal.Decimal        `json:"promotional_price" binding:"required"`
	Stock            int                    `json:"stock"`
	MinStock         int                    `json:"min_stock"`
	StockControl     StockControl           `json:"stock_control"`
	StartsAt         *time.Time             `json:"starts_at"`
	EndsAt           *time.Time             `json:"ends_at"`
	ImageURL         string                 `json:"image_url"`
	Items            []PromotionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// PromotionUpdateRequest represents promotion update data. A nil Items slice
// leaves the bundle contents untouched.
type PromotionUpdateRequest struct {
	Name             *string                `json:"name"`
	Description      *string                `json:"description"`
	PromotionalPrice *decimal.Decimal       `json:"promotional_price"`
	Stock            *int                   `json:"stock"`
	MinStock         *int                   `json:"min_stock"`
	StockControl     *StockControl          `json:"stock_control"`
	StartsAt         *time.Time             `json:"starts_at"`
	EndsAt           *time.Time             `json:"ends_at"`
	ImageURL         *string                `json:"image_url"`
	IsActive         *bool                  `json:"is_active"`
	Items            []PromotionItemRequest `json:"items"`
}

// PromotionResponse decorates a promotion with its derived pricing
type PromotionResponse struct {
	Promotion
	OriginalPrice   decimal.Decimal `json:"original_price"`
	Savings         decimal.Decimal `json:"savings"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	Available       bool            `json:"available"`
}

// GetPromotions retrieves promotions. When activeOnly is set, only
// promotions that are currently sellable are returned.
func (s *Service) GetPromotions(activeOnly bool) ([]PromotionResponse, error) {
	var promotions []Promotion

	query := s.db.Preload("Items.Product").Order("created_at DESC")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&promotions).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve promotions: %w", err)
	}

	now := time.Now().UTC()
	responses := make([]PromotionResponse, 0, len(promotions))
	for i := range promotions {
		resp := s.toResponse(&promotions[i], now)
		if activeOnly && !resp.Available {
			continue
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// GetPromotion retrieves a single promotion by ID with derived pricing
func (s *Service) GetPromotion(id uint) (*PromotionResponse, error) {
	promo, err := s.getPromotion(id)
	if err != nil {
		return nil, err
	}

	resp := s.toResponse(promo, time.Now().UTC())
	return &resp, nil
}

// CreatePromotion creates a new promotion with its bundle items
func (s *Service) CreatePromotion(req *PromotionCreateRequest) (*PromotionResponse, error) {
	if req.PromotionalPrice.Sign() <= 0 {
		return nil, fmt.Errorf("promotional price must be greater than zero")
	}
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("promotion must include at least one product")
	}

	var count int64
	s.db.Model(&Promotion{}).Where("code = ?", req.Code).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("promotion with code '%s' already exists", req.Code)
	}

	stockControl := req.StockControl
	if stockControl == "" {
		stockControl = StockControlStock
	}

	promo := Promotion{
		Code:             req.Code,
		Name:             req.Name,
		Description:      req.Description,
		PromotionalPrice: req.PromotionalPrice,
		Stock:            req.Stock,
		MinStock:         req.MinStock,
		StockControl:     stockControl,
		StartsAt:         req.StartsAt,
		EndsAt:           req.EndsAt,
		ImageURL:         req.ImageURL,
		IsActive:         true,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&promo).Error; err != nil {
			return fmt.Errorf("failed to create promotion: %w", err)
		}
		return s.replaceItems(tx, &promo, req.Items)
	})
	if err != nil {
		return nil, err
	}

	return s.GetPromotion(promo.ID)
}

// UpdatePromotion updates a promotion and, when items are provided,
// replaces its bundle contents
func (s *Service) UpdatePromotion(id uint, req *PromotionUpdateRequest) (*PromotionResponse, error) {
	promo, err := s.getPromotion(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PromotionalPrice != nil {
		if req.PromotionalPrice.Sign() <= 0 {
			return nil, fmt.Errorf("promotional price must be greater than zero")
		}
		updates["promotional_price"] = *req.PromotionalPrice
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.MinStock != nil {
		updates["min_stock"] = *req.MinStock
	}
	if req.StockControl != nil {
		updates["stock_control"] = *req.StockControl
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsActive != nil {
		if *req.IsActive && len(req.Items) == 0 && len(promo.Items) == 0 {
			return nil, fmt.Errorf("an active promotion must include at least one product")
		}
		updates["is_active"] = *req.IsActive
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(promo).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update promotion: %w", err)
			}
		}
		if req.Items != nil {
			if len(req.Items) == 0 {
				return fmt.Errorf("promotion must include at least one product")
			}
			if err := tx.Where("promotion_id = ?", promo.ID).Delete(&PromotionItem{}).Error; err != nil {
				return fmt.Errorf("failed to clear promotion items: %w", err)
			}
			return s.replaceItems(tx, promo, req.Items)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetPromotion(id)
}

// DeletePromotion soft deletes a promotion
func (s *Service) DeletePromotion(id uint) error {
	promo, err := s.getPromotion(id)
	if err != nil {
		return err
	}
	return s.db.Delete(promo).Error
}

// Private helper methods

func (s *Service) getPromotion(id uint) (*Promotion, error) {
	var promo Promotion
	err := s.db.Preload("Items.Product").First(&promo, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("promotion not found")
		}
		return nil, fmt.Errorf("failed to retrieve promotion: %w", err)
	}
	return &promo, nil
}

func (s *Service) replaceItems(tx *gorm.DB, promo *Promotion, items []PromotionItemRequest) error {
	seen := make(map[uint]bool, len(items))
	for _, itemReq := range items {
		if itemReq.Quantity < 1 {
			return fmt.Errorf("item quantity must be at least 1")
		}
		if seen[itemReq.ProductID] {
			return fmt.Errorf("product %d appears more than once in the bundle", itemReq.ProductID)
		}
		seen[itemReq.ProductID] = true

		var prod product.Product
		if err := tx.Where("id = ? AND is_active = ?", itemReq.ProductID, true).First(&prod).Error; err != nil {
			return fmt.Errorf("product %d not found or inactive", itemReq.ProductID)
		}

		item := PromotionItem{
			PromotionID: promo.ID,
			ProductID:   itemReq.ProductID,
			Quantity:    itemReq.Quantity,
		}
		if err := tx.Create(&item).Error; err != nil {
			return fmt.Errorf("failed to create promotion item: %w", err)
		}
	}
	return nil
}

func (s *Service) toResponse(promo *Promotion, now time.Time) PromotionResponse {
	return PromotionResponse{
		Promotion:       *promo,
		OriginalPrice:   promo.OriginalPrice(),
		Savings:         promo.Savings(),
		DiscountPercent: promo.DiscountPercent(),
		Available:       promo.IsAvailable(now),
	}
}
