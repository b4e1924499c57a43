// internal/domain/pricing/service.go
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles price list business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new pricing service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// PriceListCreateRequest represents price list creation data
type PriceListCreateRequest struct {
	Code            string          `json:"code" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     string          `json:"description"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	IsActive        *bool           `json:"is_active"`
}

// PriceListUpdateRequest represents price list update data
type PriceListUpdateRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	DiscountPercent *decimal.Decimal `json:"discount_percent"`
	IsActive        *bool            `json:"is_active"`
}

// GetPriceLists retrieves price lists. Admins see every list including
// soft-deleted ones; everyone else sees only active lists.
func (s *Service) GetPriceLists(includeDeleted bool) ([]PriceList, error) {
	var lists []PriceList

	query := s.db.Order("name")
	if includeDeleted {
		query = query.Unscoped()
	} else {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve price lists: %w", err)
	}

	return lists, nil
}

// GetPriceList retrieves a single price list by ID
func (s *Service) GetPriceList(id uint) (*PriceList, error) {
	var list PriceList
	if err := s.db.First(&list, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("price list not found")
		}
		return nil, fmt.Errorf("failed to retrieve price list: %w", err)
	}
	return &list, nil
}

// ResolveForClient returns the price list to apply for a client's assigned
// list ID. A nil ID, a missing list or an inactive list all resolve to nil,
// which the resolver treats as the base price. Pricing never fails here.
func (s *Service) ResolveForClient(priceListID *uint) *PriceList {
	if priceListID == nil {
		return nil
	}

	var list PriceList
	if err := s.db.First(&list, *priceListID).Error; err != nil {
		return nil
	}
	if !list.IsActive {
		return nil
	}
	return &list
}

// CreatePriceList creates a new price list
func (s *Service) CreatePriceList(req *PriceListCreateRequest) (*PriceList, error) {
	if err := validateDiscount(req.DiscountPercent); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&PriceList{}).Where("code = ?", req.Code).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("price list with code '%s' already exists", req.Code)
	}

	list := PriceList{
		Code:            req.Code,
		Name:            req.Name,
		Description:     req.Description,
		DiscountPercent: req.DiscountPercent,
		IsActive:        true,
	}
	if req.IsActive != nil {
		list.IsActive = *req.IsActive
	}

	if err := s.db.Create(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to create price list: %w", err)
	}

	return &list, nil
}

// UpdatePriceList updates a price list. The base list accepts name and
// description edits but its discount stays pinned at zero.
func (s *Service) UpdatePriceList(id uint, req *PriceListUpdateRequest) (*PriceList, error) {
	list, err := s.GetPriceList(id)
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
	if req.DiscountPercent != nil {
		if list.IsBase() {
			return nil, fmt.Errorf("the base price list discount cannot be changed")
		}
		if err := validateDiscount(*req.DiscountPercent); err != nil {
			return nil, err
		}
		updates["discount_percent"] = *req.DiscountPercent
	}
	if req.IsActive != nil {
		if list.IsBase() && !*req.IsActive {
			return nil, fmt.Errorf("the base price list cannot be deactivated")
		}
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return list, nil
	}

	if err := s.db.Model(list).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update price list: %w", err)
	}

	return list, nil
}

// DeletePriceList deletes a price list. The base list is protected. Clients
// assigned to the deleted list fall back to the base list (a cleared
// reference). Lists referenced by historical orders are soft deleted so the
// order snapshots keep a resolvable parent; unreferenced lists are removed
// outright.
func (s *Service) DeletePriceList(id uint) error {
	list, err := s.GetPriceList(id)
	if err != nil {
		return err
	}

	if list.IsBase() {
		return fmt.Errorf("the base price list cannot be deleted")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Re-assign clients to the base list (null reference = base).
		if err := tx.Table("users").
			Where("price_list_id = ?", id).
			Update("price_list_id", nil).Error; err != nil {
			return fmt.Errorf("failed to re-assign clients: %w", err)
		}

		var orderRefs int64
		if err := tx.Table("orders").
			Where("price_list_id = ?", id).
			Count(&orderRefs).Error; err != nil {
			return fmt.Errorf("failed to check order references: %w", err)
		}

		if orderRefs > 0 {
			if err := tx.Model(list).Update("is_active", false).Error; err != nil {
				return fmt.Errorf("failed to deactivate price list: %w", err)
			}
			return tx.Delete(list).Error
		}

		return tx.Unscoped().Delete(list).Error
	})
}

func validateDiscount(pct decimal.Decimal) error {
	if pct.Sign() < 0 || pct.GreaterThan(hundred) {
		return fmt.Errorf("discount percent must be between 0 and 100")
	}
	return nil
}
