// internal/domain/stock/service.go
package stock

import (
	"fmt"

	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"gorm.io/gorm"
)

// Service handles the stock movement ledger
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new stock service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// MovementListRequest represents movement list query parameters
type MovementListRequest struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	ProductID uint   `form:"product_id"`
	Type      string `form:"type"` // sale, return, adjustment
}

// MovementListResponse represents movement list with pagination
type MovementListResponse struct {
	Movements  []Movement `json:"movements"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// AdjustRequest represents a manual stock correction
type AdjustRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Delta     int    `json:"delta" binding:"required"`
	Notes     string `json:"notes"`
}

// Record appends a movement inside the caller's transaction
func (s *Service) Record(tx *gorm.DB, m *Movement) error {
	if err := tx.Create(m).Error; err != nil {
		return fmt.Errorf("failed to record stock movement: %w", err)
	}
	return nil
}

// GetMovements retrieves the ledger, newest first
func (s *Service) GetMovements(req *MovementListRequest) (*MovementListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.Model(&Movement{})
	if req.ProductID != 0 {
		query = query.Where("product_id = ?", req.ProductID)
	}
	if req.Type != "" {
		query = query.Where("movement_type = ?", req.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count stock movements: %w", err)
	}

	var movements []Movement
	offset := (req.Page - 1) * req.Limit
	err := query.Preload("Product").
		Order("created_at DESC").
		Offset(offset).
		Limit(req.Limit).
		Find(&movements).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve stock movements: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &MovementListResponse{
		Movements: movements,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// Adjust applies a manual stock correction and records it. Negative
// deltas never drive stock below zero.
func (s *Service) Adjust(req *AdjustRequest, actorID uint) (*Movement, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var p product.Product
	if err := tx.First(&p, req.ProductID).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("product not found")
	}

	query := tx.Model(&product.Product{}).Where("id = ?", req.ProductID)
	if req.Delta < 0 {
		query = query.Where("stock >= ?", -req.Delta)
	}
	result := query.UpdateColumn("stock", gorm.Expr("stock + ?", req.Delta))
	if result.Error != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to adjust stock: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, fmt.Errorf("adjustment would leave product '%s' with negative stock", p.Name)
	}

	movement := Movement{
		ProductID:     req.ProductID,
		Type:          MovementAdjustment,
		Quantity:      req.Delta,
		PreviousStock: p.Stock,
		NewStock:      p.Stock + req.Delta,
		ReferenceType: "manual",
		Notes:         req.Notes,
		CreatedBy:     actorID,
	}
	if err := s.Record(tx, &movement); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit adjustment: %w", err)
	}

	return &movement, nil
}
