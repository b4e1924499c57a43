// internal/domain/product/service.go
package product

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new product service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page          int    `form:"page,default=1"`
	Limit         int    `form:"limit,default=20"`
	CategoryID    uint   `form:"category_id"`
	SubcategoryID uint   `form:"subcategory_id"`
	Search        string `form:"search"`
	IsActive      *bool  `form:"is_active"`
	InStock       *bool  `form:"in_stock"`
	SortBy        string `form:"sort_by,default=name"`
	SortOrder     string `form:"sort_order,default=asc"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Code          string          `json:"code" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	CategoryID    uint            `json:"category_id" binding:"required"`
	SubcategoryID *uint           `json:"subcategory_id"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	Stock         int             `json:"stock"`
	MinStock      int             `json:"min_stock"`
	Barcode       string          `json:"barcode"`
	ImageURL      string          `json:"image_url"`
	IsActive      *bool           `json:"is_active"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	CategoryID    *uint            `json:"category_id"`
	SubcategoryID *uint            `json:"subcategory_id"`
	Price         *decimal.Decimal `json:"price"`
	Stock         *int             `json:"stock"`
	MinStock      *int             `json:"min_stock"`
	Barcode       *string          `json:"barcode"`
	ImageURL      *string          `json:"image_url"`
	IsActive      *bool            `json:"is_active"`
}

// ProductListResponse represents a paginated product listing
type ProductListResponse struct {
	Products   []Product  `json:"products"`
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

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductListResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).
		Preload("Category").
		Preload("Subcategory")

	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}
	if req.SubcategoryID > 0 {
		query = query.Where("subcategory_id = ?", req.SubcategoryID)
	}
	if req.IsActive != nil {
		query = query.Where("is_active = ?", *req.IsActive)
	}
	if req.InStock != nil {
		if *req.InStock {
			query = query.Where("stock > 0")
		} else {
			query = query.Where("stock <= 0")
		}
	}
	if req.Search != "" {
		term := "%" + strings.TrimSpace(req.Search) + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR barcode ILIKE ?", term, term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	query = query.Order(s.buildOrderClause(req.SortBy, req.SortOrder))

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &ProductListResponse{
		Products: products,
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

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var prod Product
	err := s.db.Preload("Category").Preload("Subcategory").First(&prod, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	return &prod, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *ProductCreateRequest) (*Product, error) {
	if req.Price.Sign() < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("stock cannot be negative")
	}

	var count int64
	s.db.Model(&Product{}).Where("code = ?", req.Code).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("product with code '%s' already exists", req.Code)
	}

	prod := Product{
		Code:          req.Code,
		Name:          req.Name,
		Description:   req.Description,
		CategoryID:    req.CategoryID,
		SubcategoryID: req.SubcategoryID,
		Price:         req.Price,
		Stock:         req.Stock,
		MinStock:      req.MinStock,
		Barcode:       req.Barcode,
		ImageURL:      req.ImageURL,
		IsActive:      true,
	}
	if req.IsActive != nil {
		prod.IsActive = *req.IsActive
	}

	if err := s.db.Create(&prod).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.GetProduct(prod.ID)
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest) (*Product, error) {
	prod, err := s.GetProduct(id)
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
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.SubcategoryID != nil {
		updates["subcategory_id"] = *req.SubcategoryID
	}
	if req.Price != nil {
		if req.Price.Sign() < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		updates["price"] = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			return nil, fmt.Errorf("stock cannot be negative")
		}
		updates["stock"] = *req.Stock
	}
	if req.MinStock != nil {
		updates["min_stock"] = *req.MinStock
	}
	if req.Barcode != nil {
		updates["barcode"] = *req.Barcode
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(prod).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(id)
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id uint) error {
	prod, err := s.GetProduct(id)
	if err != nil {
		return err
	}
	return s.db.Delete(prod).Error
}

// GetLowStockProducts retrieves active products at or below minimum stock
func (s *Service) GetLowStockProducts() ([]Product, error) {
	var products []Product
	err := s.db.Preload("Category").
		Where("is_active = ? AND stock <= min_stock", true).
		Order("stock").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve low stock products: %w", err)
	}
	return products, nil
}

// GetOutOfStockProducts retrieves active products with no stock left
func (s *Service) GetOutOfStockProducts() ([]Product, error) {
	var products []Product
	err := s.db.Preload("Category").
		Where("is_active = ? AND stock <= 0", true).
		Order("name").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve out of stock products: %w", err)
	}
	return products, nil
}

func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	validSortFields := map[string]bool{
		"name":       true,
		"code":       true,
		"price":      true,
		"stock":      true,
		"created_at": true,
	}

	if !validSortFields[sortBy] {
		sortBy = "name"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "asc"
	}

	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
