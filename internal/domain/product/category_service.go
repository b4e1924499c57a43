// internal/domain/product/category_service.go
package product

import (
	"fmt"

	"github.com/your-org/distribuidora-backend/internal/config"
	"gorm.io/gorm"
)

// CategoryService handles category and subcategory business logic
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// CategoryRequest represents category create/update data
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// SubcategoryRequest represents subcategory create/update data
type SubcategoryRequest struct {
	CategoryID  uint   `json:"category_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"is_active"`
}

// GetCategories retrieves categories, optionally restricted to active ones
func (s *CategoryService) GetCategories(activeOnly bool) ([]Category, error) {
	var categories []Category

	query := s.db.Preload("Subcategories").Order("name")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	if err := query.Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	return categories, nil
}

// GetCategory retrieves a single category by ID
func (s *CategoryService) GetCategory(id uint) (*Category, error) {
	var category Category
	if err := s.db.Preload("Subcategories").First(&category, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}
	return &category, nil
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(req *CategoryRequest) (*Category, error) {
	var count int64
	s.db.Model(&Category{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("category '%s' already exists", req.Name)
	}

	category := Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &category, nil
}

// UpdateCategory updates an existing category
func (s *CategoryService) UpdateCategory(id uint, req *CategoryRequest) (*Category, error) {
	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(category).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return s.GetCategory(id)
}

// DeleteCategory soft deletes a category when no products reference it
func (s *CategoryService) DeleteCategory(id uint) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	var productCount int64
	s.db.Model(&Product{}).Where("category_id = ?", id).Count(&productCount)
	if productCount > 0 {
		return fmt.Errorf("category has %d products and cannot be deleted", productCount)
	}

	return s.db.Select("Subcategories").Delete(category).Error
}

// CreateSubcategory creates a new subcategory inside a category
func (s *CategoryService) CreateSubcategory(req *SubcategoryRequest) (*Subcategory, error) {
	if _, err := s.GetCategory(req.CategoryID); err != nil {
		return nil, err
	}

	var count int64
	s.db.Model(&Subcategory{}).
		Where("category_id = ? AND name = ?", req.CategoryID, req.Name).
		Count(&count)
	if count > 0 {
		return nil, fmt.Errorf("subcategory '%s' already exists in this category", req.Name)
	}

	subcategory := Subcategory{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if req.IsActive != nil {
		subcategory.IsActive = *req.IsActive
	}

	if err := s.db.Create(&subcategory).Error; err != nil {
		return nil, fmt.Errorf("failed to create subcategory: %w", err)
	}

	return &subcategory, nil
}

// UpdateSubcategory updates an existing subcategory
func (s *CategoryService) UpdateSubcategory(id uint, req *SubcategoryRequest) (*Subcategory, error) {
	var subcategory Subcategory
	if err := s.db.First(&subcategory, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("subcategory not found")
		}
		return nil, fmt.Errorf("failed to retrieve subcategory: %w", err)
	}

	updates := map[string]interface{}{
		"category_id": req.CategoryID,
		"name":        req.Name,
		"description": req.Description,
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.db.Model(&subcategory).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update subcategory: %w", err)
	}

	return &subcategory, nil
}

// DeleteSubcategory soft deletes a subcategory
func (s *CategoryService) DeleteSubcategory(id uint) error {
	var subcategory Subcategory
	if err := s.db.First(&subcategory, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("subcategory not found")
		}
		return fmt.Errorf("failed to retrieve subcategory: %w", err)
	}

	var productCount int64
	s.db.Model(&Product{}).Where("subcategory_id = ?", id).Count(&productCount)
	if productCount > 0 {
		return fmt.Errorf("subcategory has %d products and cannot be deleted", productCount)
	}

	return s.db.Delete(&subcategory).Error
}
