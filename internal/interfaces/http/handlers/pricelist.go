// internal/interfaces/http/handlers/pricelist.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/pricing"
	"gorm.io/gorm"
)

// PriceListHandler handles price list management endpoints
type PriceListHandler struct {
	pricingService *pricing.Service
	config         *config.Config
}

// NewPriceListHandler creates a new price list handler
func NewPriceListHandler(db *gorm.DB, cfg *config.Config) *PriceListHandler {
	return &PriceListHandler{
		pricingService: pricing.NewService(db, cfg),
		config:         cfg,
	}
}

// GetPriceLists handles GET /price-lists (staff only)
func (h *PriceListHandler) GetPriceLists(c *gin.Context) {
	includeDeleted := c.DefaultQuery("include_deleted", "false") == "true"

	lists, err := h.pricingService.GetPriceLists(includeDeleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price lists retrieved successfully",
		"data":    lists,
	})
}

// GetPriceList handles GET /price-lists/:id (staff only)
func (h *PriceListHandler) GetPriceList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price list ID",
		})
		return
	}

	list, err := h.pricingService.GetPriceList(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price list retrieved successfully",
		"data":    list,
	})
}

// CreatePriceList handles POST /price-lists (staff only)
func (h *PriceListHandler) CreatePriceList(c *gin.Context) {
	var req pricing.PriceListCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	list, err := h.pricingService.CreatePriceList(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Price list created successfully",
		"data":    list,
	})
}

// UpdatePriceList handles PUT /price-lists/:id (staff only)
func (h *PriceListHandler) UpdatePriceList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price list ID",
		})
		return
	}

	var req pricing.PriceListUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	list, err := h.pricingService.UpdatePriceList(uint(id), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price list updated successfully",
		"data":    list,
	})
}

// DeletePriceList handles DELETE /price-lists/:id (admin only)
func (h *PriceListHandler) DeletePriceList(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid price list ID",
		})
		return
	}

	if err := h.pricingService.DeletePriceList(uint(id)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price list deleted successfully",
	})
}
