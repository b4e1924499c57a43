// internal/interfaces/http/handlers/promotion.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/promotion"
	"gorm.io/gorm"
)

// PromotionHandler handles promotion bundle endpoints
type PromotionHandler struct {
	promotionService *promotion.Service
	config           *config.Config
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(db *gorm.DB, cfg *config.Config) *PromotionHandler {
	return &PromotionHandler{
		promotionService: promotion.NewService(db, cfg),
		config:           cfg,
	}
}

// GetPromotions handles GET /promotions
func (h *PromotionHandler) GetPromotions(c *gin.Context) {
	activeOnly := c.DefaultQuery("active_only", "true") == "true"

	promotions, err := h.promotionService.GetPromotions(activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promotions retrieved successfully",
		"data":    promotions,
	})
}

// GetPromotion handles GET /promotions/:id
func (h *PromotionHandler) GetPromotion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID",
		})
		return
	}

	promo, err := h.promotionService.GetPromotion(uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promotion retrieved successfully",
		"data":    promo,
	})
}

// CreatePromotion handles POST /promotions (staff only)
func (h *PromotionHandler) CreatePromotion(c *gin.Context) {
	var req promotion.PromotionCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	promo, err := h.promotionService.CreatePromotion(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Promotion created successfully",
		"data":    promo,
	})
}

// UpdatePromotion handles PUT /promotions/:id (staff only)
func (h *PromotionHandler) UpdatePromotion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID",
		})
		return
	}

	var req promotion.PromotionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	promo, err := h.promotionService.UpdatePromotion(uint(id), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promotion updated successfully",
		"data":    promo,
	})
}

// DeletePromotion handles DELETE /promotions/:id (staff only)
func (h *PromotionHandler) DeletePromotion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid promotion ID",
		})
		return
	}

	if err := h.promotionService.DeletePromotion(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Promotion deleted successfully",
	})
}
