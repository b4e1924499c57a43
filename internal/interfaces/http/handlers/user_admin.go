// internal/interfaces/http/handlers/user_admin.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
	"github.com/your-org/distribuidora-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// AdminUserHandler handles admin user management endpoints
type AdminUserHandler struct {
	adminService *user.AdminService
	config       *config.Config
}

// NewAdminUserHandler creates a new admin user handler
func NewAdminUserHandler(db *gorm.DB, cfg *config.Config) *AdminUserHandler {
	return &AdminUserHandler{
		adminService: user.NewAdminService(db, cfg),
		config:       cfg,
	}
}

// GetUsers handles GET /admin/users
func (h *AdminUserHandler) GetUsers(c *gin.Context) {
	var req user.UserListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.adminService.GetUsers(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"data":    response,
	})
}

// GetUser handles GET /admin/users/:id
func (h *AdminUserHandler) GetUser(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	u, err := h.adminService.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User retrieved successfully",
		"data":    u,
	})
}

// CreateUser handles POST /admin/users, creating accounts of any role
func (h *AdminUserHandler) CreateUser(c *gin.Context) {
	var req user.UserCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.adminService.CreateUser(&req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"data":    u,
	})
}

// UpdateUser handles PUT /admin/users/:id
func (h *AdminUserHandler) UpdateUser(c *gin.Context) {
	adminID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req user.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.adminService.UpdateUser(userID, &req, adminID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"data":    u,
	})
}

// AssignPriceList handles PUT /admin/users/:id/price-list
func (h *AdminUserHandler) AssignPriceList(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req user.PriceListAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	u, err := h.adminService.AssignPriceList(userID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Price list assignment updated",
		"data":    u,
	})
}

// GetDeliverers handles GET /admin/deliverers, listing active deliverers
// available for order assignment
func (h *AdminUserHandler) GetDeliverers(c *gin.Context) {
	deliverers, err := h.adminService.GetDeliverers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deliverers retrieved successfully",
		"data":    deliverers,
	})
}

// ExportUsers handles GET /admin/users/export
func (h *AdminUserHandler) ExportUsers(c *gin.Context) {
	var req user.UserExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	data, filename, err := h.adminService.ExportUsers(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	contentType := "text/csv"
	if req.Format == "json" {
		contentType = "application/json"
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}

func (h *AdminUserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid user ID",
		})
		return 0, false
	}
	return uint(id), true
}
