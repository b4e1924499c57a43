// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/cart"
	"github.com/your-org/distribuidora-backend/internal/domain/order"
	"github.com/your-org/distribuidora-backend/internal/interfaces/http/middleware"
	"github.com/your-org/distribuidora-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// OrderHandler handles order lifecycle endpoints
type OrderHandler struct {
	orderService *order.Service
	pdfService   *pdf.Service
	config       *config.Config
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *OrderHandler {
	cartService := cart.NewService(db, redisClient, cfg)
	return &OrderHandler{
		orderService: order.NewService(db, cfg, cartService),
		pdfService:   pdf.NewService(cfg),
		config:       cfg,
	}
}

// CreateOrder handles POST /orders with explicit order lines
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req order.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.CreateOrder(actor.ID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    o,
	})
}

// Checkout handles POST /orders/checkout, creating an order from the
// client's saved cart and clearing the cart on success
func (h *OrderHandler) Checkout(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req order.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.Checkout(c.Request.Context(), actor.ID, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"data":    o,
	})
}

// GetOrders handles GET /orders. Clients see their own orders,
// deliverers see orders assigned to them, staff see everything.
func (h *OrderHandler) GetOrders(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req order.OrderListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid query parameters",
			"details": err.Error(),
		})
		return
	}

	response, err := h.orderService.GetOrders(actor, &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orders retrieved successfully",
		"data":    response,
	})
}

// GetOrder handles GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	o, err := h.orderService.GetOrder(actor, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order retrieved successfully",
		"data":    o,
	})
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	var req order.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.UpdateStatus(orderID, &req, actor)
	if err != nil {
		h.writeStatusError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Order status updated to %s", o.Status),
		"data":    o,
	})
}

// AssignDeliverer handles PUT /orders/:id/deliverer (staff only)
func (h *OrderHandler) AssignDeliverer(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	var req order.AssignDelivererRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.orderService.AssignDeliverer(orderID, &req, actor)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Deliverer assignment updated",
		"data":    o,
	})
}

// DownloadReceipt handles GET /orders/:id/receipt, returning the order
// receipt as a PDF. Receipts exist once the order has been invoiced.
func (h *OrderHandler) DownloadReceipt(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	o, err := h.orderService.GetOrder(actor, orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
		return
	}

	if o.Status != order.StatusInvoiced && o.Status != order.StatusDelivered {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Receipt is only available once the order has been invoiced",
		})
		return
	}

	buf, err := h.pdfService.GenerateReceipt(o)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate receipt",
		})
		return
	}

	filename := fmt.Sprintf("comprobante-%s.pdf", o.OrderNumber)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// GetDashboardStats handles GET /admin/stats (staff only)
func (h *OrderHandler) GetDashboardStats(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	stats, err := h.orderService.GetDashboardStats(actor)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Dashboard stats retrieved successfully",
		"data":    stats,
	})
}

func (h *OrderHandler) actor(c *gin.Context) (order.Actor, bool) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return order.Actor{}, false
	}

	role, exists := middleware.GetUserRoleFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return order.Actor{}, false
	}

	return order.Actor{ID: userID, Role: role}, true
}

func (h *OrderHandler) orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID",
		})
		return 0, false
	}
	return uint(id), true
}

// writeStatusError maps state machine errors onto HTTP statuses
func (h *OrderHandler) writeStatusError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrRoleNotAllowed):
		c.JSON(http.StatusForbidden, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, order.ErrDelivererRequired):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, order.ErrIllegalTransition):
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
	case strings.Contains(err.Error(), "not found"):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	}
}
