// internal/domain/order/service.go
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/cart"
	"github.com/your-org/distribuidora-backend/internal/domain/pricing"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"github.com/your-org/distribuidora-backend/internal/domain/promotion"
	"github.com/your-org/distribuidora-backend/internal/domain/stock"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
	pricing     *pricing.Service
	stock       *stock.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
		pricing:     pricing.NewService(db, cfg),
		stock:       stock.NewService(db, cfg),
	}
}

// Actor identifies who is performing an operation
type Actor struct {
	ID   uint
	Role user.Role
}

// OrderLineRequest is one requested line: a product or a promotion bundle
type OrderLineRequest struct {
	Kind     cart.LineKind `json:"kind"`
	ItemID   uint          `json:"item_id" binding:"required"`
	Quantity int           `json:"quantity" binding:"required,min=1"`
}

// CreateOrderRequest represents order creation data
type CreateOrderRequest struct {
	Items []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	Notes string             `json:"notas"`
}

// CheckoutRequest creates an order from the client's saved cart
type CheckoutRequest struct {
	Notes string `json:"notas"`
}

// UpdateStatusRequest represents a status change request
type UpdateStatusRequest struct {
	Status  Status `json:"estado" binding:"required"`
	Comment string `json:"comment"`
}

// AssignDelivererRequest assigns or clears an order's deliverer.
// A nil DelivererID clears the assignment.
type AssignDelivererRequest struct {
	DelivererID *uint `json:"transportador_id"`
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	Status    Status `form:"estado"`
	ClientID  uint   `form:"client_id"`
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

// OrderListResponse represents order list with pagination
type OrderListResponse struct {
	Orders     []Order    `json:"orders"`
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

// CreateOrder creates a pending order for a client from explicit lines.
// Promotion bundles are exploded into product items, stock is only
// reserved later when the order is confirmed.
func (s *Service) CreateOrder(clientID uint, req *CreateOrderRequest) (*Order, error) {
	lines := make([]cart.Line, 0, len(req.Items))
	for _, it := range req.Items {
		kind := it.Kind
		if kind == "" {
			kind = cart.LineProduct
		}
		line := cart.Line{Kind: kind, Quantity: it.Quantity}
		if kind == cart.LinePromotion {
			line.PromotionID = it.ItemID
		} else {
			line.ProductID = it.ItemID
		}
		lines = append(lines, line)
	}
	return s.create(clientID, lines, req.Notes)
}

// Checkout creates a pending order from the client's saved cart and
// clears the cart on success.
func (s *Service) Checkout(ctx context.Context, clientID uint, req *CheckoutRequest) (*Order, error) {
	snapshot, err := s.cartService.Snapshot(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	if snapshot.IsEmpty() {
		return nil, fmt.Errorf("cart is empty")
	}

	order, err := s.create(clientID, snapshot.Lines, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.cartService.ClearCart(ctx, clientID); err != nil {
		// The order exists; a stale cart is recoverable
		fmt.Printf("Warning: failed to clear cart after checkout: %v\n", err)
	}

	return order, nil
}

func (s *Service) create(clientID uint, lines []cart.Line, notes string) (*Order, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("order must have at least one line")
	}

	var client user.User
	if err := s.db.Where("id = ? AND is_active = ?", clientID, true).First(&client).Error; err != nil {
		return nil, fmt.Errorf("client not found or inactive")
	}
	if !client.IsClient() {
		return nil, fmt.Errorf("orders can only be placed for client accounts")
	}

	list := s.pricing.ResolveForClient(client.PriceListID)
	listName := pricing.BaseListCode
	listDiscount := decimal.Zero
	if list != nil {
		listName = list.Name
		listDiscount = list.DiscountPercent
	}

	items, subtotal, discountTotal, err := s.assemble(lines, list)
	if err != nil {
		return nil, err
	}

	order := Order{
		ClientID:          clientID,
		Status:            StatusPending,
		PriceListName:     listName,
		PriceListDiscount: listDiscount,
		Subtotal:          subtotal,
		DiscountTotal:     discountTotal,
		Total:             subtotal.Sub(discountTotal),
		Notes:             notes,
	}
	if list != nil {
		order.PriceListID = &list.ID
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	order.OrderNumber = order.GenerateOrderNumber()
	if err := tx.Model(&order).Update("order_number", order.OrderNumber).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update order number: %w", err)
	}

	for i := range items {
		items[i].OrderID = order.ID
		if err := tx.Create(&items[i]).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to create order item: %w", err)
		}
	}

	history := OrderStatusHistory{
		OrderID:   order.ID,
		ToStatus:  StatusPending,
		Comment:   "Order created",
		CreatedBy: clientID,
		CreatedAt: time.Now().UTC(),
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit order transaction: %w", err)
	}

	return s.loadOrder(order.ID)
}

// assemble turns requested lines into priced order items. Products are
// priced through the client's list; promotion bundles are exploded into
// their constituent products at base price, with the bundle discount
// allocated proportionally across them so the totals add up exactly.
func (s *Service) assemble(lines []cart.Line, list *pricing.PriceList) ([]OrderItem, decimal.Decimal, decimal.Decimal, error) {
	var items []OrderItem
	subtotal := decimal.Zero
	discountTotal := decimal.Zero
	now := time.Now().UTC()

	for _, line := range lines {
		switch line.Kind {
		case cart.LineProduct:
			var prod product.Product
			if err := s.db.Where("id = ? AND is_active = ?", line.ProductID, true).First(&prod).Error; err != nil {
				return nil, decimal.Zero, decimal.Zero, fmt.Errorf("product %d not found or inactive", line.ProductID)
			}
			if prod.Stock < line.Quantity {
				return nil, decimal.Zero, decimal.Zero,
					fmt.Errorf("insufficient stock for product '%s': available %d, requested %d", prod.Name, prod.Stock, line.Quantity)
			}

			unit := pricing.ResolveUnitPrice(prod.Price, list)
			lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
			items = append(items, OrderItem{
				ProductID:   prod.ID,
				ProductName: prod.Name,
				ProductCode: prod.Code,
				Quantity:    line.Quantity,
				UnitPrice:   unit,
				Discount:    decimal.Zero,
				TotalPrice:  lineTotal,
			})
			subtotal = subtotal.Add(lineTotal)

		case cart.LinePromotion:
			var promo promotion.Promotion
			if err := s.db.Preload("Items.Product").
				Where("id = ? AND is_active = ?", line.PromotionID, true).First(&promo).Error; err != nil {
				return nil, decimal.Zero, decimal.Zero, fmt.Errorf("promotion %d not found or inactive", line.PromotionID)
			}
			if !promo.IsAvailable(now) {
				return nil, decimal.Zero, decimal.Zero, fmt.Errorf("promotion '%s' is not available", promo.Name)
			}
			if promo.TracksStock() && promo.Stock < line.Quantity {
				return nil, decimal.Zero, decimal.Zero,
					fmt.Errorf("insufficient stock for promotion '%s': available %d, requested %d", promo.Name, promo.Stock, line.Quantity)
			}

			promoItems, gross, discount, err := s.explodePromotion(&promo, line.Quantity)
			if err != nil {
				return nil, decimal.Zero, decimal.Zero, err
			}
			items = append(items, promoItems...)
			subtotal = subtotal.Add(gross)
			discountTotal = discountTotal.Add(discount)

		default:
			return nil, decimal.Zero, decimal.Zero, fmt.Errorf("unknown order line kind: %s", line.Kind)
		}
	}

	return items, subtotal.Round(2), discountTotal.Round(2), nil
}

// explodePromotion converts bundleCount bundles of a promotion into product
// order items. Each item carries the product's base price; the difference
// between the summed base prices and the promotional price becomes the
// discount, split across items in proportion to their gross value. The
// last item absorbs the rounding remainder.
func (s *Service) explodePromotion(promo *promotion.Promotion, bundleCount int) ([]OrderItem, decimal.Decimal, decimal.Decimal, error) {
	count := decimal.NewFromInt(int64(bundleCount))
	gross := decimal.Zero

	items := make([]OrderItem, 0, len(promo.Items))
	for _, pi := range promo.Items {
		if pi.Product.ID == 0 {
			return nil, decimal.Zero, decimal.Zero,
				fmt.Errorf("promotion '%s' references a missing product", promo.Name)
		}
		qty := pi.Quantity * bundleCount
		if pi.Product.Stock < qty {
			return nil, decimal.Zero, decimal.Zero,
				fmt.Errorf("insufficient stock for product '%s' in promotion '%s': available %d, requested %d",
					pi.Product.Name, promo.Name, pi.Product.Stock, qty)
		}

		unit := pi.Product.Price.Round(2)
		lineGross := unit.Mul(decimal.NewFromInt(int64(qty)))
		promoID := promo.ID
		items = append(items, OrderItem{
			ProductID:   pi.ProductID,
			PromotionID: &promoID,
			ProductName: pi.Product.Name,
			ProductCode: pi.Product.Code,
			Quantity:    qty,
			UnitPrice:   unit,
			TotalPrice:  lineGross,
		})
		gross = gross.Add(lineGross)
	}

	totalDiscount := gross.Sub(promo.PromotionalPrice.Mul(count)).Round(2)
	if totalDiscount.Sign() < 0 {
		totalDiscount = decimal.Zero
	}

	allocated := decimal.Zero
	for i := range items {
		var share decimal.Decimal
		if i == len(items)-1 {
			share = totalDiscount.Sub(allocated)
		} else if gross.Sign() > 0 {
			share = totalDiscount.Mul(items[i].TotalPrice).Div(gross).Round(2)
		}
		items[i].Discount = share
		items[i].TotalPrice = items[i].TotalPrice.Sub(share)
		allocated = allocated.Add(share)
	}

	return items, gross, totalDiscount, nil
}

// GetOrders retrieves orders scoped to the actor's role: clients see only
// their own orders, deliverers only orders assigned to them.
func (s *Service) GetOrders(actor Actor, req *OrderListRequest) (*OrderListResponse, error) {
	var orders []Order
	var total int64

	query := s.db.Model(&Order{}).
		Preload("Items").
		Preload("Client").
		Preload("Deliverer")

	switch actor.Role {
	case user.RoleClient:
		query = query.Where("client_id = ?", actor.ID)
	case user.RoleDeliverer:
		query = query.Where("deliverer_id = ?", actor.ID)
		// Deliverers work from their invoiced queue by default.
		if req.Status == "" {
			query = query.Where("status = ?", StatusInvoiced)
		}
	case user.RoleAdmin, user.RoleSalesperson:
		if req.ClientID > 0 {
			query = query.Where("client_id = ?", req.ClientID)
		}
	default:
		return nil, fmt.Errorf("%w: %s cannot list orders", ErrRoleNotAllowed, actor.Role)
	}

	if req.Status != "" {
		if !req.Status.Valid() {
			return nil, fmt.Errorf("unknown status: %s", req.Status)
		}
		query = query.Where("status = ?", req.Status)
	}

	if req.DateFrom != "" {
		query = query.Where("created_at >= ?", req.DateFrom)
	}
	if req.DateTo != "" {
		query = query.Where("created_at <= ?", req.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	query = query.Order(s.buildOrderClause(req.SortBy, req.SortOrder))

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &OrderListResponse{
		Orders: orders,
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

// GetOrder retrieves a single order, enforcing the actor's visibility
func (s *Service) GetOrder(actor Actor, id uint) (*Order, error) {
	order, err := s.loadOrder(id)
	if err != nil {
		return nil, err
	}
	if err := s.checkVisibility(actor, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateStatus transitions an order through its lifecycle. Confirmation
// reserves stock; rejection after confirmation restores it.
func (s *Service) UpdateStatus(orderID uint, req *UpdateStatusRequest, actor Actor) (*Order, error) {
	if !req.Status.Valid() {
		return nil, fmt.Errorf("unknown status: %s", req.Status)
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var order Order
	if err := tx.Preload("Items").First(&order, orderID).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("order not found")
	}

	// Ownership comes before the transition rules
	if actor.Role == user.RoleDeliverer && (order.DelivererID == nil || *order.DelivererID != actor.ID) {
		tx.Rollback()
		return nil, fmt.Errorf("order not found")
	}

	from := order.Status
	to := req.Status
	if err := CanTransition(from, to, actor.Role, order.HasDeliverer()); err != nil {
		tx.Rollback()
		return nil, err
	}

	now := time.Now().UTC()
	updates := map[string]interface{}{"status": to}

	switch to {
	case StatusPreparing:
		if err := s.reserveStock(tx, &order, actor.ID); err != nil {
			tx.Rollback()
			return nil, err
		}
		updates["confirmed_at"] = now
	case StatusInvoiced:
		updates["invoiced_at"] = now
	case StatusDelivered:
		updates["delivered_at"] = now
	case StatusRejected:
		if order.ConfirmedAt != nil {
			if err := s.restoreStock(tx, &order, actor.ID); err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Model(&order).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	history := OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: from,
		ToStatus:   to,
		Comment:    req.Comment,
		CreatedBy:  actor.ID,
		CreatedAt:  now,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit status update: %w", err)
	}

	return s.loadOrder(orderID)
}

// AssignDeliverer sets or clears the order's deliverer. Only invoiced
// orders can be assigned; re-assigning the same deliverer is a no-op.
func (s *Service) AssignDeliverer(orderID uint, req *AssignDelivererRequest, actor Actor) (*Order, error) {
	if actor.Role != user.RoleAdmin && actor.Role != user.RoleSalesperson {
		return nil, fmt.Errorf("%w: %s cannot assign deliverers", ErrRoleNotAllowed, actor.Role)
	}

	var order Order
	if err := s.db.First(&order, orderID).Error; err != nil {
		return nil, fmt.Errorf("order not found")
	}

	if order.Status != StatusInvoiced {
		return nil, fmt.Errorf("only invoiced orders can have a deliverer assigned, order is %s", order.Status)
	}

	// Idempotent: same assignment, nothing to do
	if equalIDPtr(order.DelivererID, req.DelivererID) {
		return s.loadOrder(orderID)
	}

	comment := "Deliverer unassigned"
	if req.DelivererID != nil {
		var deliverer user.User
		err := s.db.Where("id = ? AND role = ? AND is_active = ?", *req.DelivererID, user.RoleDeliverer, true).
			First(&deliverer).Error
		if err != nil {
			return nil, fmt.Errorf("deliverer not found or inactive")
		}
		comment = fmt.Sprintf("Deliverer assigned: %s", deliverer.GetFullName())
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&order).Update("deliverer_id", req.DelivererID).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to assign deliverer: %w", err)
	}

	history := OrderStatusHistory{
		OrderID:    order.ID,
		FromStatus: order.Status,
		ToStatus:   order.Status,
		Comment:    comment,
		CreatedBy:  actor.ID,
		CreatedAt:  time.Now().UTC(),
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status history: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit assignment: %w", err)
	}

	return s.loadOrder(orderID)
}

func (s *Service) loadOrder(id uint) (*Order, error) {
	var order Order
	result := s.db.
		Preload("Items").
		Preload("Client").
		Preload("Deliverer").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&order, id)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("order not found")
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &order, nil
}

func (s *Service) checkVisibility(actor Actor, order *Order) error {
	switch actor.Role {
	case user.RoleAdmin, user.RoleSalesperson:
		return nil
	case user.RoleClient:
		if order.ClientID == actor.ID {
			return nil
		}
	case user.RoleDeliverer:
		if order.DelivererID != nil && *order.DelivererID == actor.ID {
			return nil
		}
	}
	return fmt.Errorf("order not found")
}

// reserveStock decrements product stock for every item, and promotion
// stock for stock-tracked bundles, re-checking availability inside the
// transaction. Every product decrement lands in the stock ledger.
func (s *Service) reserveStock(tx *gorm.DB, order *Order, actorID uint) error {
	for _, item := range order.Items {
		result := tx.Model(&product.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
		if result.Error != nil {
			return fmt.Errorf("failed to reserve stock: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("insufficient stock for product '%s'", item.ProductName)
		}

		if err := s.recordMovement(tx, order, &item, stock.MovementSale, -item.Quantity, actorID); err != nil {
			return err
		}
	}

	for promoID, bundles := range s.bundleCounts(order) {
		var promo promotion.Promotion
		if err := tx.First(&promo, promoID).Error; err != nil {
			return fmt.Errorf("promotion %d not found: %w", promoID, err)
		}
		if !promo.TracksStock() {
			continue
		}
		result := tx.Model(&promotion.Promotion{}).
			Where("id = ? AND stock >= ?", promoID, bundles).
			UpdateColumn("stock", gorm.Expr("stock - ?", bundles))
		if result.Error != nil {
			return fmt.Errorf("failed to reserve promotion stock: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("insufficient stock for promotion '%s'", promo.Name)
		}
	}

	return nil
}

func (s *Service) restoreStock(tx *gorm.DB, order *Order, actorID uint) error {
	for _, item := range order.Items {
		result := tx.Model(&product.Product{}).
			Where("id = ?", item.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity))
		if result.Error != nil {
			return fmt.Errorf("failed to restore stock: %w", result.Error)
		}

		if err := s.recordMovement(tx, order, &item, stock.MovementReturn, item.Quantity, actorID); err != nil {
			return err
		}
	}

	for promoID, bundles := range s.bundleCounts(order) {
		var promo promotion.Promotion
		if err := tx.First(&promo, promoID).Error; err != nil {
			return fmt.Errorf("promotion %d not found: %w", promoID, err)
		}
		if !promo.TracksStock() {
			continue
		}
		result := tx.Model(&promotion.Promotion{}).
			Where("id = ?", promoID).
			UpdateColumn("stock", gorm.Expr("stock + ?", bundles))
		if result.Error != nil {
			return fmt.Errorf("failed to restore promotion stock: %w", result.Error)
		}
	}

	return nil
}

// recordMovement reads the product's post-update stock and appends the
// ledger entry inside the same transaction.
func (s *Service) recordMovement(tx *gorm.DB, order *Order, item *OrderItem, kind stock.MovementType, delta int, actorID uint) error {
	var p product.Product
	if err := tx.Select("stock").First(&p, item.ProductID).Error; err != nil {
		return fmt.Errorf("failed to read stock for product %d: %w", item.ProductID, err)
	}

	movement := stock.Movement{
		ProductID:     item.ProductID,
		Type:          kind,
		Quantity:      delta,
		PreviousStock: p.Stock - delta,
		NewStock:      p.Stock,
		ReferenceType: "order",
		ReferenceID:   order.ID,
		CreatedBy:     actorID,
	}
	return s.stock.Record(tx, &movement)
}

// bundleCounts recovers how many bundles of each promotion an order holds
// from its exploded items.
func (s *Service) bundleCounts(order *Order) map[uint]int {
	counts := make(map[uint]int)
	for _, item := range order.Items {
		if item.PromotionID == nil {
			continue
		}
		var pi promotion.PromotionItem
		err := s.db.Where("promotion_id = ? AND product_id = ?", *item.PromotionID, item.ProductID).
			First(&pi).Error
		if err != nil || pi.Quantity <= 0 {
			continue
		}
		if _, seen := counts[*item.PromotionID]; !seen {
			counts[*item.PromotionID] = item.Quantity / pi.Quantity
		}
	}
	return counts
}

func equalIDPtr(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	validSortFields := map[string]bool{
		"created_at":   true,
		"updated_at":   true,
		"total":        true,
		"status":       true,
		"order_number": true,
	}
	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}
	return fmt.Sprintf("%s %s", sortBy, sortOrder)
}
