// internal/domain/order/stats.go
package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
)

// DashboardStats represents the sales dashboard for admins and salespeople
type DashboardStats struct {
	// Revenue, counting only delivered orders
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	RevenueToday     decimal.Decimal `json:"revenue_today"`
	RevenueThisWeek  decimal.Decimal `json:"revenue_this_week"`
	RevenueThisMonth decimal.Decimal `json:"revenue_this_month"`
	RevenueGrowth    float64         `json:"revenue_growth"` // vs last month, percentage

	// Order metrics
	TotalOrders     int64        `json:"total_orders"`
	OrdersToday     int64        `json:"orders_today"`
	OrdersThisMonth int64        `json:"orders_this_month"`
	OrdersByStatus  []StatusData `json:"orders_by_status"`
	AvgOrderValue   decimal.Decimal `json:"avg_order_value"`

	// Client metrics
	TotalClients      int64 `json:"total_clients"`
	ActiveClients     int64 `json:"active_clients"` // placed an order this month
	NewClientsThisMonth int64 `json:"new_clients_this_month"`

	// Catalog metrics
	TotalProducts      int64 `json:"total_products"`
	ActiveProducts     int64 `json:"active_products"`
	OutOfStockProducts int64 `json:"out_of_stock_products"`
	LowStockProducts   int64 `json:"low_stock_products"`
	ActivePromotions   int64 `json:"active_promotions"`

	TopProducts []ProductSalesData `json:"top_products"`
	TopClients  []ClientSalesData  `json:"top_clients"`
}

// StatusData is an order count and value per lifecycle state
type StatusData struct {
	Status Status          `json:"estado"`
	Count  int64           `json:"count"`
	Value  decimal.Decimal `json:"value"`
}

// ProductSalesData is an aggregate of sales per product
type ProductSalesData struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductCode string          `json:"product_code"`
	TotalSold   int64           `json:"total_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ClientSalesData is an aggregate of orders per client
type ClientSalesData struct {
	ClientID   uint            `json:"client_id"`
	ClientName string          `json:"client_name"`
	Email      string          `json:"email"`
	OrderCount int64           `json:"order_count"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// GetDashboardStats builds the sales dashboard. Restricted to admins and
// salespeople.
func (s *Service) GetDashboardStats(actor Actor) (*DashboardStats, error) {
	if actor.Role != user.RoleAdmin && actor.Role != user.RoleSalesperson {
		return nil, fmt.Errorf("%w: %s cannot view statistics", ErrRoleNotAllowed, actor.Role)
	}

	stats := &DashboardStats{
		TotalRevenue:     decimal.Zero,
		RevenueToday:     decimal.Zero,
		RevenueThisWeek:  decimal.Zero,
		RevenueThisMonth: decimal.Zero,
		AvgOrderValue:    decimal.Zero,
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	thisWeek := today.AddDate(0, 0, -int(today.Weekday()))
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastMonth := thisMonth.AddDate(0, -1, 0)

	// Revenue counts delivered orders only
	s.db.Raw("SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ? AND deleted_at IS NULL", StatusDelivered).Scan(&stats.TotalRevenue)
	s.db.Raw("SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ? AND deleted_at IS NULL AND created_at >= ?", StatusDelivered, today).Scan(&stats.RevenueToday)
	s.db.Raw("SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ? AND deleted_at IS NULL AND created_at >= ?", StatusDelivered, thisWeek).Scan(&stats.RevenueThisWeek)
	s.db.Raw("SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ? AND deleted_at IS NULL AND created_at >= ?", StatusDelivered, thisMonth).Scan(&stats.RevenueThisMonth)

	var lastMonthRevenue decimal.Decimal
	s.db.Raw("SELECT COALESCE(SUM(total), 0) FROM orders WHERE status = ? AND deleted_at IS NULL AND created_at >= ? AND created_at < ?",
		StatusDelivered, lastMonth, thisMonth).Scan(&lastMonthRevenue)
	if lastMonthRevenue.Sign() > 0 {
		growth, _ := stats.RevenueThisMonth.Sub(lastMonthRevenue).Div(lastMonthRevenue).Mul(decimal.NewFromInt(100)).Float64()
		stats.RevenueGrowth = growth
	}

	// Order metrics
	s.db.Raw("SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL").Scan(&stats.TotalOrders)
	s.db.Raw("SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL AND created_at >= ?", today).Scan(&stats.OrdersToday)
	s.db.Raw("SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL AND created_at >= ?", thisMonth).Scan(&stats.OrdersThisMonth)

	var deliveredCount int64
	s.db.Raw("SELECT COUNT(*) FROM orders WHERE status = ? AND deleted_at IS NULL", StatusDelivered).Scan(&deliveredCount)
	if deliveredCount > 0 {
		stats.AvgOrderValue = stats.TotalRevenue.Div(decimal.NewFromInt(deliveredCount)).Round(2)
	}

	s.db.Raw(`
		SELECT status, COUNT(*) as count, COALESCE(SUM(total), 0) as value
		FROM orders WHERE deleted_at IS NULL
		GROUP BY status ORDER BY count DESC
	`).Scan(&stats.OrdersByStatus)

	// Client metrics
	s.db.Raw("SELECT COUNT(*) FROM users WHERE role = ? AND deleted_at IS NULL", user.RoleClient).Scan(&stats.TotalClients)
	s.db.Raw("SELECT COUNT(DISTINCT client_id) FROM orders WHERE deleted_at IS NULL AND created_at >= ?", thisMonth).Scan(&stats.ActiveClients)
	s.db.Raw("SELECT COUNT(*) FROM users WHERE role = ? AND deleted_at IS NULL AND created_at >= ?", user.RoleClient, thisMonth).Scan(&stats.NewClientsThisMonth)

	// Catalog metrics
	s.db.Raw("SELECT COUNT(*) FROM products WHERE deleted_at IS NULL").Scan(&stats.TotalProducts)
	s.db.Raw("SELECT COUNT(*) FROM products WHERE is_active = true AND deleted_at IS NULL").Scan(&stats.ActiveProducts)
	s.db.Raw("SELECT COUNT(*) FROM products WHERE stock <= 0 AND deleted_at IS NULL").Scan(&stats.OutOfStockProducts)
	s.db.Raw("SELECT COUNT(*) FROM products WHERE stock > 0 AND stock <= min_stock AND deleted_at IS NULL").Scan(&stats.LowStockProducts)
	s.db.Raw("SELECT COUNT(*) FROM promotions WHERE is_active = true AND deleted_at IS NULL").Scan(&stats.ActivePromotions)

	s.db.Raw(`
		SELECT oi.product_id, oi.product_name, oi.product_code,
		       SUM(oi.quantity) as total_sold,
		       COALESCE(SUM(oi.total_price), 0) as revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status != ? AND o.deleted_at IS NULL
		GROUP BY oi.product_id, oi.product_name, oi.product_code
		ORDER BY total_sold DESC
		LIMIT 10
	`, StatusRejected).Scan(&stats.TopProducts)

	s.db.Raw(`
		SELECT u.id as client_id,
		       CONCAT(u.first_name, ' ', u.last_name) as client_name,
		       u.email,
		       COUNT(o.id) as order_count,
		       COALESCE(SUM(o.total), 0) as total_spent
		FROM users u
		JOIN orders o ON o.client_id = u.id
		WHERE o.status != ? AND o.deleted_at IS NULL
		GROUP BY u.id, u.first_name, u.last_name, u.email
		ORDER BY total_spent DESC
		LIMIT 10
	`, StatusRejected).Scan(&stats.TopClients)

	return stats, nil
}
