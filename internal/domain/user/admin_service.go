// internal/domain/user/admin_service.go
package user

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// AdminService handles admin user management operations
type AdminService struct {
	db              *gorm.DB
	config          *config.Config
	passwordManager *auth.PasswordManager
}

// NewAdminService creates a new admin user service
func NewAdminService(db *gorm.DB, cfg *config.Config) *AdminService {
	return &AdminService{
		db:              db,
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
	}
}

// UserListRequest represents user list query parameters
type UserListRequest struct {
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=20"`
	Search    string `form:"search"`
	Status    string `form:"status"` // active, inactive, all
	Role      string `form:"role"`   // admin, vendedor, cliente, transportador, all
	SortBy    string `form:"sort_by,default=created_at"`
	SortOrder string `form:"sort_order,default=desc"`
	DateFrom  string `form:"date_from"`
	DateTo    string `form:"date_to"`
}

// UserListResponse represents user list with pagination
type UserListResponse struct {
	Users      []UserWithStats `json:"users"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// UserWithStats represents user with order statistics
type UserWithStats struct {
	User
	OrderCount  int64           `json:"order_count"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	LastOrderAt *time.Time      `json:"last_order_at"`
}

// UserCreateRequest represents admin-side user creation data
type UserCreateRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	Role        Role   `json:"role" binding:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	PriceListID *uint  `json:"price_list_id"`
}

// UserUpdateRequest represents admin-side user update data
type UserUpdateRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Role      *Role   `json:"role"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	IsActive  *bool   `json:"is_active"`
	Password  *string `json:"password"`
}

// PriceListAssignRequest represents a price list assignment for a client.
// A nil PriceListID resets the client to the base list.
type PriceListAssignRequest struct {
	PriceListID *uint `json:"price_list_id"`
}

// UserExportRequest represents user export parameters
type UserExportRequest struct {
	Format       string `form:"format,default=csv"` // csv, json
	Status       string `form:"status"`
	Role         string `form:"role"`
	DateFrom     string `form:"date_from"`
	DateTo       string `form:"date_to"`
	IncludeStats bool   `form:"include_stats,default=false"`
}

// GetUsers retrieves users with filtering and pagination
func (s *AdminService) GetUsers(req *UserListRequest) (*UserListResponse, error) {
	var users []User
	var total int64

	query := s.db.Model(&User{}).Preload("PriceList")
	query = s.applyFilters(query, req.Search, req.Status, req.Role, req.DateFrom, req.DateTo)

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	orderClause := req.SortBy
	if req.SortOrder == "desc" {
		orderClause += " DESC"
	} else {
		orderClause += " ASC"
	}
	query = query.Order(orderClause)

	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}

	var usersWithStats []UserWithStats
	for _, u := range users {
		stats := s.getUserStats(u.ID)
		stats.User = u
		stats.User.Password = ""
		usersWithStats = append(usersWithStats, *stats)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))

	return &UserListResponse{
		Users:      usersWithStats,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}, nil
}

// GetUser retrieves a single user by ID with stats
func (s *AdminService) GetUser(userID uint) (*UserWithStats, error) {
	var u User
	if err := s.db.Preload("PriceList").First(&u, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}

	stats := s.getUserStats(userID)
	stats.User = u
	stats.User.Password = ""

	return stats, nil
}

// GetDeliverers lists active deliverer accounts, for order assignment pickers
func (s *AdminService) GetDeliverers() ([]User, error) {
	var deliverers []User
	err := s.db.Where("role = ? AND is_active = ?", RoleDeliverer, true).
		Order("first_name ASC, last_name ASC").
		Find(&deliverers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve deliverers: %w", err)
	}
	for i := range deliverers {
		deliverers[i].Password = ""
	}
	return deliverers, nil
}

// CreateUser creates a user with an explicit role
func (s *AdminService) CreateUser(req *UserCreateRequest) (*User, error) {
	if !req.Role.Valid() {
		return nil, fmt.Errorf("invalid role: %s", req.Role)
	}

	var existing User
	if err := s.db.Where("email = ?", strings.ToLower(req.Email)).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("user with this email already exists")
	}

	if req.PriceListID != nil {
		if req.Role != RoleClient {
			return nil, fmt.Errorf("only clients can have a price list assigned")
		}
		if err := s.priceListExists(*req.PriceListID); err != nil {
			return nil, err
		}
	}

	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := User{
		Email:       req.Email,
		Password:    hashedPassword,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		Phone:       req.Phone,
		Address:     req.Address,
		PriceListID: req.PriceListID,
		IsActive:    true,
	}

	if err := s.db.Create(&u).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	u.Password = ""
	return &u, nil
}

// UpdateUser updates a user's details, role or status
func (s *AdminService) UpdateUser(userID uint, req *UserUpdateRequest, adminID uint) (*User, error) {
	var u User
	if err := s.db.First(&u, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}

	updates := make(map[string]interface{})

	if req.Role != nil && *req.Role != u.Role {
		if !req.Role.Valid() {
			return nil, fmt.Errorf("invalid role: %s", *req.Role)
		}
		if userID == adminID && *req.Role != RoleAdmin {
			return nil, fmt.Errorf("cannot remove your own admin privileges")
		}
		if u.Role == RoleAdmin && *req.Role != RoleAdmin {
			if err := s.ensureAnotherAdmin(userID); err != nil {
				return nil, err
			}
		}
		updates["role"] = *req.Role
		// Price lists only apply to clients
		if *req.Role != RoleClient {
			updates["price_list_id"] = nil
		}
	}

	if req.IsActive != nil && *req.IsActive != u.IsActive {
		if userID == adminID && !*req.IsActive {
			return nil, fmt.Errorf("cannot deactivate your own account")
		}
		updates["is_active"] = *req.IsActive
	}

	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Password != nil {
		hashed, err := s.passwordManager.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		updates["password"] = hashed
	}

	if len(updates) > 0 {
		updates["updated_at"] = time.Now()
		if err := s.db.Model(&u).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	if err := s.db.Preload("PriceList").First(&u, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	u.Password = ""
	return &u, nil
}

// AssignPriceList assigns or clears a client's price list
func (s *AdminService) AssignPriceList(userID uint, req *PriceListAssignRequest) (*User, error) {
	var u User
	if err := s.db.First(&u, userID).Error; err != nil {
		return nil, fmt.Errorf("user not found")
	}

	if !u.IsClient() {
		return nil, fmt.Errorf("only clients can have a price list assigned")
	}

	if req.PriceListID != nil {
		if err := s.priceListExists(*req.PriceListID); err != nil {
			return nil, err
		}
	}

	if err := s.db.Model(&u).Update("price_list_id", req.PriceListID).Error; err != nil {
		return nil, fmt.Errorf("failed to assign price list: %w", err)
	}

	if err := s.db.Preload("PriceList").First(&u, userID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	u.Password = ""
	return &u, nil
}

// ExportUsers exports users data
func (s *AdminService) ExportUsers(req *UserExportRequest) ([]byte, string, error) {
	query := s.db.Model(&User{})
	query = s.applyFilters(query, "", req.Status, req.Role, req.DateFrom, req.DateTo)

	var users []User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, "", fmt.Errorf("failed to retrieve users for export: %w", err)
	}

	switch req.Format {
	case "csv":
		return s.generateCSVExport(users, req.IncludeStats)
	case "json":
		return s.generateJSONExport(users, req.IncludeStats)
	default:
		return nil, "", fmt.Errorf("unsupported export format: %s", req.Format)
	}
}

func (s *AdminService) applyFilters(query *gorm.DB, search, status, role, dateFrom, dateTo string) *gorm.DB {
	if search != "" {
		searchTerm := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(email) LIKE ? OR LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR phone LIKE ?",
			searchTerm, searchTerm, searchTerm, "%"+search+"%",
		)
	}

	if status != "" && status != "all" {
		if status == "active" {
			query = query.Where("is_active = ?", true)
		} else if status == "inactive" {
			query = query.Where("is_active = ?", false)
		}
	}

	if role != "" && role != "all" {
		query = query.Where("role = ?", role)
	}

	if dateFrom != "" {
		if from, err := time.Parse("2006-01-02", dateFrom); err == nil {
			query = query.Where("created_at >= ?", from)
		}
	}

	if dateTo != "" {
		if to, err := time.Parse("2006-01-02", dateTo); err == nil {
			query = query.Where("created_at <= ?", to.Add(24*time.Hour-time.Second))
		}
	}

	return query
}

func (s *AdminService) ensureAnotherAdmin(excludeID uint) error {
	var adminCount int64
	s.db.Model(&User{}).Where("role = ? AND id != ?", RoleAdmin, excludeID).Count(&adminCount)
	if adminCount == 0 {
		return fmt.Errorf("cannot remove admin privileges: at least one admin must remain")
	}
	return nil
}

func (s *AdminService) priceListExists(id uint) error {
	var count int64
	s.db.Table("price_lists").Where("id = ? AND deleted_at IS NULL AND is_active = ?", id, true).Count(&count)
	if count == 0 {
		return fmt.Errorf("price list not found or inactive")
	}
	return nil
}

// getUserStats gets order statistics for a client
func (s *AdminService) getUserStats(userID uint) *UserWithStats {
	stats := &UserWithStats{TotalSpent: decimal.Zero}

	type orderStats struct {
		OrderCount  int64
		TotalSpent  decimal.Decimal
		LastOrderAt *time.Time
	}

	var os orderStats
	err := s.db.Raw(`
		SELECT
			COUNT(*) as order_count,
			COALESCE(SUM(total), 0) as total_spent,
			MAX(created_at) as last_order_at
		FROM orders
		WHERE client_id = ? AND status != 'RECHAZADO'
	`, userID).Scan(&os).Error
	if err != nil {
		return stats
	}

	stats.OrderCount = os.OrderCount
	stats.TotalSpent = os.TotalSpent
	stats.LastOrderAt = os.LastOrderAt
	return stats
}

// generateCSVExport generates CSV export
func (s *AdminService) generateCSVExport(users []User, includeStats bool) ([]byte, string, error) {
	var records [][]string

	headers := []string{
		"ID", "Email", "First Name", "Last Name", "Role", "Phone",
		"Is Active", "Created At", "Last Login",
	}
	if includeStats {
		headers = append(headers, "Order Count", "Total Spent", "Last Order")
	}
	records = append(records, headers)

	for _, u := range users {
		record := []string{
			strconv.Itoa(int(u.ID)),
			u.Email,
			u.FirstName,
			u.LastName,
			string(u.Role),
			u.Phone,
			strconv.FormatBool(u.IsActive),
			u.CreatedAt.Format("2006-01-02 15:04:05"),
		}

		if u.LastLoginAt != nil {
			record = append(record, u.LastLoginAt.Format("2006-01-02 15:04:05"))
		} else {
			record = append(record, "Never")
		}

		if includeStats {
			stats := s.getUserStats(u.ID)
			record = append(record,
				strconv.FormatInt(stats.OrderCount, 10),
				stats.TotalSpent.StringFixed(2),
			)
			if stats.LastOrderAt != nil {
				record = append(record, stats.LastOrderAt.Format("2006-01-02 15:04:05"))
			} else {
				record = append(record, "Never")
			}
		}

		records = append(records, record)
	}

	var csvData strings.Builder
	writer := csv.NewWriter(&csvData)
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return nil, "", fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, "", fmt.Errorf("failed to write CSV: %w", err)
	}

	filename := fmt.Sprintf("users_export_%s.csv", time.Now().Format("2006-01-02_15-04-05"))
	return []byte(csvData.String()), filename, nil
}

// generateJSONExport generates JSON export
func (s *AdminService) generateJSONExport(users []User, includeStats bool) ([]byte, string, error) {
	var exportData []interface{}

	for _, u := range users {
		u.Password = ""

		userData := map[string]interface{}{
			"id":            u.ID,
			"email":         u.Email,
			"first_name":    u.FirstName,
			"last_name":     u.LastName,
			"role":          u.Role,
			"phone":         u.Phone,
			"is_active":     u.IsActive,
			"price_list_id": u.PriceListID,
			"created_at":    u.CreatedAt,
			"last_login_at": u.LastLoginAt,
		}

		if includeStats {
			stats := s.getUserStats(u.ID)
			userData["order_count"] = stats.OrderCount
			userData["total_spent"] = stats.TotalSpent
			userData["last_order_at"] = stats.LastOrderAt
		}

		exportData = append(exportData, userData)
	}

	jsonData, err := json.MarshalIndent(map[string]interface{}{
		"exported_at": time.Now(),
		"total_users": len(users),
		"users":       exportData,
	}, "", "  ")
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate JSON: %w", err)
	}

	filename := fmt.Sprintf("users_export_%s.json", time.Now().Format("2006-01-02_15-04-05"))
	return jsonData, filename, nil
}
