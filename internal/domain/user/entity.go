// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"github.com/your-org/distribuidora-backend/internal/domain/pricing"
	"gorm.io/gorm"
)

// Role represents the role a user plays in the distribution workflow
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleSalesperson Role = "vendedor"
	RoleClient      Role = "cliente"
	RoleDeliverer   Role = "transportador"
)

// Valid reports whether the role is one of the four known roles
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSalesperson, RoleClient, RoleDeliverer:
		return true
	}
	return false
}

// User represents the user entity
type User struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Email       string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password    string         `gorm:"not null;size:255" json:"-"`
	FirstName   string         `gorm:"size:100" json:"first_name"`
	LastName    string         `gorm:"size:100" json:"last_name"`
	Role        Role           `gorm:"not null;default:'cliente';size:20;index" json:"role"`
	Phone       string         `gorm:"size:20" json:"phone"`
	Address     string         `gorm:"size:500" json:"address"`
	PriceListID *uint          `gorm:"index" json:"price_list_id"` // nil = base list
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PriceList *pricing.PriceList `gorm:"foreignKey:PriceListID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"price_list,omitempty"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to handle business logic before user creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	u.Email = strings.ToLower(u.Email)
	if u.Role == "" {
		u.Role = RoleClient
	}
	return nil
}

// GetFullName returns the user's full name
func (u *User) GetFullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user holds the administrator role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSalesperson reports whether the user holds the salesperson role
func (u *User) IsSalesperson() bool {
	return u.Role == RoleSalesperson
}

// IsClient reports whether the user holds the client role
func (u *User) IsClient() bool {
	return u.Role == RoleClient
}

// IsDeliverer reports whether the user holds the deliverer role
func (u *User) IsDeliverer() bool {
	return u.Role == RoleDeliverer
}
