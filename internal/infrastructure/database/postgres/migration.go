// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/your-org/distribuidora-backend/internal/domain/order"
	"github.com/your-org/distribuidora-backend/internal/domain/pricing"
	"github.com/your-org/distribuidora-backend/internal/domain/product"
	"github.com/your-org/distribuidora-backend/internal/domain/promotion"
	"github.com/your-org/distribuidora-backend/internal/domain/stock"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Dependency order: price lists before users, products before
	// promotions, everything before orders
	models := []interface{}{
		&pricing.PriceList{},
		&user.User{},

		&product.Category{},
		&product.Subcategory{},
		&product.Product{},

		&promotion.Promotion{},
		&promotion.PromotionItem{},

		&order.Order{},
		&order.OrderItem{},
		&order.OrderStatusHistory{},

		&stock.Movement{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email_active ON users(email, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_users_role_active ON users(role, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_users_price_list ON users(price_list_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at DESC)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_subcategory ON products(subcategory_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_code ON products(code)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Price list indexes
		"CREATE INDEX IF NOT EXISTS idx_price_lists_active ON price_lists(is_active)",

		// Promotion indexes
		"CREATE INDEX IF NOT EXISTS idx_promotions_active ON promotions(is_active)",
		"CREATE INDEX IF NOT EXISTS idx_promotions_window ON promotions(starts_at, ends_at)",
		"CREATE INDEX IF NOT EXISTS idx_promotion_items_promotion ON promotion_items(promotion_id)",
		"CREATE INDEX IF NOT EXISTS idx_promotion_items_product ON promotion_items(product_id)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_client_status ON orders(client_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_deliverer ON orders(deliverer_id)",
		"CREATE INDEX IF NOT EXISTS idx_orders_order_number ON orders(order_number)",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC)",

		// Order items indexes
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_promotion ON order_items(promotion_id)",

		// Order status history indexes
		"CREATE INDEX IF NOT EXISTS idx_order_status_history_order ON order_status_history(order_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_order_status_history_created_by ON order_status_history(created_by)",

		// Stock ledger indexes
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_product ON stock_movements(product_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_reference ON stock_movements(reference_type, reference_id)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedBasePriceList(); err != nil {
		return fmt.Errorf("failed to seed base price list: %w", err)
	}

	if err := m.seedAdminUser(); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	if err := m.seedCategories(); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedBasePriceList guarantees the protected base list exists. Clients
// without an assigned list resolve against it at zero discount.
func (m *Migration) seedBasePriceList() error {
	log.Println("🏷️ Seeding base price list...")

	var existing pricing.PriceList
	result := m.db.Where("code = ?", pricing.BaseListCode).First(&existing)
	if result.Error == nil {
		log.Printf("⏭️ Base price list already exists with ID: %d", existing.ID)
		return nil
	}

	base := pricing.PriceList{
		Code:            pricing.BaseListCode,
		Name:            "Lista Base",
		Description:     "Precios de lista sin descuento",
		DiscountPercent: decimal.Zero,
		IsActive:        true,
	}

	if err := m.db.Create(&base).Error; err != nil {
		return fmt.Errorf("failed to create base price list: %w", err)
	}

	log.Printf("✅ Created base price list with ID: %d", base.ID)
	return nil
}

func (m *Migration) seedAdminUser() error {
	log.Println("👤 Seeding admin user...")

	var existing user.User
	result := m.db.Where("role = ?", user.RoleAdmin).First(&existing)
	if result.Error == nil {
		log.Printf("⏭️ Admin user already exists with ID: %d", existing.ID)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin1234"), 10)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	adminUser := user.User{
		Email:     "admin@distribuidora.local",
		Password:  string(hashedPassword),
		FirstName: "Admin",
		LastName:  "Distribuidora",
		Role:      user.RoleAdmin,
		IsActive:  true,
	}

	if err := m.db.Create(&adminUser).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Println("✅ Created admin user: admin@distribuidora.local (password: admin1234)")
	return nil
}

// seedCategories creates the default beverage categories
func (m *Migration) seedCategories() error {
	log.Println("🏷️ Seeding categories...")

	categories := []product.Category{
		{Name: "Gaseosas", Description: "Bebidas gaseosas y refrescos", IsActive: true},
		{Name: "Aguas", Description: "Aguas minerales y saborizadas", IsActive: true},
		{Name: "Cervezas", Description: "Cervezas nacionales e importadas", IsActive: true},
		{Name: "Vinos", Description: "Vinos y espumantes", IsActive: true},
		{Name: "Jugos", Description: "Jugos y bebidas sin alcohol", IsActive: true},
		{Name: "Snacks", Description: "Snacks y acompañamientos", IsActive: true},
	}

	for _, category := range categories {
		var existing product.Category
		result := m.db.Where("name = ?", category.Name).First(&existing)
		if result.Error != nil {
			if err := m.db.Create(&category).Error; err != nil {
				return err
			}
			log.Printf("✅ Created category: %s", category.Name)
		} else {
			log.Printf("⏭️ Category already exists: %s", category.Name)
		}
	}

	return nil
}

// DropAllTables drops all tables (use with extreme caution)
func (m *Migration) DropAllTables() error {
	log.Println("⚠️ WARNING: Dropping all database tables...")

	// Reverse dependency order
	tables := []string{
		"stock_movements",
		"order_status_history",
		"order_items",
		"orders",
		"promotion_items",
		"promotions",
		"products",
		"subcategories",
		"categories",
		"users",
		"price_lists",
	}

	for _, table := range tables {
		if err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Error; err != nil {
			log.Printf("⚠️ Failed to drop table %s: %v", table, err)
		} else {
			log.Printf("🗑️ Dropped table: %s", table)
		}
	}

	log.Println("✅ All tables dropped successfully")
	return nil
}

// GetTableInfo returns information about database tables
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
