// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/distribuidora-backend/internal/config"
	"github.com/your-org/distribuidora-backend/internal/domain/user"
	"github.com/your-org/distribuidora-backend/internal/interfaces/http/handlers"
	"github.com/your-org/distribuidora-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires every API route group onto the router
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db, cfg)
	priceListHandler := handlers.NewPriceListHandler(db, cfg)
	promotionHandler := handlers.NewPromotionHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)
	orderHandler := handlers.NewOrderHandler(db, redisClient, cfg)
	stockHandler := handlers.NewStockHandler(db, cfg)
	adminUserHandler := handlers.NewAdminUserHandler(db, cfg)

	// Authentication
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/logout", authHandler.Logout)

		authProtected := auth.Group("")
		authProtected.Use(middleware.AuthMiddleware(cfg))
		{
			authProtected.GET("/profile", authHandler.GetProfile)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
			authProtected.POST("/change-password", authHandler.ChangePassword)
		}
	}

	// Public catalog
	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	categories := rg.Group("/categories")
	{
		categories.GET("", categoryHandler.GetCategories)
		categories.GET("/:id", categoryHandler.GetCategory)
	}

	promotions := rg.Group("/promotions")
	{
		promotions.GET("", promotionHandler.GetPromotions)
		promotions.GET("/:id", promotionHandler.GetPromotion)
	}

	// Catalog management (admin and salespeople)
	staff := rg.Group("")
	staff.Use(middleware.AuthMiddleware(cfg), middleware.StaffMiddleware())
	{
		staff.POST("/products", productHandler.CreateProduct)
		staff.PUT("/products/:id", productHandler.UpdateProduct)
		staff.DELETE("/products/:id", productHandler.DeleteProduct)
		staff.GET("/products-low-stock", productHandler.GetLowStockProducts)
		staff.GET("/products-out-of-stock", productHandler.GetOutOfStockProducts)

		staff.POST("/categories", categoryHandler.CreateCategory)
		staff.PUT("/categories/:id", categoryHandler.UpdateCategory)
		staff.DELETE("/categories/:id", categoryHandler.DeleteCategory)
		staff.POST("/categories/subcategories", categoryHandler.CreateSubcategory)
		staff.PUT("/categories/subcategories/:id", categoryHandler.UpdateSubcategory)
		staff.DELETE("/categories/subcategories/:id", categoryHandler.DeleteSubcategory)

		staff.POST("/promotions", promotionHandler.CreatePromotion)
		staff.PUT("/promotions/:id", promotionHandler.UpdatePromotion)
		staff.DELETE("/promotions/:id", promotionHandler.DeletePromotion)

		staff.GET("/stock/movements", stockHandler.GetMovements)
		staff.POST("/stock/adjustments", stockHandler.AdjustStock)

		staff.GET("/price-lists", priceListHandler.GetPriceLists)
		staff.GET("/price-lists/:id", priceListHandler.GetPriceList)
		staff.POST("/price-lists", priceListHandler.CreatePriceList)
		staff.PUT("/price-lists/:id", priceListHandler.UpdatePriceList)
	}

	// Price list deletion is destructive and admin only
	adminPricing := rg.Group("/price-lists")
	adminPricing.Use(middleware.AuthMiddleware(cfg), middleware.AdminMiddleware())
	{
		adminPricing.DELETE("/:id", priceListHandler.DeletePriceList)
	}

	// Shopping cart (clients)
	cart := rg.Group("/cart")
	cart.Use(middleware.AuthMiddleware(cfg), middleware.RequireRoles(user.RoleClient))
	{
		cart.GET("", cartHandler.GetCart)
		cart.DELETE("", cartHandler.ClearCart)
		cart.GET("/count", cartHandler.GetCartItemCount)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:kind/:id", cartHandler.UpdateItem)
		cart.DELETE("/items/:kind/:id", cartHandler.RemoveItem)
	}

	// Orders: creation is for clients, the rest role-scopes internally
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.POST("", middleware.RequireRoles(user.RoleClient), orderHandler.CreateOrder)
		orders.POST("/checkout", middleware.RequireRoles(user.RoleClient), orderHandler.Checkout)
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
		orders.GET("/:id/receipt", orderHandler.DownloadReceipt)
		orders.PUT("/:id/deliverer", middleware.StaffMiddleware(), orderHandler.AssignDeliverer)
	}

	// Administration
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		adminOnly := admin.Group("")
		adminOnly.Use(middleware.AdminMiddleware())
		{
			adminOnly.GET("/users", adminUserHandler.GetUsers)
			adminOnly.GET("/users/export", adminUserHandler.ExportUsers)
			adminOnly.GET("/users/:id", adminUserHandler.GetUser)
			adminOnly.POST("/users", adminUserHandler.CreateUser)
			adminOnly.PUT("/users/:id", adminUserHandler.UpdateUser)
			adminOnly.PUT("/users/:id/price-list", adminUserHandler.AssignPriceList)
		}

		adminStaff := admin.Group("")
		adminStaff.Use(middleware.StaffMiddleware())
		{
			adminStaff.GET("/deliverers", adminUserHandler.GetDeliverers)
			adminStaff.GET("/stats", orderHandler.GetDashboardStats)
		}
	}
}
