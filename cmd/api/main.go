package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-teknostore-api/internal/handler"
	"go-teknostore-api/internal/middleware"
	"go-teknostore-api/internal/model"
	"go-teknostore-api/internal/repository"
	"go-teknostore-api/internal/service"
	"go-teknostore-api/internal/ws"
	"go-teknostore-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.RepairRequest{},
		&model.RepairRequestImage{},
		&model.Order{},
		&model.OrderItem{},
		&model.BlogPost{},
		&model.Campaign{},
		&model.NewsletterSubscriber{},
		&model.ContactMessage{},
		&model.PageView{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket hub for the admin notification feed
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	repairRepo := repository.NewRepairRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	blogRepo := repository.NewBlogRepo(db)
	campaignRepo := repository.NewCampaignRepo(db)
	newsletterRepo := repository.NewNewsletterRepo(db)
	contactRepo := repository.NewContactRepo(db)
	analyticsRepo := repository.NewAnalyticsRepo(db)
	userRepo := repository.NewUserRepo(db)

	catalogService := service.NewCatalogService(categoryRepo, productRepo)
	repairService := service.NewRepairService(repairRepo, categoryRepo, wsHub)
	orderService := service.NewOrderService(orderRepo, productRepo, wsHub)
	contentService := service.NewContentService(blogRepo, campaignRepo)
	engageService := service.NewEngageService(newsletterRepo, contactRepo)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	authService := service.NewAuthService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	repairHandler := handler.NewRepairHandler(repairService)
	orderHandler := handler.NewOrderHandler(orderService)
	contentHandler := handler.NewContentHandler(contentService)
	engageHandler := handler.NewEngageHandler(engageService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "TeknoStore API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Catalog (storefront)
	api.Get("/categories/tree", catalogHandler.GetCategoryTree)
	api.Get("/categories", catalogHandler.GetCategories)
	api.Get("/categories/:id/product-count", catalogHandler.GetCategoryProductCount)
	api.Get("/categories/slug/:slug", catalogHandler.GetCategoryBySlug)
	api.Get("/categories/slug/:slug/products", catalogHandler.GetProductsByCategory)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:slug", catalogHandler.GetProductBySlug)

	// Repairs (customer-facing)
	api.Post("/repairs", repairHandler.CreateRequest)
	api.Get("/repairs/track/:tracking", repairHandler.TrackRequest)
	api.Post("/repairs/track/:tracking/approval", repairHandler.SetApproval)

	// Orders (customer-facing)
	api.Post("/checkout", orderHandler.Checkout)
	api.Get("/orders/track/:number", orderHandler.TrackOrder)

	// Content (storefront)
	api.Get("/blog", contentHandler.GetPublishedPosts)
	api.Get("/blog/:slug", contentHandler.GetPostBySlug)
	api.Get("/campaigns", contentHandler.GetRunningCampaigns)

	// Engagement
	api.Post("/newsletter/subscribe", engageHandler.Subscribe)
	api.Post("/newsletter/unsubscribe", engageHandler.Unsubscribe)
	api.Post("/contact", engageHandler.SubmitContactMessage)

	// Analytics beacon
	api.Post("/analytics/pageview", analyticsHandler.RecordPageView)

	// ============ ADMIN ROUTES ============
	admin := api.Group("/admin", middleware.RequireAuth(userRepo), middleware.RequireRole(model.RoleAdmin))

	admin.Get("/dashboard/stats", analyticsHandler.GetDashboardStats)
	admin.Get("/dashboard/views", analyticsHandler.GetDailyViews)

	admin.Post("/categories", catalogHandler.CreateCategory)
	admin.Put("/categories/:id", catalogHandler.UpdateCategory)
	admin.Delete("/categories/:id", catalogHandler.DeleteCategory)

	admin.Post("/products", catalogHandler.CreateProduct)
	admin.Put("/products/:id", catalogHandler.UpdateProduct)
	admin.Delete("/products/:id", catalogHandler.DeleteProduct)

	admin.Get("/repairs", repairHandler.GetRequests)
	admin.Get("/repairs/:id", repairHandler.GetRequest)
	admin.Post("/repairs", repairHandler.CreateRequest)
	admin.Post("/repairs/:id/quote", repairHandler.QuotePrice)
	admin.Put("/repairs/:id/status", repairHandler.UpdateStatus)
	admin.Delete("/repairs/:id", repairHandler.DeleteRequest)
	admin.Delete("/repairs/:id/images/:imageId", repairHandler.DeleteImage)

	admin.Get("/orders", orderHandler.GetOrders)
	admin.Get("/orders/:id", orderHandler.GetOrder)
	admin.Put("/orders/:id/status", orderHandler.UpdateStatus)

	admin.Get("/blog", contentHandler.GetAllPosts)
	admin.Post("/blog", contentHandler.CreatePost)
	admin.Put("/blog/:id", contentHandler.UpdatePost)
	admin.Delete("/blog/:id", contentHandler.DeletePost)

	admin.Get("/campaigns", contentHandler.GetAllCampaigns)
	admin.Post("/campaigns", contentHandler.CreateCampaign)
	admin.Put("/campaigns/:id", contentHandler.UpdateCampaign)
	admin.Delete("/campaigns/:id", contentHandler.DeleteCampaign)

	admin.Get("/newsletter", engageHandler.GetSubscribers)
	admin.Get("/messages", engageHandler.GetContactMessages)
	admin.Put("/messages/:id/read", engageHandler.MarkMessageRead)
	admin.Delete("/messages/:id", engageHandler.DeleteContactMessage)

	// WebSocket route for the admin notification feed
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@teknostore.local"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Store Administrator",
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Printf("Admin user created: %s", email)
	}
}
