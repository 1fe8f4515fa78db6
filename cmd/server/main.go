package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"piccante-system/config"
	"piccante-system/internal/auth"
	"piccante-system/internal/checkout"
	"piccante-system/internal/database"
	"piccante-system/internal/menu"
	"piccante-system/internal/orders"
	"piccante-system/internal/server/handlers"
	"piccante-system/internal/server/middleware"
)

func main() {
	cfg := config.LoadConfig()

	redisClient := config.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	db, err := database.NewConnection(cfg.DB.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.MigrateOrderDB(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// The weekday specials make the catalog day-dependent; the provider
	// rebuilds it when the date changes.
	catalog := menu.NewProvider()
	authService := auth.NewService(cfg.Auth, redisClient)
	orderRepo := orders.NewRepository(db)
	notifier := checkout.NewNotifier(cfg.Notify.EmailWebhookURL, redisClient)

	menuHandler := handlers.NewMenuHandler(catalog, redisClient)
	cartHandler := handlers.NewCartHandler(catalog, redisClient)
	checkoutHandler := handlers.NewCheckoutHandler(redisClient, notifier, orderRepo, cfg.Notify.WhatsAppPhone)
	adminHandler := handlers.NewAdminHandler(authService, orderRepo)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit())

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		public.GET("/menu", menuHandler.GetMenu)
		public.GET("/menu/zones", menuHandler.GetZones)
		public.GET("/menu/hours", menuHandler.GetHours)

		cart := public.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.DELETE("/items", cartHandler.RemoveItem)
			cart.PUT("/items/quantity", cartHandler.UpdateQuantity)
		}

		public.POST("/checkout", checkoutHandler.Checkout)
		public.POST("/admin/login", adminHandler.Login)
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1/admin")
	protected.Use(middleware.JWTAuth(authService))
	{
		protected.GET("/orders", adminHandler.ListOrders)
	}

	log.Printf("Storefront listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
