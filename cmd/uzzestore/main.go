package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/henriquedps/uzzestore/internal/api/handlers"
	"github.com/henriquedps/uzzestore/internal/api/middleware"
	"github.com/henriquedps/uzzestore/internal/cache"
	"github.com/henriquedps/uzzestore/internal/config"
	"github.com/henriquedps/uzzestore/internal/health"
	"github.com/henriquedps/uzzestore/internal/metrics"
	repository "github.com/henriquedps/uzzestore/internal/repositories"
	service "github.com/henriquedps/uzzestore/internal/services"
	"github.com/henriquedps/uzzestore/internal/utils"
	"github.com/henriquedps/uzzestore/pkg/email"
	"github.com/henriquedps/uzzestore/pkg/whatsapp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	cartRepo := repository.NewCartRepo(redisClient, cfg.Cart.TTL)
	settingsCache := cache.NewRedisCache(redisClient, &cfg.CacheConfig)

	var emailService email.Service
	if cfg.SendGrid.APIKey != "" {
		emailService = email.NewService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}

	validate := utils.NewValidator()
	links := whatsapp.NewLinkBuilder(cfg.WhatsApp.Host, cfg.WhatsApp.CountryPrefix)

	settingsService := service.NewSettingsService(repos.Settings, settingsCache, cfg)
	productService := service.NewProductService(repos.Product, settingsCache)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(cartRepo, repos.Product)
	cartHandler := handlers.NewCartHandler(cartService, validate)
	checkoutService := service.NewCheckoutService(cartRepo, repos.Product, repos.Order)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, validate)
	orderService := service.NewOrderService(repos.Order)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentService := service.NewPaymentService(repos.Order, settingsService, service.NewSimulatedGateway())
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	notificationService := service.NewNotificationService(repos.Order, settingsService, links, emailService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	sessionMiddleware := middleware.NewSessionMiddleware(cfg)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/cart", sessionMiddleware.WithSession(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", sessionMiddleware.WithSession(cartHandler.AddItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/items", sessionMiddleware.WithSession(cartHandler.AdjustQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items", sessionMiddleware.WithSession(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", sessionMiddleware.WithSession(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/checkout", sessionMiddleware.WithSession(checkoutHandler.PlaceOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", sessionMiddleware.WithSession(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", sessionMiddleware.WithSession(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}/pix", sessionMiddleware.WithSession(paymentHandler.GetPaymentCode()))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/payment-check", sessionMiddleware.WithSession(paymentHandler.CheckPayment()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}/confirmation", sessionMiddleware.WithSession(notificationHandler.GetConfirmation()))
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}
}
