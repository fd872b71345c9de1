package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/vitrine-store/vitrine/internal"
	"github.com/vitrine-store/vitrine/internal/catalog"
	"github.com/vitrine-store/vitrine/internal/handler/storefront"
	"github.com/vitrine-store/vitrine/internal/middleware"
	"github.com/vitrine-store/vitrine/internal/notify"
	"github.com/vitrine-store/vitrine/internal/router"
	"github.com/vitrine-store/vitrine/internal/routes"
	"github.com/vitrine-store/vitrine/internal/service"
	"github.com/vitrine-store/vitrine/internal/snapshot"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize cart snapshot store
	logger.Info("Initializing cart snapshot store...", "provider", cfg.Snapshot.Provider)
	store, err := snapshot.NewStore(cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}

	// Initialize services
	cartService := service.NewCartService(ctx, store, logger)

	fetcher := catalog.NewClient(cfg.Catalog.URL)
	productService := service.NewProductService(fetcher, cfg.Catalog.CacheTTL, logger)

	// Initialize notifier: Telegram relay webhook, or a mock when no URL is
	// configured (dev only; NewConfig rejects this in prod)
	var notifier notify.Notifier
	if cfg.Webhook.URL != "" {
		notifier = notify.NewTelegramNotifier(cfg.Webhook.URL)
		logger.Info("Telegram notifier initialized")
	} else {
		notifier = notify.NewMockNotifier()
		logger.Warn("WEBHOOK_URL not set, using mock notifier; orders will not be delivered")
	}

	orderService := service.NewOrderService(cartService, productService, notifier, logger)

	// ==========================================================================
	// Build route dependencies
	// ==========================================================================

	storefrontDeps := routes.StorefrontDeps{
		ProductHandler:  storefront.NewProductHandler(productService, logger),
		CartHandler:     storefront.NewCartHandler(cartService, productService, logger),
		CheckoutHandler: storefront.NewCheckoutHandler(orderService, logger),
	}

	// ==========================================================================
	// Initialize middleware
	// ==========================================================================

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("vitrine")

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.Logger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, storefrontDeps)

	// CORS wraps the whole router so preflight OPTIONS requests are answered
	// for every route
	handler := router.CORS(cfg.CORS.AllowedOrigins)(r)

	// ==========================================================================
	// Start server
	// ==========================================================================

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, handler); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
