package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/storefront-orders/internal/config"
	"github.com/MikeMC777/storefront-orders/internal/logger"
	"github.com/MikeMC777/storefront-orders/internal/metrics"
	"github.com/MikeMC777/storefront-orders/internal/order"
	"github.com/MikeMC777/storefront-orders/internal/product"
	"github.com/MikeMC777/storefront-orders/internal/receipt"
)

// @title       Storefront Order Service
// @version     1.0
// @description Prices storefront orders with provincial sales tax and returns an HTML receipt.
// @BasePath    /
func main() {
	cfg := config.Load()
	logger.InitLogger(cfg.Stage, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()
	log := logger.Log

	ctx := context.Background()
	catalog, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}
	calc, err := newCalculator(cfg, catalog)
	if err != nil {
		log.Fatal("configure pricing", zap.Error(err))
	}
	renderer, err := receipt.New(cfg.ReceiptRenderer, cfg.ReceiptTemplate)
	if err != nil {
		log.Fatal("configure receipt renderer", zap.Error(err))
	}
	log.Info("config",
		zap.String("port", cfg.Port),
		zap.String("stage", cfg.Stage),
		zap.Int("products", catalog.Len()),
		zap.String("renderer", cfg.ReceiptRenderer),
		zap.String("public_dir", cfg.PublicDir),
	)

	if cfg.Stage == logger.ProdStage {
		gin.SetMode(gin.ReleaseMode)
	}
	a := &app{
		catalog:  catalog,
		calc:     calc,
		renderer: renderer,
		metrics:  metrics.NewServerMetrics("orders"),
		log:      log,
	}
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newRouter(a, cfg.PublicDir, cfg.CORSAllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(fmt.Sprintf("Server running on port %s", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}

// loadCatalog reads the catalog once. The database, when configured, is only
// used for this startup read.
func loadCatalog(ctx context.Context, cfg config.Config) (*product.Catalog, error) {
	switch {
	case cfg.PostgresDSN != "":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("connect catalog db: %w", err)
		}
		defer pool.Close()
		return product.Load(ctx, product.NewPGSource(pool))
	case cfg.CatalogFile != "":
		return product.Load(ctx, product.FileSource{Path: cfg.CatalogFile})
	default:
		return product.Load(ctx, product.DefaultProducts())
	}
}

func newCalculator(cfg config.Config, catalog *product.Catalog) (*order.Calculator, error) {
	rates := order.DefaultTaxRates()
	if cfg.TaxRates != "" {
		overrides, err := order.ParseTaxRates(cfg.TaxRates)
		if err != nil {
			return nil, err
		}
		for code, rate := range overrides {
			rates[code] = rate
		}
	}
	taxes, err := order.NewTaxTable(rates)
	if err != nil {
		return nil, err
	}
	minimum, err := decimal.NewFromString(cfg.MinOrderTotal)
	if err != nil {
		return nil, fmt.Errorf("MIN_ORDER_TOTAL %q: %w", cfg.MinOrderTotal, err)
	}
	return order.NewCalculator(catalog, taxes, minimum), nil
}
