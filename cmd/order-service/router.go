package main

import (
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/MikeMC777/storefront-orders/docs"
	"github.com/MikeMC777/storefront-orders/internal/httpx"
	"github.com/MikeMC777/storefront-orders/internal/metrics"
	"github.com/MikeMC777/storefront-orders/internal/order"
	"github.com/MikeMC777/storefront-orders/internal/product"
	"github.com/MikeMC777/storefront-orders/internal/receipt"
)

// app groups what the handlers share. Everything in it is read-only after startup.
type app struct {
	catalog  *product.Catalog
	calc     *order.Calculator
	renderer receipt.Renderer
	metrics  *metrics.ServerMetrics
	log      *zap.Logger
}

func newRouter(a *app, publicDir string, corsOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(a.log), httpx.Instrument(a.metrics))
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:  corsOrigins,
			AllowMethods:  []string{"GET", "POST"},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"X-Request-ID"},
			MaxAge:        12 * time.Hour,
		}))
	}

	r.GET("/healthz", healthHandler)
	r.GET("/metrics", gin.WrapH(a.metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/products", listProductsHandler(a.catalog))
	r.POST("/order", createOrderHandler(a.calc, a.renderer, a.metrics, a.log))

	r.Static("/css", filepath.Join(publicDir, "css"))
	r.StaticFile("/", filepath.Join(publicDir, "index.html"))
	return r
}
