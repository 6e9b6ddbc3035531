package main

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/MikeMC777/storefront-orders/internal/httpx"
	"github.com/MikeMC777/storefront-orders/internal/metrics"
	"github.com/MikeMC777/storefront-orders/internal/order"
	"github.com/MikeMC777/storefront-orders/internal/product"
	"github.com/MikeMC777/storefront-orders/internal/receipt"
)

type validationResponse struct {
	Errors order.ValidationErrors `json:"errors"`
}

type errorResponse struct {
	Error string `json:"error" example:"failed to render receipt"`
}

// createOrderHandler godoc
// @Summary  Place an order and get its receipt
// @Tags     orders
// @Accept   x-www-form-urlencoded
// @Produce  html
// @Param    name       formData string   true "Customer name"
// @Param    address    formData string   true "Street address"
// @Param    city       formData string   true "City"
// @Param    province   formData string   true "2-letter province code"
// @Param    phone      formData string   true "10 digit phone number"
// @Param    products   formData []string true "Selected product names" collectionFormat(multi)
// @Param    quantities formData []int    true "Quantity per selected product" collectionFormat(multi)
// @Success  200 {string} string "HTML receipt"
// @Failure  400 {object} validationResponse "Validation errors, or the minimum purchase message as text/plain"
// @Failure  500 {object} errorResponse
// @Router   /order [post]
func createOrderHandler(calc *order.Calculator, renderer receipt.Renderer, m *metrics.ServerMetrics, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := zap.String("rid", httpx.GetRequestID(c))
		acceptBracketKeys(c.Request)

		var form order.OrderForm
		verrs := order.ValidationErrorsFrom(c.ShouldBindWith(&form, binding.Form))
		items, itemErrs := form.Items()
		verrs = append(verrs, itemErrs...)
		if len(verrs) > 0 {
			m.ObserveOrder(metrics.OutcomeInvalid, decimal.Zero)
			log.Info("order rejected", rid, zap.Error(verrs))
			c.JSON(http.StatusBadRequest, validationResponse{Errors: verrs})
			return
		}

		rc, err := calc.BuildReceipt(form.Order(items))
		if errors.Is(err, order.ErrBelowMinimum) {
			m.ObserveOrder(metrics.OutcomeBelowMinimum, decimal.Zero)
			log.Info("order rejected", rid, zap.Error(err))
			c.String(http.StatusBadRequest, calc.MinimumMessage())
			return
		}
		if err != nil {
			log.Error("pricing failed", rid, zap.Error(err))
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to price order"})
			return
		}

		var buf bytes.Buffer
		if err := renderer.Render(&buf, rc); err != nil {
			m.ObserveOrder(metrics.OutcomeRenderFailed, rc.TotalWithTax)
			log.Error("render receipt", rid, zap.Error(err))
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "failed to render receipt"})
			return
		}

		m.ObserveOrder(metrics.OutcomeAccepted, rc.TotalWithTax)
		log.Info("order accepted", rid,
			zap.String("province", rc.Province),
			zap.Int("lines", len(rc.Lines)),
			zap.String("total", order.FormatMoney(rc.TotalWithTax)),
		)
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

// acceptBracketKeys lets forms that post "products[]" and "quantities[]"
// bind like the plain keys. Parse errors are left for the binder to report.
func acceptBracketKeys(req *http.Request) {
	if err := req.ParseForm(); err != nil {
		return
	}
	for _, key := range []string{"products", "quantities"} {
		vals, ok := req.PostForm[key+"[]"]
		if !ok || len(req.PostForm[key]) > 0 {
			continue
		}
		req.PostForm[key] = vals
		req.Form[key] = vals
	}
}

// listProductsHandler godoc
// @Summary  List the product catalog
// @Tags     products
// @Produce  json
// @Success  200 {object} product.ListResponse
// @Router   /products [get]
func listProductsHandler(catalog *product.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := catalog.Products()
		out := product.ListResponse{Count: len(items), Items: make([]product.ProductView, 0, len(items))}
		for _, p := range items {
			out.Items = append(out.Items, p.View())
		}
		c.JSON(http.StatusOK, out)
	}
}

// healthHandler godoc
// @Summary  Liveness probe
// @Tags     health
// @Produce  plain
// @Success  200 {string} string "ok"
// @Router   /healthz [get]
func healthHandler(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
