package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"mercantile/pkg/metrics"
	"mercantile/pkg/middleware"
	"mercantile/pkg/square"
)

type Deps struct {
	Products  ProductStore
	Orders    OrderStore
	Settings  SettingsStore
	Estimator Estimator
	Payments  square.Client
	DB        ReadinessChecker

	SquareApplicationID string
	SquareLocationID    string

	// WebDir is the directory holding the site's static build; unmatched
	// non-API paths fall back to its index.html.
	WebDir string
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.TraceID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger(false))

	healthCtrl := NewHealthController(deps.DB)
	productsCtrl := NewProductsController(deps.Products)
	ordersCtrl := NewOrdersController(deps.Orders)
	settingsCtrl := NewSettingsController(deps.Settings)
	shippingCtrl := NewShippingController(deps.Estimator)
	paymentsCtrl := NewPaymentsController(deps.Payments, deps.SquareApplicationID, deps.SquareLocationID)

	r.GET("/api/health", healthCtrl.Check)

	r.GET("/api/products", productsCtrl.List)
	r.POST("/api/products", productsCtrl.Create)
	r.PUT("/api/products/:id", productsCtrl.Update)
	r.DELETE("/api/products/:id", productsCtrl.Delete)

	r.POST("/api/orders", ordersCtrl.Create)
	r.GET("/api/orders", ordersCtrl.List)
	r.GET("/api/orders/status/:status", ordersCtrl.ListByStatus)
	r.PUT("/api/orders/:id/status", ordersCtrl.UpdateStatus)
	r.DELETE("/api/orders/:id", ordersCtrl.Delete)

	r.GET("/api/settings", settingsCtrl.Get)
	r.PUT("/api/settings/theme", settingsCtrl.UpdateTheme)

	r.POST("/api/shipping/calculate", shippingCtrl.Calculate)

	r.POST("/api/payments/square", paymentsCtrl.Submit)
	r.GET("/api/payments/config", paymentsCtrl.Config)

	r.GET("/metrics", metrics.Handler())

	r.NoRoute(fallback(deps.WebDir))

	return r
}

// fallback answers unmatched API paths with a structured 404 and everything
// else with the site's entry document.
func fallback(webDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  "API endpoint not found",
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			})
			return
		}

		requested := filepath.Join(webDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}

		c.File(filepath.Join(webDir, "index.html"))
	}
}
