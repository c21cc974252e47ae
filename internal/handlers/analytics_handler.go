package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gokulnath/order-service/internal/analytics"
	"github.com/gokulnath/order-service/internal/orders"
)

// RegisterAnalyticsRoutes registers the read-only aggregate endpoints. Each
// call recomputes from a fresh full scan of the orders table.
func RegisterAnalyticsRoutes(rg *gin.RouterGroup, cfg HandlerConfig) {
	ordersStore := orders.NewStore(cfg.DynamoDBClient, cfg.OrdersTable)
	svc := analytics.NewService(ordersStore, cfg.Location, cfg.Log)

	rg.GET("/analytics/summary", func(c *gin.Context) {
		sum, err := svc.Summarize(c.Request.Context())
		if err != nil {
			cfg.Log.Errorw("analytics summary failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics_failed"})
			return
		}
		c.JSON(http.StatusOK, sum)
	})

	rg.GET("/analytics/orders-by-day", func(c *gin.Context) {
		buckets, err := svc.DailyHistogram(c.Request.Context())
		if err != nil {
			cfg.Log.Errorw("analytics histogram failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics_failed"})
			return
		}
		c.JSON(http.StatusOK, buckets)
	})

	rg.GET("/analytics/products", func(c *gin.Context) {
		sales, err := svc.SalesByProduct(c.Request.Context())
		if err != nil {
			cfg.Log.Errorw("analytics product sales failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "analytics_failed"})
			return
		}
		c.JSON(http.StatusOK, sales)
	})
}
