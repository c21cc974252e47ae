package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gokulnath/order-service/internal/products"
)

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// RegisterProductsRoutes registers the product catalog endpoints.
func RegisterProductsRoutes(rg *gin.RouterGroup, cfg HandlerConfig) {
	store := products.NewStore(cfg.DynamoDBClient, cfg.ProductsTable)

	rg.POST("/products", func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
			return
		}

		created, err := store.Create(c.Request.Context(), products.Product{
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
		})
		if err != nil {
			cfg.Log.Errorw("product create failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_persist_failed"})
			return
		}
		c.JSON(http.StatusOK, created)
	})

	rg.GET("/products", func(c *gin.Context) {
		all, err := store.ScanAll(c.Request.Context())
		if err != nil {
			cfg.Log.Errorw("product scan failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_scan_failed"})
			return
		}
		if all == nil {
			all = []products.Product{}
		}
		c.JSON(http.StatusOK, all)
	})

	rg.GET("/products/:id", func(c *gin.Context) {
		p, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "product_lookup_failed"})
			return
		}
		if p == nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusOK, p)
	})
}
