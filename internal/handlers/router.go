package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gokulnath/order-service/internal/auth"
	"github.com/gokulnath/order-service/internal/aws"
	"go.uber.org/zap"
)

// HandlerConfig groups dependencies for the HTTP layer.
type HandlerConfig struct {
	DynamoDBClient   aws.DynamoDBAPI
	S3Client         aws.S3API
	S3PresignClient  aws.S3PresignAPI
	SNSClient        aws.SNSAPI
	CloudWatchClient aws.CloudWatchAPI

	OrdersTable   string
	ProductsTable string
	InvoiceBucket string
	TopicARN      string
	InvoiceURLTTL time.Duration
	Location      *time.Location

	AuthUsername string
	Verifier     auth.Verifier
	Tokens       *auth.TokenManager

	Log *zap.SugaredLogger
}

// NewRouter builds the gin engine: open health endpoints, then the /api group
// behind the bearer-token check with the login path exempt.
func NewRouter(cfg HandlerConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// liveness
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "UP",
			"service":   "order-service",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Order Service is running!")
	})

	api := r.Group("/api")
	api.Use(auth.Middleware(cfg.Tokens, cfg.AuthUsername, map[string]struct{}{
		"/api/auth/login": {},
	}))

	RegisterAuthRoutes(api, cfg)
	RegisterOrdersRoutes(api, cfg)
	RegisterProductsRoutes(api, cfg)
	RegisterAnalyticsRoutes(api, cfg)

	return r
}
