package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gokulnath/order-service/internal/auth"
	"github.com/gokulnath/order-service/internal/aws"
	"github.com/gokulnath/order-service/internal/config"
	"github.com/gokulnath/order-service/internal/handlers"
	"github.com/gokulnath/order-service/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zl.Sync()

	clients, err := aws.NewAWSClients(context.Background(), cfg.AWSRegion)
	if err != nil {
		zl.Fatalw("failed to init aws clients", "error", err)
	}

	loc, err := time.LoadLocation(cfg.AnalyticsTimezone)
	if err != nil {
		zl.Fatalw("invalid analytics timezone", "timezone", cfg.AnalyticsTimezone, "error", err)
	}

	hcfg := handlers.HandlerConfig{
		DynamoDBClient:   clients.DynamoDB,
		S3Client:         clients.S3,
		S3PresignClient:  clients.S3Presign,
		SNSClient:        clients.SNS,
		CloudWatchClient: clients.CloudWatch,
		OrdersTable:      cfg.OrdersTable,
		ProductsTable:    cfg.ProductsTable,
		InvoiceBucket:    cfg.InvoiceBucket,
		TopicARN:         cfg.OrderTopicARN,
		InvoiceURLTTL:    cfg.InvoiceURLTTL,
		Location:         loc,
		AuthUsername:     cfg.AuthUsername,
		Verifier:         auth.NewStaticVerifier(cfg.AuthUsername, cfg.AuthPassword),
		Tokens:           auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL),
		Log:              zl,
	}

	r := handlers.NewRouter(hcfg)

	// if environment variable RUN_LOCAL is set to "true", run local HTTP server for development.
	if os.Getenv("RUN_LOCAL") == "true" {
		zl.Infow("running local server", "addr", cfg.ListenAddr)
		if err := r.Run(cfg.ListenAddr); err != nil {
			zl.Fatalw("failed to run local server", "error", err)
		}
		return
	}

	// lambda adapter
	adapter := ginadapter.New(r)

	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (interface{}, error) {
		// the adapter handles proxying; use adapter.ProxyWithContext for proper context propagation
		return adapter.ProxyWithContext(ctx, req)
	})
}
