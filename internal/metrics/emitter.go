package metrics

import (
	"context"
	"fmt"
	"time"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/gokulnath/order-service/internal/aws"
	"go.uber.org/zap"
)

const (
	namespace   = "OrderService"
	emitTimeout = 10 * time.Second
)

// Emitter pushes best-effort counters to CloudWatch. Like notifications,
// metric emission never blocks or fails the request path.
type Emitter struct {
	client aws.CloudWatchAPI
	log    *zap.SugaredLogger
}

// NewEmitter returns an Emitter.
func NewEmitter(client aws.CloudWatchAPI, log *zap.SugaredLogger) *Emitter {
	return &Emitter{client: client, log: log}
}

// OrderCreated records one order creation.
func (e *Emitter) OrderCreated(ctx context.Context) error {
	_, err := e.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: sdkaws.String(namespace),
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: sdkaws.String("OrdersCreated"),
				Value:      sdkaws.Float64(1),
				Unit:       cwtypes.StandardUnitCount,
				Timestamp:  sdkaws.Time(time.Now().UTC()),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

// OrderCreatedAsync emits from a detached goroutine, logging failures.
func (e *Emitter) OrderCreatedAsync(orderID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emitTimeout)
		defer cancel()

		if err := e.OrderCreated(ctx); err != nil {
			e.log.Warnw("order metric emission failed", "order_id", orderID, "error", err)
		}
	}()
}
