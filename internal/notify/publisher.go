package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/gokulnath/order-service/internal/aws"
	"go.uber.org/zap"
)

const publishTimeout = 10 * time.Second

// Publisher wraps an SNS client and a topic ARN.
type Publisher struct {
	SNS      aws.SNSAPI
	TopicARN string
	Log      *zap.SugaredLogger
}

// NewPublisher returns a Publisher bound to a topic.
func NewPublisher(snsClient aws.SNSAPI, topicARN string, log *zap.SugaredLogger) *Publisher {
	return &Publisher{
		SNS:      snsClient,
		TopicARN: topicARN,
		Log:      log,
	}
}

// OrderCreated publishes the order-created message to the topic.
func (p *Publisher) OrderCreated(ctx context.Context, customerName string, amount float64) error {
	message := fmt.Sprintf("New order created: %s for ₹%.2f", customerName, amount)
	subject := "New Order Created"

	_, err := p.SNS.Publish(ctx, &sns.PublishInput{
		TopicArn: &p.TopicARN,
		Message:  &message,
		Subject:  &subject,
	})
	if err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

// OrderCreatedAsync publishes from a detached goroutine so a slow or failing
// publish never delays or fails the order write. Failures are observable only
// in the logs.
func (p *Publisher) OrderCreatedAsync(orderID, customerName string, amount float64) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := p.OrderCreated(ctx, customerName, amount); err != nil {
			p.Log.Errorw("order notification failed", "order_id", orderID, "error", err)
			return
		}
		p.Log.Infow("order notification published", "order_id", orderID)
	}()
}
