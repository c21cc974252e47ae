package notify

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
)

type mockSNS struct {
	mu       sync.Mutex
	messages []string
	subjects []string
	topics   []string
	fail     bool
}

func (m *mockSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return nil, errors.New("topic unavailable")
	}
	m.messages = append(m.messages, *params.Message)
	m.subjects = append(m.subjects, *params.Subject)
	m.topics = append(m.topics, *params.TopicArn)
	return &sns.PublishOutput{}, nil
}

func TestOrderCreated_PublishesToTopic(t *testing.T) {
	mock := &mockSNS{}
	p := NewPublisher(mock, "arn:aws:sns:ap-south-1:000000000000:order-notifications", zap.NewNop().Sugar())

	if err := p.OrderCreated(context.Background(), "Asha", 25.0); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(mock.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(mock.messages))
	}
	if mock.messages[0] != "New order created: Asha for ₹25.00" {
		t.Fatalf("unexpected message: %q", mock.messages[0])
	}
	if mock.subjects[0] != "New Order Created" {
		t.Fatalf("unexpected subject: %q", mock.subjects[0])
	}
	if mock.topics[0] != p.TopicARN {
		t.Fatalf("published to wrong topic: %q", mock.topics[0])
	}
}

func TestOrderCreated_PropagatesError(t *testing.T) {
	p := NewPublisher(&mockSNS{fail: true}, "arn:topic", zap.NewNop().Sugar())

	if err := p.OrderCreated(context.Background(), "Asha", 25.0); err == nil {
		t.Fatal("expected error from failing publish")
	}
}
