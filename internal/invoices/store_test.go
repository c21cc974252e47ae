package invoices

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type mockS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMockS3() *mockS3 {
	return &mockS3{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (m *mockS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	m.objects[*params.Key] = body
	if params.ContentType != nil {
		m.types[*params.Key] = *params.ContentType
	}
	return &s3.PutObjectOutput{}, nil
}

type mockPresign struct{}

func (mockPresign) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	return &v4.PresignedHTTPRequest{
		URL: "https://" + *params.Bucket + ".s3.amazonaws.com/" + *params.Key + "?signed=1",
	}, nil
}

func TestObjectKey(t *testing.T) {
	cases := []struct {
		name     string
		orderID  string
		filename string
		want     string
	}{
		{"plain", "ord-1", "invoice.pdf", "invoices/ord-1_invoice.pdf"},
		{"spaces collapse", "ord-1", "my  august invoice.pdf", "invoices/ord-1_my_august_invoice.pdf"},
		{"empty falls back", "ord-2", "", "invoices/ord-2_invoice.pdf"},
		{"blank falls back", "ord-3", "   ", "invoices/ord-3_invoice.pdf"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ObjectKey(tc.orderID, tc.filename); got != tc.want {
				t.Fatalf("ObjectKey(%q, %q) = %q, want %q", tc.orderID, tc.filename, got, tc.want)
			}
		})
	}
}

func TestValidKey(t *testing.T) {
	if !ValidKey("invoices/ord-1_invoice.pdf") {
		t.Fatal("expected key to be valid")
	}
	if ValidKey("uploads/ord-1_invoice.pdf") {
		t.Fatal("expected foreign prefix to be rejected")
	}
	if ValidKey("invoices/") {
		t.Fatal("expected bare prefix to be rejected")
	}
}

func TestUploadAndDownloadURL(t *testing.T) {
	s3mock := newMockS3()
	store := NewStore(s3mock, mockPresign{}, "order-invoices", 15*time.Minute)

	key := ObjectKey("ord-1", "invoice.pdf")
	if err := store.Upload(context.Background(), key, []byte("%PDF-1.4"), "application/pdf"); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if string(s3mock.objects[key]) != "%PDF-1.4" {
		t.Fatalf("object body not stored: %q", s3mock.objects[key])
	}
	if s3mock.types[key] != "application/pdf" {
		t.Fatalf("content type not stored: %q", s3mock.types[key])
	}

	url, err := store.DownloadURL(context.Background(), key)
	if err != nil {
		t.Fatalf("download url: %v", err)
	}
	if url == "" {
		t.Fatal("expected non-empty presigned url")
	}
}
