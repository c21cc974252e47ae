package invoices

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gokulnath/order-service/internal/aws"
)

const keyPrefix = "invoices/"

var whitespace = regexp.MustCompile(`\s+`)

// Store uploads invoice documents to S3 and mints presigned download URLs.
type Store struct {
	client  aws.S3API
	presign aws.S3PresignAPI
	bucket  string
	urlTTL  time.Duration
}

// NewStore returns a Store bound to one bucket. urlTTL bounds the lifetime of
// presigned download URLs.
func NewStore(client aws.S3API, presign aws.S3PresignAPI, bucket string, urlTTL time.Duration) *Store {
	return &Store{
		client:  client,
		presign: presign,
		bucket:  bucket,
		urlTTL:  urlTTL,
	}
}

// ObjectKey builds the deterministic invoice key for an order. Whitespace in
// the filename collapses to underscores; a blank filename falls back to
// invoice.pdf.
func ObjectKey(orderID, filename string) string {
	if whitespace.ReplaceAllString(filename, "") == "" {
		filename = "invoice.pdf"
	}
	sanitized := whitespace.ReplaceAllString(filename, "_")
	return keyPrefix + orderID + "_" + sanitized
}

// ValidKey reports whether a stored invoice reference uses the expected key
// scheme.
func ValidKey(key string) bool {
	return len(key) > len(keyPrefix) && key[:len(keyPrefix)] == keyPrefix
}

// Upload stores the payload under key, overwriting any existing object.
func (s *Store) Upload(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   bytes.NewReader(body),
	}
	if contentType != "" {
		input.ContentType = &contentType
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return aws.WrapOp("upload invoice", err)
	}
	return nil
}

// DownloadURL returns a fresh presigned GET URL for key. The object is not
// checked for existence; a URL to a missing object 404s at retrieval time.
func (s *Store) DownloadURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(s.urlTTL))
	if err != nil {
		return "", fmt.Errorf("presign invoice url: %w", err)
	}
	return req.URL, nil
}
