package aws

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aws/smithy-go"
)

func TestErrorCode(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ResourceNotFoundException", Message: "table missing"}
	wrapped := fmt.Errorf("operation failed: %w", apiErr)

	if code := ErrorCode(wrapped); code != "ResourceNotFoundException" {
		t.Fatalf("code = %q, want ResourceNotFoundException", code)
	}
	if code := ErrorCode(errors.New("plain failure")); code != "" {
		t.Fatalf("expected empty code for non-API error, got %q", code)
	}
}

func TestWrapOp(t *testing.T) {
	apiErr := &smithy.GenericAPIError{Code: "ProvisionedThroughputExceededException"}
	err := WrapOp("scan orders", apiErr)
	if !strings.Contains(err.Error(), "scan orders: ProvisionedThroughputExceededException") {
		t.Fatalf("unexpected message: %v", err)
	}
	if !errors.Is(err, apiErr) {
		t.Fatal("wrapped error must unwrap to the original")
	}

	plain := errors.New("dial timeout")
	err = WrapOp("put order", plain)
	if err.Error() != "put order: dial timeout" {
		t.Fatalf("unexpected message: %v", err)
	}
	if !errors.Is(err, plain) {
		t.Fatal("wrapped error must unwrap to the original")
	}
}
