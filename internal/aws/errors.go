package aws

import (
	"errors"
	"fmt"

	"github.com/aws/smithy-go"
)

// ErrorCode returns the AWS API error code carried by err (for example
// ResourceNotFoundException or ProvisionedThroughputExceededException), or ""
// when err is not a service error.
func ErrorCode(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode()
	}
	return ""
}

// WrapOp wraps a failed service call under an operation label, surfacing the
// API error code when one is present.
func WrapOp(op string, err error) error {
	if code := ErrorCode(err); code != "" {
		return fmt.Errorf("%s: %s: %w", op, code, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
