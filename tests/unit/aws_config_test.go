package unit

import (
	"context"
	"os"
	"testing"

	internalaws "github.com/gokulnath/order-service/internal/aws"
)

func TestLoadAWSConfig_DefaultRegion(t *testing.T) {
	os.Setenv("AWS_REGION", "")

	cfg, err := internalaws.LoadAWSConfig(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "ap-south-1" {
		t.Fatalf("expected default region 'ap-south-1', got %s", cfg.Region)
	}
}

func TestLoadAWSConfig_ExplicitRegionWins(t *testing.T) {
	os.Setenv("AWS_REGION", "us-east-1")

	cfg, err := internalaws.LoadAWSConfig(context.Background(), "eu-west-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Region != "eu-west-1" {
		t.Fatalf("expected explicit region to win, got %s", cfg.Region)
	}
}
