// internal/common/aws/aws.go
// Package aws wraps the SDK v2 clients the allocator uses for outbound
// messaging: SES for applicant emails and SNS for department event fan-out.
// Both are optional at runtime; the server falls back to simulated delivery
// when no region or topic is configured.
package aws

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

func loadConfig(ctx context.Context, region string) (awssdk.Config, error) {
	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return config.LoadDefaultConfig(ctx, opts...)
}
