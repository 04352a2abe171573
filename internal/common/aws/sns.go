// internal/common/aws/sns.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSClient mirrors department notifications (posting filled, restored) to an
// SNS topic so external HR tooling can subscribe. The in-process feed remains
// the source of truth; SNS publication is best effort.
type SNSClient struct {
	client *sns.Client
}

// NewSNSClient builds a client from the default credential chain. An empty
// region defers to the environment.
func NewSNSClient(ctx context.Context, region string) (*SNSClient, error) {
	cfg, err := loadConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return &SNSClient{client: sns.NewFromConfig(cfg)}, nil
}

func (s *SNSClient) Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	return s.client.Publish(ctx, input)
}
