// internal/common/aws/ses.go
package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClient delivers applicant-facing email (selection, rejection, tie-break
// and interview invitations) through Amazon SES.
type SESClient struct {
	client *ses.Client
}

// NewSESClient builds a client from the default credential chain. The region
// comes from the notifications config; an empty region defers to the
// environment.
func NewSESClient(ctx context.Context, region string) (*SESClient, error) {
	cfg, err := loadConfig(ctx, region)
	if err != nil {
		return nil, err
	}
	return &SESClient{client: ses.NewFromConfig(cfg)}, nil
}

func (s *SESClient) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return s.client.SendEmail(ctx, input)
}
