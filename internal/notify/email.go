// internal/notify/email.go

// Package notify delivers applicant emails and department event messages.
// Email delivery is SES in production and a simulated sender everywhere else;
// both sit behind the same interface so the engine and handlers never care.
package notify

import (
	"context"
	"sync"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"internship-allocator/internal/common/aws"
	"internship-allocator/internal/common/errors"
	"internship-allocator/internal/common/logger"
)

// Email is one outbound message. Kind labels the template for metrics.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Kind    string `json:"kind"`
}

// Sender delivers a single email.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// SESSender delivers through Amazon SES.
type SESSender struct {
	client *aws.SESClient
	from   string
}

func NewSESSender(client *aws.SESClient, from string) *SESSender {
	return &SESSender{client: client, from: from}
}

func (s *SESSender) Send(ctx context.Context, email Email) error {
	input := &ses.SendEmailInput{
		Source: awssdk.String(s.from),
		Destination: &types.Destination{
			ToAddresses: []string{email.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: awssdk.String(email.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: awssdk.String(email.Body)},
			},
		},
	}
	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return errors.NewEmailDeliveryFailedError(err)
	}
	return nil
}

// SimulatedSender records emails instead of delivering them. It is the
// default when SES is not configured, and the test double.
type SimulatedSender struct {
	mu     sync.Mutex
	sent   []Email
	logger logger.Logger
}

func NewSimulatedSender(log logger.Logger) *SimulatedSender {
	return &SimulatedSender{logger: log}
}

func (s *SimulatedSender) Send(_ context.Context, email Email) error {
	s.mu.Lock()
	s.sent = append(s.sent, email)
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("email queued (simulated)", map[string]interface{}{
			"to":      email.To,
			"subject": email.Subject,
			"kind":    email.Kind,
		})
	}
	return nil
}

// Sent returns a copy of everything delivered so far.
func (s *SimulatedSender) Sent() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Email(nil), s.sent...)
}
