package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Email is one outbound transactional email
type Email struct {
	ToName   string
	ToEmail  string
	Subject  string
	TextBody string
	HTMLBody string
}

// EmailClient defines an interface for transactional email delivery to enable mocking
//
//go:generate mockgen -source=email.go -destination=../mocks/email.go -package=mocks -mock_names=EmailClient=MockEmailClient
type EmailClient interface {
	// Send delivers a single email and reports success or failure
	Send(ctx context.Context, email Email) error
}

// SendGridClient implements EmailClient using the SendGrid v3 API
type SendGridClient struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewSendGridClient creates a new SendGrid-backed email client
func NewSendGridClient(apiKey, fromName, fromEmail string) EmailClient {
	return &SendGridClient{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// Send delivers a single email via SendGrid
func (c *SendGridClient) Send(ctx context.Context, email Email) error {
	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(email.ToName, email.ToEmail)
	message := mail.NewSingleEmail(from, email.Subject, to, email.TextBody, email.HTMLBody)

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}

	return nil
}
