package email

import (
	"context"
	"net/mail"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

// Resend reports auth (401, 403) and validation (422) problems only in the
// error text. Those never succeed on retry; rate limits and 5xx do.
var permanentPatterns = []string{"401", "403", "422", "unauthorized", "forbidden", "validation", "invalid", "bad request"}

// ResendClient sends through the Resend API.
type ResendClient struct {
	client *resend.Client
	from   string
}

func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client: resend.NewClient(apiKey),
		from:   address(fromName, fromEmail),
	}
}

// Send classifies failures as permanent or temporary EmailErrors so the
// worker knows whether to retry.
func (c *ResendClient) Send(ctx context.Context, input adapter.OutgoingEmail) (*adapter.DeliveryReceipt, error) {
	resp, err := c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{address(input.Name, input.To)},
		Subject: input.Subject,
		Html:    input.HTML,
		Text:    input.Text,
	})
	if err != nil {
		if isPermanentError(err) {
			return nil, domainerror.NewEmailError(domainerror.ErrCodePermanentEmailFailure, "permanent email failure", err)
		}
		return nil, domainerror.NewEmailError(domainerror.ErrCodeTemporaryEmailFailure, "temporary email failure", err)
	}

	return &adapter.DeliveryReceipt{ProviderID: resp.Id}, nil
}

// address formats "Name <addr>", quoting the name when needed.
func address(name, addr string) string {
	if name == "" {
		return addr
	}
	return (&mail.Address{Name: name, Address: addr}).String()
}

func isPermanentError(err error) bool {
	if err == nil {
		return false
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range permanentPatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

var _ adapter.EmailSender = (*ResendClient)(nil)
