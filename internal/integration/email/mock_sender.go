package email

import (
	"context"
	"fmt"
	"sync"

	"github.com/cashease/backend/internal/application/adapter"
	domainerror "github.com/cashease/backend/internal/domain/error"
)

// MockEmailSender records emails instead of sending them. It is safe for
// concurrent use and backs local runs without a Resend key as well as tests.
type MockEmailSender struct {
	mu        sync.Mutex
	sent      []adapter.OutgoingEmail
	failErr   error
	permanent bool
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// Send implements adapter.EmailSender.
func (m *MockEmailSender) Send(_ context.Context, input adapter.OutgoingEmail) (*adapter.DeliveryReceipt, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failErr != nil {
		code := domainerror.ErrCodeTemporaryEmailFailure
		if m.permanent {
			code = domainerror.ErrCodePermanentEmailFailure
		}
		return nil, domainerror.NewEmailError(code, "mock failure", m.failErr)
	}

	m.sent = append(m.sent, input)
	return &adapter.DeliveryReceipt{ProviderID: fmt.Sprintf("mock-%d", len(m.sent))}, nil
}

// Sent returns a copy of the emails sent so far.
func (m *MockEmailSender) Sent() []adapter.OutgoingEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]adapter.OutgoingEmail(nil), m.sent...)
}

// SetFailure makes subsequent sends fail with err.
func (m *MockEmailSender) SetFailure(err error, permanent bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failErr = err
	m.permanent = permanent
}

// Reset clears sent emails and any configured failure.
func (m *MockEmailSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = nil
	m.failErr = nil
	m.permanent = false
}

var _ adapter.EmailSender = (*MockEmailSender)(nil)
