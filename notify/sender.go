package notify

import (
	"context"
	"log"
)

// Sender delivers a short text message to a phone number. The real SMS
// gateway is an external collaborator; this interface is all the core needs.
type Sender interface {
	Send(ctx context.Context, phone, message string) error
}

// LogSender writes messages to the process log instead of a gateway.
// Used in development and tests.
type LogSender struct{}

func (LogSender) Send(_ context.Context, phone, message string) error {
	log.Printf("sms to %s: %s", phone, message)
	return nil
}
