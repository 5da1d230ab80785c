// Package mail defines the contract for sending email messages so the rest of
// the application stays independent from the delivery mechanism.
package mail

import (
	"context"
)

// Message represents an email payload.
type Message struct {
	// From is an optional explicit sender; falls back to the configured default.
	From string
	// To lists the recipients.
	To []string
	// Subject is the email subject line.
	Subject string
	// HTMLBody is the HTML body.
	HTMLBody string
}

// Mailer abstracts an email relay. Send returns synchronously; there is no
// retry policy, failures surface to the caller.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
