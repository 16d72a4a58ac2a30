package notification

import (
	"context"
	"errors"
)

var (
	// ErrDisabled is reported when an administrator has paused outgoing mail.
	ErrDisabled = errors.New("notifications disabled")
	// ErrNoRecipient is reported when there is no address to send to.
	ErrNoRecipient = errors.New("no recipient address")
)

// Message is a rendered e-mail.
type Message struct {
	To      []string
	Subject string
	HTML    string
	Text    string
	CC      []string
	BCC     []string
	ReplyTo string
}

// Outcome is the result of one delivery attempt. ID is the provider's
// message id on success; Err is set on failure.
type Outcome struct {
	ID  string
	Err error
}

func (o Outcome) OK() bool {
	return o.Err == nil
}

// Sender delivers messages. Failures are returned in the Outcome so callers
// can observe them without treating them as fatal.
type Sender interface {
	Send(ctx context.Context, msg Message) Outcome
}
