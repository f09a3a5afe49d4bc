// Package mail renders the transactional emails and hands them to a
// delivery provider. Delivery is best effort: failures are logged and never
// reach the request that caused them.
package mail

import (
	"context"
	"errors"
	"fmt"
)

// ErrSendFailed wraps provider rejections.
var ErrSendFailed = errors.New("mail: send failed")

// Address is a display name plus mailbox.
type Address struct {
	Name  string
	Email string
}

func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Message is a rendered email ready for delivery.
type Message struct {
	From    Address
	To      Address
	Subject string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Config struct {
	From       Address
	OpsAddress string // receives new signup notifications
	SiteURL    string // base for links in emails, without trailing slash
}
