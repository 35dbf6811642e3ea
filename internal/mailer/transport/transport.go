package transport

import (
	"github.com/jordan-wright/email"
)

// MailTransporter abstracts the delivery of a fully composed mail.
type MailTransporter interface {
	Send(mail *email.Email) error
}
