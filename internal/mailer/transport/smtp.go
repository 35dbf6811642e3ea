package transport

import (
	"crypto/tls"
	"fmt"
	"net/smtp"

	"github.com/jordan-wright/email"
)

type SMTPAuthType string

const (
	SMTPAuthTypeNone    SMTPAuthType = "none"
	SMTPAuthTypePlain   SMTPAuthType = "plain"
	SMTPAuthTypeCRAMMD5 SMTPAuthType = "crammd5"
	SMTPAuthTypeLogin   SMTPAuthType = "login"
)

func (t SMTPAuthType) String() string {
	return string(t)
}

func SMTPAuthTypeFromString(s string) SMTPAuthType {
	switch s {
	case SMTPAuthTypePlain.String():
		return SMTPAuthTypePlain
	case SMTPAuthTypeCRAMMD5.String():
		return SMTPAuthTypeCRAMMD5
	case SMTPAuthTypeLogin.String():
		return SMTPAuthTypeLogin
	default:
		return SMTPAuthTypeNone
	}
}

type SMTPMailTransportConfig struct {
	Host      string
	Port      int
	AuthType  SMTPAuthType
	Username  string
	Password  string `json:"-"` // sensitive
	UseTLS    bool
	TLSConfig *tls.Config `json:",omitempty"`
}

type SMTPMailTransport struct {
	config SMTPMailTransportConfig
	auth   smtp.Auth
}

// NewSMTP returns a new mail transport delivering via the configured SMTP relay.
func NewSMTP(config SMTPMailTransportConfig) *SMTPMailTransport {
	var auth smtp.Auth

	switch config.AuthType {
	case SMTPAuthTypePlain:
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	case SMTPAuthTypeCRAMMD5:
		auth = smtp.CRAMMD5Auth(config.Username, config.Password)
	case SMTPAuthTypeLogin:
		auth = LoginAuth(config.Username, config.Password)
	case SMTPAuthTypeNone:
		auth = nil
	}

	return &SMTPMailTransport{
		config: config,
		auth:   auth,
	}
}

func (m *SMTPMailTransport) Send(mail *email.Email) error {
	addr := fmt.Sprintf("%s:%d", m.config.Host, m.config.Port)

	if m.config.UseTLS {
		return mail.SendWithTLS(addr, m.auth, m.config.TLSConfig)
	}

	return mail.Send(addr, m.auth)
}
