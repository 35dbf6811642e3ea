package mailer

import (
	"bytes"
	"context"
	"html/template"
	"path/filepath"

	"github.com/jordan-wright/email"
	"github.com/pkg/errors"

	"github.com/tesserex/custody/internal/mailer/transport"
	"github.com/tesserex/custody/internal/util"
)

type MailerTransporter string

const (
	MailerTransporterMock MailerTransporter = "mock"
	MailerTransporterSMTP MailerTransporter = "smtp"
)

func (m MailerTransporter) String() string {
	return string(m)
}

type MailerConfig struct {
	DefaultSender               string
	Send                        bool
	WebTemplatesEmailBaseDirAbs string
	Transporter                 string
}

// Mailer composes operator alert mails from templates and hands them to its transport.
type Mailer struct {
	Config    MailerConfig
	Transport transport.MailTransporter
	Templates map[string]*template.Template
}

const (
	templateLowBalanceAlert = "hot_wallet_low_balance.html.tmpl"
)

func New(config MailerConfig, transport transport.MailTransporter) *Mailer {
	return &Mailer{
		Config:    config,
		Transport: transport,
		Templates: map[string]*template.Template{},
	}
}

// ParseTemplates parses all email templates this mailer may send.
// Must be called once before any Send* method.
func (m *Mailer) ParseTemplates() error {
	for _, name := range []string{templateLowBalanceAlert} {
		t, err := template.ParseFiles(filepath.Join(m.Config.WebTemplatesEmailBaseDirAbs, name))
		if err != nil {
			return errors.Wrapf(err, "failed to parse email template %q", name)
		}

		m.Templates[name] = t
	}

	return nil
}

// LowBalanceAlertPayload carries the data rendered into a hot wallet low balance alert.
// Amounts are display-unit strings, already converted from base units.
type LowBalanceAlertPayload struct {
	ChainName    string
	NativeSymbol string
	Address      string
	Balance      string
	MinBalance   string
}

// SendHotWalletLowBalanceAlert notifies the operators that a hot wallet dropped below
// its configured minimum balance.
func (m *Mailer) SendHotWalletLowBalanceAlert(ctx context.Context, recipients []string, payload LowBalanceAlertPayload) error {
	if len(recipients) == 0 {
		util.LogFromContext(ctx).Warn().Msg("No alert recipients configured, skipping low balance alert")
		return nil
	}

	t, ok := m.Templates[templateLowBalanceAlert]
	if !ok {
		return errors.Errorf("email template %q not parsed", templateLowBalanceAlert)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, payload); err != nil {
		return errors.Wrap(err, "failed to execute low balance alert template")
	}

	mail := &email.Email{
		From:    m.Config.DefaultSender,
		To:      recipients,
		Subject: "Hot wallet balance below threshold: " + payload.ChainName,
		HTML:    body.Bytes(),
	}

	return m.send(ctx, mail)
}

func (m *Mailer) send(ctx context.Context, mail *email.Email) error {
	if !m.Config.Send {
		util.LogFromContext(ctx).Info().Str("subject", mail.Subject).Msg("Mail sending disabled, discarding mail")
		return nil
	}

	if err := m.Transport.Send(mail); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
