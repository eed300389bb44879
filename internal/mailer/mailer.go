// Package mailer sends account e-mails over SMTP.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"

	"github.com/vaughan-dsouza/salesdesk/internal/config"
	"github.com/vaughan-dsouza/salesdesk/internal/logger"
	"github.com/vaughan-dsouza/salesdesk/internal/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<p>Hello {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>Please confirm your SalesDesk account by opening the link below:</p>
<p><a href="{{.Link}}">{{.Link}}</a></p>
<p>The link is valid for 24 hours.</p>
`))

// Sender is the part of *mail.Dialer used to deliver messages.
type Sender interface {
	DialAndSend(m ...*mail.Message) error
}

// SMTP sends mail through an SMTP relay.
type SMTP struct {
	sender Sender
	from   string
}

// New returns an SMTP mailer for cfg, or a Noop mailer when no host is set.
func New(cfg config.SMTP, log *logger.Logger) models.Mailer {
	if cfg.Host == "" {
		return NewNoop(log)
	}

	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.Timeout = 10 * time.Second

	return NewSMTP(d, cfg.Sender)
}

func NewSMTP(sender Sender, from string) *SMTP {
	return &SMTP{sender: sender, from: from}
}

// SendConfirmation sends the account confirmation link to the user.
func (s *SMTP) SendConfirmation(ctx context.Context, to, name, link string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, struct{ Name, Link string }{name, link}); err != nil {
		return fmt.Errorf("render confirmation mail: %w", err)
	}

	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirm your SalesDesk account")
	m.SetBody("text/plain", fmt.Sprintf("Confirm your account: %s\n", link))
	m.AddAlternative("text/html", body.String())

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}

	return nil
}

// Noop logs instead of sending.
type Noop struct {
	logger *logger.Logger
}

func NewNoop(log *logger.Logger) *Noop {
	return &Noop{logger: log}
}

func (n *Noop) SendConfirmation(ctx context.Context, to, _, _ string) error {
	n.logger.Debug("Mailer: smtp disabled, confirmation mail not sent", "to", to)
	return nil
}
