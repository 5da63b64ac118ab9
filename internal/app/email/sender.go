package email

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"

	customErrors "github.com/Miraines/ContactSphere/internal/domain/contacts/errors"
	"github.com/Miraines/ContactSphere/internal/infra/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/confirmation.html
var confirmationHTML string

// Sender delivers the confirmation mail. Callers treat delivery as
// best-effort: a send failure is logged by them, never returned to the
// client that triggered it.
type Sender interface {
	SendConfirmation(to, username, token string) error
}

type SMTPSender struct {
	dialer  *gomail.Dialer
	from    string
	baseURL string
	tmpl    *template.Template
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	tmpl, err := template.New("confirmation").Parse(confirmationHTML)
	if err != nil {
		return nil, customErrors.WrapInternal(err, "parse confirmation template")
	}
	return &SMTPSender{
		dialer:  gomail.NewDialer(cfg.MailHost, cfg.MailPort, cfg.MailUsername, cfg.MailPassword),
		from:    cfg.MailFrom,
		baseURL: cfg.BaseURL,
		tmpl:    tmpl,
	}, nil
}

func (s *SMTPSender) SendConfirmation(to, username, token string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", s.baseURL, token)

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, map[string]string{
		"Username": username,
		"Link":     link,
	}); err != nil {
		return customErrors.WrapInternal(err, "render confirmation mail")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Confirm your email")
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return customErrors.WrapInternal(err, "send confirmation mail")
	}
	return nil
}
