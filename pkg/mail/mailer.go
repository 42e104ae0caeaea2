package mail

import (
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/prepitus/college-chances-api/pkg/config"
)

// Attachment is a file shipped with an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message describes a single outbound email.
type Message struct {
	To         string
	Subject    string
	HTML       string
	Attachment *Attachment
}

// Sender delivers messages over a transport.
type Sender interface {
	Send(msg Message) error
}

// SMTPMailer sends messages through a single SMTP account. Sends block
// until the server accepts or rejects the message; there is no retry, a
// failed send is the caller's problem to surface.
type SMTPMailer struct {
	dialer   *gomail.Dialer
	fromName string
	fromAddr string
}

// NewSMTPMailer builds a mailer from transport and sender config.
// Port 465 switches the dialer to implicit TLS.
func NewSMTPMailer(smtp config.SMTPConfig, sender config.SenderConfig) *SMTPMailer {
	dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
	dialer.SSL = smtp.Port == 465

	return &SMTPMailer{
		dialer:   dialer,
		fromName: sender.Name,
		fromAddr: sender.Address,
	}
}

// Send delivers the message, attaching the optional file inline from memory.
func (m *SMTPMailer) Send(msg Message) error {
	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.fromAddr, m.fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)

	if att := msg.Attachment; att != nil {
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(att.Content)
				return err
			}),
		}
		if att.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {att.ContentType},
			}))
		}
		gm.Attach(att.Filename, settings...)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		return fmt.Errorf("smtp send to %s: %w", msg.To, err)
	}
	return nil
}
