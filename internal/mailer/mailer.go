package mailer

import (
	"fmt"

	"github.com/moodlog/mood-journal/internal/logger"
	"gopkg.in/gomail.v2"
)

// Mailer delivers verification codes over SMTP using implicit TLS.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a Mailer for the given SMTP endpoint and credentials.
func New(host string, port int, username, password string) *Mailer {
	d := gomail.NewDialer(host, port, username, password)
	d.SSL = port == 465

	return &Mailer{
		dialer: d,
		from:   username,
	}
}

// SendCode delivers a verification code to the given address. The caller
// blocks until dispatch completes or fails; there are no retries.
func (m *Mailer) SendCode(email, code string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", "Mood Journal verification code")
	msg.SetBody("text/plain", fmt.Sprintf("Your verification code is %s. It is valid for 10 minutes.", code))

	err := m.dialer.DialAndSend(msg)

	logger.Log.Infow("send verification code email",
		"to", email,
		"error", err,
	)

	return err
}
