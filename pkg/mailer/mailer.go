package mailer

import (
	"github.com/GhufranBkri/Sipema-backend/config"
	"gopkg.in/gomail.v2"
)

// Mailer mengirim email pemberitahuan ke petugas. Kanal ini opsional:
// bila SMTP_HOST kosong, Enabled() false dan pengiriman dilewati.
type Mailer struct {
	host   string
	port   int
	user   string
	pass   string
	sender string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host:   config.GetEnv("SMTP_HOST", ""),
		port:   config.GetEnvAsInt("SMTP_PORT", 587),
		user:   config.GetEnv("SMTP_USER", ""),
		pass:   config.GetEnv("SMTP_PASS", ""),
		sender: config.GetEnv("SMTP_SENDER", "no-reply@sipema.ac.id"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return dialer.DialAndSend(msg)
}
