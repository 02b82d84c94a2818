package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider - реализация Provider поверх gomail
type SMTPProvider struct {
	config Config
}

// NewSMTPProvider создает SMTP отправитель
func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if config.SMTPHost == "" || config.SMTPPort == 0 {
		return nil, fmt.Errorf("smtp host and port are required")
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	return &SMTPProvider{config: config}, nil
}

// Send отправляет email через SMTP
func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.Body)

	d := gomail.NewDialer(
		p.config.SMTPHost,
		p.config.SMTPPort,
		p.config.Username,
		p.config.Password,
	)

	return d.DialAndSend(m)
}

// SendAccountPending уведомляет, что аккаунт ждет одобрения админа
func (p *SMTPProvider) SendAccountPending(to string, firstName string) error {
	body := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p><p>Ваша заявка принята. Аккаунт станет активным после одобрения администратором.</p>",
		firstName,
	)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "EcoLearn: заявка на регистрацию принята",
		Body:    body,
	})
}

// SendAccountApproved уведомляет, что аккаунт одобрен
func (p *SMTPProvider) SendAccountApproved(to string, firstName string) error {
	body := fmt.Sprintf(
		"<p>Здравствуйте, %s!</p><p>Ваш аккаунт одобрен администратором. Теперь вы можете войти в систему.</p>",
		firstName,
	)
	return p.Send(&Email{
		To:      []string{to},
		Subject: "EcoLearn: аккаунт одобрен",
		Body:    body,
	})
}
