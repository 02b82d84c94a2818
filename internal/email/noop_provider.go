package email

import "ecolearn_backend/internal/logger"

// NoopProvider используется, когда email отключен в конфиге (и в тестах).
// Только логирует, ничего не отправляет.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(email *Email) error {
	logger.Debug("email disabled, skipping send", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *NoopProvider) SendAccountPending(to string, firstName string) error {
	logger.Debug("email disabled, skipping account-pending notification", "to", to)
	return nil
}

func (p *NoopProvider) SendAccountApproved(to string, firstName string) error {
	logger.Debug("email disabled, skipping account-approved notification", "to", to)
	return nil
}
