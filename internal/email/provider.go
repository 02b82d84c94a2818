package email

// Provider определяет интерфейс для отправки email.
// Ошибки отправки никогда не должны ронять исходный запрос -
// вызывающий код их только логирует.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendAccountPending уведомляет, что аккаунт ждет одобрения админа
	SendAccountPending(to string, firstName string) error

	// SendAccountApproved уведомляет, что аккаунт одобрен
	SendAccountApproved(to string, firstName string) error
}
