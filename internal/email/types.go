package email

// Email представляет структуру email сообщения
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Config - настройки SMTP отправителя
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
