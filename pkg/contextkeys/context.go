package contextkeys

// Используем кастомный тип, чтобы избежать коллизий с другими пакетами
type contextKey string

// Ключи, по которым auth middleware кладет данные принципала в context запроса
const (
	UserIDKey    = contextKey("userID")
	UserEmailKey = contextKey("userEmail")
	UserRoleKey  = contextKey("userRole")
)
