package dto

// AdminCreateUserRequest - создание пользователя администратором.
// Роль обязательна, аккаунт создается сразу включенным.
type AdminCreateUserRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Role      string `json:"role" validate:"required,user_role"`
}
