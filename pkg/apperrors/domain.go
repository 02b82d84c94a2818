package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для доменных ошибок.
Сервисы возвращают их наверх, хендлеры отдают клиенту как есть.
*/

// ErrNotFound - фабрика для ошибки "не найдено" (404)
// Используется, когда ошибка репозитория (типа gorm.ErrRecordNotFound)
// должна быть преобразована в AppError.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrInvalidOperation - фабрика для невалидных операций (400)
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrEmailAlreadyExists - email уже занят другим аккаунтом
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email already in use",
	http.StatusConflict,
)

// ErrInvalidUserRole - запрошенная роль отсутствует или неизвестна
var ErrInvalidUserRole = New(
	CodeValidationFailed,
	"user",
	"Invalid or missing role",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверный email или пароль.
// Одно сообщение на оба случая, чтобы не раскрывать существование аккаунта.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrPendingApproval - аккаунт создан, но ждет одобрения администратора.
// Возвращается при попытке выдать токен сразу после регистрации.
var ErrPendingApproval = New(
	CodeForbidden,
	"auth",
	"Account pending admin approval",
	http.StatusForbidden,
)

// ErrNotApproved - логин с валидными данными, но аккаунт еще не одобрен
var ErrNotApproved = New(
	CodeForbidden,
	"auth",
	"Account not yet approved by admin",
	http.StatusForbidden,
)

// ErrInvalidToken - подпись не сошлась, токен истек или поврежден
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)
