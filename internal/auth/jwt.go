package auth

import (
	"errors"
	"time"

	"ecolearn_backend/internal/config"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims - полезная нагрузка токена.
// Subject = email, плюс роль и профильные поля для фронта.
type Claims struct {
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	UserID    string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken выдает подписанный HS256 токен для пользователя.
// Ключ подписи - process-wide значение из конфига, после старта не меняется.
func GenerateToken(user *models.User) (string, error) {
	cfg := config.GetConfig()

	now := time.Now()
	claims := Claims{
		Role:      string(user.Role),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserID:    user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken проверяет подпись и срок действия, возвращает claims.
// Любая проблема (подпись, структура, истекший exp) - одна и та же ошибка:
// вызывающая сторона не должна различать причины.
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWT.Secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}
