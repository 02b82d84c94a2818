package services

import (
	"ecolearn_backend/internal/auth"
	"ecolearn_backend/internal/models"
	"ecolearn_backend/internal/services/dto"
	"ecolearn_backend/pkg/apperrors"
)

type AuthService interface {
	// SignUp регистрирует аккаунт и, если он сразу включен, выдает токен
	SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, error)
	// Login проверяет учетные данные и ворота одобрения, выдает токен
	Login(req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type AuthServiceImpl struct {
	userService UserService
}

func NewAuthService(userService UserService) AuthService {
	return &AuthServiceImpl{userService: userService}
}

func (s *AuthServiceImpl) SignUp(req *dto.SignUpRequest) (*dto.AuthResponse, error) {
	user, err := s.userService.CreateWithRole(req)
	if err != nil {
		return nil, err
	}

	// Ворота одобрения: токен выдается только включенным аккаунтам.
	// Аккаунт при этом создан и остается в очереди на одобрение.
	if !user.Enabled {
		return nil, apperrors.ErrPendingApproval
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userService.ValidateUser(req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	if !user.Enabled {
		return nil, apperrors.ErrNotApproved
	}

	return s.issueToken(user)
}

func (s *AuthServiceImpl) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.UserResponseFromModel(user),
	}, nil
}
