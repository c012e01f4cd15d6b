package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GymBookingService/internal/service/auth/models"
)

// Service вход по email и паролю
type Service struct {
	userRepo UserRepository
	issuer   TokenIssuer
	logger   Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(userRepo UserRepository, issuer TokenIssuer, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Login проверяет пароль и выпускает токен.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.logger.Warn("Login: user id=%d is inactive", user.ID)
		return nil, ErrUserInactive
	}

	token, expiresAt, err := s.issuer.Issue(user.ID, string(user.Role()), user.Email, user.IsScholarshipHolder())
	if err != nil {
		s.logger.Error("Login: failed to issue token for user id=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%d role=%s logged in", user.ID, user.Role())
	return &models.LoginResponse{
		Token:             token,
		ExpiresAt:         expiresAt,
		UserID:            user.ID,
		Name:              user.Name,
		Role:              string(user.Role()),
		ScholarshipHolder: user.IsScholarshipHolder(),
	}, nil
}
