package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	userRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-GymBookingService/internal/service/users/models"
)

// Service сервис управления пользователями
type Service struct {
	userRepo UserRepository
	hasher   PasswordHasher
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, hasher PasswordHasher, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Create создает активного пользователя
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: creating user email=%s role=%s", req.Email, req.Role)

	profile, err := req.ToDomainProfile()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Create: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Create - hash password: %v", ErrInternal, err)
	}

	user, err := s.userRepo.Create(ctx, &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		CPF:          req.CPF,
		PasswordHash: hash,
		Status:       domain.UserActive,
		Profile:      profile,
	})
	if err != nil {
		if errors.Is(err, userRepo.ErrUserAlreadyExists) {
			s.logger.Warn("Create: user email=%s already exists", req.Email)
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created user id=%d", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainUser(user), nil
}

// List возвращает всех пользователей
func (s *Service) List(ctx context.Context) (*models.UserListResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUserList(users), nil
}

// Search ищет активных пользователей по началу имени или CPF
func (s *Service) Search(ctx context.Context, q string) (*models.UserListResponse, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < domain.MinUserSearchQuery {
		return nil, fmt.Errorf("%w: query must be at least %d characters", ErrInvalidInput, domain.MinUserSearchQuery)
	}

	users, err := s.userRepo.Search(ctx, q, domain.UserSearchLimit)
	if err != nil {
		s.logger.Error("Search: repository error for q=%q: %v", q, err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUserList(users), nil
}

// Update обновляет данные пользователя; пароль меняется, только если передан
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d", id)

	user, err := s.get(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	profile, err := req.ToDomainProfile()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	user.Name = strings.TrimSpace(req.Name)
	user.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user.CPF = req.CPF
	user.Profile = profile
	user.PasswordHash = ""

	if req.Password != "" {
		hash, err := s.hasher.Hash(req.Password)
		if err != nil {
			s.logger.Error("Update: failed to hash password: %v", err)
			return nil, fmt.Errorf("%w: Update - hash password: %v", ErrInternal, err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, s.mapWriteError("Update", id, err)
	}

	return models.FromDomainUser(user), nil
}

// ToggleStatus переключает active <-> inactive
func (s *Service) ToggleStatus(ctx context.Context, id int64) (*models.UserResponse, error) {
	user, err := s.get(ctx, "ToggleStatus", id)
	if err != nil {
		return nil, err
	}

	user.Status = user.Status.Toggled()
	if err := s.userRepo.UpdateStatus(ctx, id, user.Status); err != nil {
		return nil, s.mapWriteError("ToggleStatus", id, err)
	}

	s.logger.Info("ToggleStatus: user id=%d is now %s", id, user.Status)
	return models.FromDomainUser(user), nil
}

// Delete удаляет пользователя
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return s.mapWriteError("Delete", id, err)
	}
	s.logger.Info("Delete: successfully deleted user id=%d", id)
	return nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("%s: user id=%d not found", op, id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return user, nil
}

func (s *Service) mapWriteError(op string, id int64, err error) error {
	switch {
	case errors.Is(err, userRepo.ErrUserNotFound):
		return ErrUserNotFound
	case errors.Is(err, userRepo.ErrUserAlreadyExists):
		return ErrUserAlreadyExists
	case errors.Is(err, userRepo.ErrUserInUse):
		return ErrUserInUse
	}
	s.logger.Error("%s: repository error for user id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
