package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TokenIssuer выпуск access токенов
type TokenIssuer interface {
	Issue(userID int64, role, email string, scholarshipHolder bool) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
