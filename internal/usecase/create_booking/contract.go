package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/schedule"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// FacilityRepository интерфейс репозитория спортзалов и кортов
type FacilityRepository interface {
	GetGym(ctx context.Context, id int64) (*domain.Gym, error)
	LockCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// ConflictChecker проверка занятости корта бронированиями и мероприятиями
type ConflictChecker interface {
	FindAnyConflict(ctx context.Context, court domain.CourtRef, start, end time.Time) (*schedule.Conflict, error)
}

// CalendarCache кэш недельных календарей
type CalendarCache interface {
	Invalidate(ctx context.Context, court domain.CourtRef) error
}

// EventPublisher публикация доменных событий
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
