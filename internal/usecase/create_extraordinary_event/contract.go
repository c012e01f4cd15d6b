package create_extraordinary_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/schedule"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	CreateExtraordinary(ctx context.Context, event *domain.ExtraordinaryEvent) (*domain.ExtraordinaryEvent, error)
}

// CourtLocker блокировка строки корта в транзакции
type CourtLocker interface {
	LockCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error)
}

// ConflictChecker проверка занятости корта
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
