package create_recurring_event

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/schedule"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	CreateRecurring(ctx context.Context, event *domain.RecurringEvent) (*domain.RecurringEvent, error)
}

// CourtLocker блокировка строки корта в транзакции
type CourtLocker interface {
	LockCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error)
}

// ConflictChecker проверка правила повторения для корта
type ConflictChecker interface {
	FindRuleConflict(ctx context.Context, court domain.CourtRef, rule domain.RecurrenceRule, today time.Time) (*schedule.Conflict, error)
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
