package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	GetExtraordinary(ctx context.Context, id int64) (*domain.ExtraordinaryEvent, error)
	ListExtraordinary(ctx context.Context, from, to *time.Time) ([]*domain.ExtraordinaryEvent, error)
	DeleteExtraordinary(ctx context.Context, id int64) error

	GetRecurring(ctx context.Context, id int64) (*domain.RecurringEvent, error)
	ListRecurring(ctx context.Context, activeFrom *time.Time) ([]*domain.RecurringEvent, error)
	DeleteRecurring(ctx context.Context, id int64) error
}

// CalendarCache кэш недельных календарей
type CalendarCache interface {
	Invalidate(ctx context.Context, court domain.CourtRef) error
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

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
