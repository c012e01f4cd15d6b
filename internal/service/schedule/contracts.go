package schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// BookingFinder поиск бронирований, пересекающихся с интервалом
type BookingFinder interface {
	FindOverlapping(ctx context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.Booking, error)
}

// EventFinder поиск мероприятий, блокирующих корт
type EventFinder interface {
	FindExtraordinaryOverlapping(ctx context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.ExtraordinaryEvent, error)
	FindRecurringByCourt(ctx context.Context, court domain.CourtRef, activeFrom time.Time) ([]*domain.RecurringEvent, error)
}

// Metrics счетчики конфликтов
type Metrics interface {
	IncConflict(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
