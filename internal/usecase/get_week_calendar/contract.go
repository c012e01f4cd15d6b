package get_week_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// CourtRepository интерфейс репозитория кортов
type CourtRepository interface {
	GetCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// FindOverlapping неотмененные брони корта, пересекающиеся с [start, end)
	FindOverlapping(ctx context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.Booking, error)
}

// EventRepository интерфейс репозитория мероприятий
type EventRepository interface {
	FindExtraordinaryOverlapping(ctx context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.ExtraordinaryEvent, error)
	FindRecurringByCourt(ctx context.Context, court domain.CourtRef, activeFrom time.Time) ([]*domain.RecurringEvent, error)
}

// CalendarBuilder построение недельной сетки
type CalendarBuilder interface {
	Build(
		court domain.CourtRef,
		weekOffset int,
		weekStart time.Time,
		bookings []*domain.Booking,
		extraordinary []*domain.ExtraordinaryEvent,
		recurring []*domain.RecurringEvent,
	) *domain.WeekCalendar
}

// CalendarCache кэш недельных календарей
type CalendarCache interface {
	Get(ctx context.Context, court domain.CourtRef, weekStart time.Time) (*domain.WeekCalendar, int64, bool)
	Set(ctx context.Context, cal *domain.WeekCalendar, version int64)
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
