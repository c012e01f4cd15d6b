package manage_events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/service/events/models"
)

type EventService interface {
	ListExtraordinary(ctx context.Context, from, to *time.Time) ([]models.ExtraordinaryEventResponse, error)
	ListRecurring(ctx context.Context, activeOnly bool) ([]models.RecurringEventResponse, error)
	DeleteExtraordinary(ctx context.Context, id int64) error
	DeleteRecurring(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
