package close_booking

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

type BookingService interface {
	Complete(ctx context.Context, bookingID int64, actor domain.Actor) error
	NoShow(ctx context.Context, bookingID int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
