package create_extraordinary_event

import (
	"context"

	createEvent "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_extraordinary_event"
)

type CreateEventUseCase interface {
	Execute(ctx context.Context, req *createEvent.Request) (*createEvent.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
