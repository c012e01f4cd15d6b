package create_extraordinary_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/service/events/models"
	createEvent "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_extraordinary_event"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные мероприятия"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotAvailable   = "корт занят в интервале мероприятия"
)

type Handler struct {
	useCase CreateEventUseCase
	logger  Logger
}

func NewHandler(useCase CreateEventUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/extraordinary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateEventRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /events/extraordinary - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(organizerID))
	if err != nil {
		var conflict *createEvent.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /events/extraordinary - Court %s busy: %s", conflict.Court, conflict.Reason)
			handlers.RespondConflict(w, msgSlotNotAvailable+": "+conflict.Court+": "+conflict.Reason)

		case errors.Is(err, createEvent.ErrCourtNotFound):
			h.logger.Warn("POST /events/extraordinary - Court not found: %v", err)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createEvent.ErrInvalidInput):
			h.logger.Warn("POST /events/extraordinary - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/extraordinary - Failed to create event: organizer_id=%d, error=%v", organizerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/extraordinary - Event created: event_id=%d, organizer_id=%d", result.Event.ID, organizerID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainExtraordinary(result.Event))
}
