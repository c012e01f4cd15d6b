package create_recurring_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/service/events/models"
	createRecurring "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_recurring_event"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFormat      = "некорректное время или дата, ожидается HH:MM и YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректное правило повторения"
	msgInvalidEndDate     = "дата окончания повторений в прошлом"
	msgCourtNotFound      = "корт не найден"
	msgSlotNotAvailable   = "корт занят в одном из повторений"
)

type Handler struct {
	useCase CreateRecurringUseCase
	logger  Logger
}

func NewHandler(useCase CreateRecurringUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/events/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	organizerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateRecurringRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /events/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(organizerID)
	if err != nil {
		h.logger.Warn("POST /events/recurring - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *createRecurring.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /events/recurring - Court %s busy: %s", conflict.Court, conflict.Reason)
			handlers.RespondConflict(w, msgSlotNotAvailable+": "+conflict.Court+": "+conflict.Reason)

		case errors.Is(err, createRecurring.ErrInvalidEndDate):
			h.logger.Warn("POST /events/recurring - End date in the past: %s", req.RecurrenceEndDate)
			handlers.RespondBadRequest(w, msgInvalidEndDate)

		case errors.Is(err, createRecurring.ErrCourtNotFound):
			h.logger.Warn("POST /events/recurring - Court not found: %v", err)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createRecurring.ErrInvalidInput):
			h.logger.Warn("POST /events/recurring - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /events/recurring - Failed to create event: organizer_id=%d, error=%v", organizerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /events/recurring - Event created: event_id=%d, rule=%q", result.Event.ID, result.Event.Rule)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainRecurring(result.Event))
}
