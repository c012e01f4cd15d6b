package get_week_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	getWeekCalendar "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_week_calendar"
)

const (
	msgInvalidGymID       = "некорректный ID спортзала"
	msgInvalidCourtNumber = "некорректный номер корта"
	msgInvalidWeekOffset  = "некорректное смещение недели"
	msgCourtNotFound      = "корт не найден"
)

type Handler struct {
	useCase GetWeekCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/gyms/{gymId}/courts/{courtNumber}/calendar
// Query params: weekOffset (опционально, 0 - текущая неделя)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gymID, err := handlers.PathInt64(r, "gymId")
	if err != nil {
		h.logger.Warn("GET /gyms/{id}/courts/{n}/calendar - Invalid gym ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGymID)
		return
	}

	courtNumber, err := handlers.PathInt(r, "courtNumber")
	if err != nil {
		h.logger.Warn("GET /gyms/{id}/courts/{n}/calendar - Invalid court number: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtNumber)
		return
	}

	useCaseReq, err := ToUseCaseRequest(gymID, courtNumber, r.URL.Query().Get("weekOffset"))
	if err != nil {
		h.logger.Warn("GET /gyms/{id}/courts/{n}/calendar - Invalid week offset: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekOffset)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getWeekCalendar.ErrCourtNotFound):
			h.logger.Warn("GET /gyms/{id}/courts/{n}/calendar - Court not found: gym_id=%d, court=%d", gymID, courtNumber)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, getWeekCalendar.ErrInvalidInput):
			h.logger.Warn("GET /gyms/{id}/courts/{n}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWeekOffset)

		default:
			h.logger.Error("GET /gyms/{id}/courts/{n}/calendar - Failed to build calendar: gym_id=%d, court=%d, error=%v",
				gymID, courtNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /gyms/{id}/courts/{n}/calendar - Calendar built: gym_id=%d, court=%d, week=%s",
		gymID, courtNumber, result.Calendar.WeekStart.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
