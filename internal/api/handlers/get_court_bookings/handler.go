package get_court_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

const (
	msgInvalidCourt  = "некорректный спортзал или номер корта"
	msgInvalidPeriod = "некорректный период, ожидается startDate и endDate в формате YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/gyms/{gymId}/courts/{courtNumber}/bookings?startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	gymID, err := handlers.PathInt64(r, "gymId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourt)
		return
	}
	courtNumber, err := handlers.PathInt(r, "courtNumber")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidCourt)
		return
	}

	query := r.URL.Query()
	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		h.logger.Warn("GET /gyms/{id}/courts/{n}/bookings - Invalid startDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		h.logger.Warn("GET /gyms/{id}/courts/{n}/bookings - Invalid endDate: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.GetCourtBookings(r.Context(), &models.GetCourtBookingsRequest{
		GymID:       gymID,
		CourtNumber: courtNumber,
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange), errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /gyms/{id}/courts/{n}/bookings - Failed to get bookings: court=%d/%d, error=%v",
				gymID, courtNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /gyms/{id}/courts/{n}/bookings - Bookings retrieved: court=%d/%d, count=%d",
		gymID, courtNumber, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
