package usage_report

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

const msgInvalidParams = "ожидаются gymId, startDate и endDate (YYYY-MM-DD)"

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

// Handle GET /api/v1/reports/usage?gymId=&startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseRequest(r)
	if err != nil {
		h.logger.Warn("GET /reports/usage - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	report, err := h.service.UsageReport(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput), errors.Is(err, bookings.ErrInvalidTimeRange):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /reports/usage - Failed to build report: gym_id=%d, error=%v", req.GymID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reports/usage - Report built: gym_id=%d, courts=%d", req.GymID, len(report.Courts))
	handlers.RespondJSON(w, http.StatusOK, report)
}

func parseRequest(r *http.Request) (*models.UsageReportRequest, error) {
	query := r.URL.Query()

	gymID, err := strconv.ParseInt(query.Get("gymId"), 10, 64)
	if err != nil {
		return nil, err
	}
	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		return nil, err
	}
	endDate, err := time.Parse(domain.DateFormat, query.Get("endDate"))
	if err != nil {
		return nil, err
	}

	return &models.UsageReportRequest{GymID: gymID, StartDate: startDate, EndDate: endDate}, nil
}
