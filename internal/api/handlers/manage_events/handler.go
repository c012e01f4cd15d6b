package manage_events

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/events"
)

const (
	msgInvalidParams  = "некорректные параметры запроса"
	msgInvalidEventID = "некорректный ID мероприятия"
	msgNotFound       = "мероприятие не найдено"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ListExtraordinary GET /api/v1/events/extraordinary?from=&to=
func (h *Handler) ListExtraordinary(w http.ResponseWriter, r *http.Request) {
	from, err := queryDate(r, "from")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := queryDate(r, "to")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	if to != nil {
		next := to.AddDate(0, 0, 1)
		to = &next
	}

	result, err := h.service.ListExtraordinary(r.Context(), from, to)
	if err != nil {
		h.logger.Error("GET /events/extraordinary - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /events/extraordinary - Events retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListRecurring GET /api/v1/events/recurring?activeOnly=true
func (h *Handler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	activeOnly := false
	if v := r.URL.Query().Get("activeOnly"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		activeOnly = parsed
	}

	result, err := h.service.ListRecurring(r.Context(), activeOnly)
	if err != nil {
		h.logger.Error("GET /events/recurring - Failed to list events: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /events/recurring - Events retrieved: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteExtraordinary DELETE /api/v1/events/extraordinary/{id}
func (h *Handler) DeleteExtraordinary(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "DELETE /events/extraordinary/{id}", h.service.DeleteExtraordinary)
}

// DeleteRecurring DELETE /api/v1/events/recurring/{id}
func (h *Handler) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, "DELETE /events/recurring/{id}", h.service.DeleteRecurring)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, route string, deleteFn func(ctx context.Context, id int64) error) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid event ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	if err := deleteFn(r.Context(), id); err != nil {
		if errors.Is(err, events.ErrEventNotFound) {
			h.logger.Warn("%s - Event not found: event_id=%d", route, id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("%s - Failed to delete event: event_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("%s - Event deleted: event_id=%d", route, id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func queryDate(r *http.Request, name string) (*time.Time, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	date, err := time.Parse(domain.DateFormat, v)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
