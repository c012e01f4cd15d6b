package manage_facilities

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/facilities"
	"github.com/m04kA/SMC-GymBookingService/internal/service/facilities/models"
)

const (
	msgInvalidID          = "некорректный идентификатор"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные"
	msgGymNotFound        = "спортзал не найден"
	msgCourtNotFound      = "корт не найден"
	msgSportNotFound      = "вид спорта не найден"
	msgCourtExists        = "корт с таким номером уже существует"
	msgSportExists        = "вид спорта уже существует"
	msgInUse              = "запись используется бронированиями или мероприятиями"
)

type Handler struct {
	service FacilityService
	logger  Logger
}

func NewHandler(service FacilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Спортзалы

// CreateGym POST /api/v1/gyms
func (h *Handler) CreateGym(w http.ResponseWriter, r *http.Request) {
	var req models.GymRequest
	if !h.decode(w, r, "POST /gyms", &req) {
		return
	}

	result, err := h.service.CreateGym(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /gyms", err)
		return
	}

	h.logger.Info("POST /gyms - Gym created: gym_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// GetGym GET /api/v1/gyms/{gymId}
func (h *Handler) GetGym(w http.ResponseWriter, r *http.Request) {
	gymID, ok := h.pathID(w, r, "gymId")
	if !ok {
		return
	}

	result, err := h.service.GetGym(r.Context(), gymID)
	if err != nil {
		h.respondError(w, "GET /gyms/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListGyms GET /api/v1/gyms
func (h *Handler) ListGyms(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListGyms(r.Context())
	if err != nil {
		h.respondError(w, "GET /gyms", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateGym PUT /api/v1/gyms/{gymId}
func (h *Handler) UpdateGym(w http.ResponseWriter, r *http.Request) {
	gymID, ok := h.pathID(w, r, "gymId")
	if !ok {
		return
	}

	var req models.GymRequest
	if !h.decode(w, r, "PUT /gyms/{id}", &req) {
		return
	}

	result, err := h.service.UpdateGym(r.Context(), gymID, &req)
	if err != nil {
		h.respondError(w, "PUT /gyms/{id}", err)
		return
	}

	h.logger.Info("PUT /gyms/{id} - Gym updated: gym_id=%d", gymID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteGym DELETE /api/v1/gyms/{gymId}
func (h *Handler) DeleteGym(w http.ResponseWriter, r *http.Request) {
	gymID, ok := h.pathID(w, r, "gymId")
	if !ok {
		return
	}

	if err := h.service.DeleteGym(r.Context(), gymID); err != nil {
		h.respondError(w, "DELETE /gyms/{id}", err)
		return
	}

	h.logger.Info("DELETE /gyms/{id} - Gym deleted: gym_id=%d", gymID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Корты

// CreateCourt POST /api/v1/gyms/{gymId}/courts
func (h *Handler) CreateCourt(w http.ResponseWriter, r *http.Request) {
	gymID, ok := h.pathID(w, r, "gymId")
	if !ok {
		return
	}

	var req models.CreateCourtRequest
	if !h.decode(w, r, "POST /gyms/{id}/courts", &req) {
		return
	}

	result, err := h.service.CreateCourt(r.Context(), gymID, &req)
	if err != nil {
		h.respondError(w, "POST /gyms/{id}/courts", err)
		return
	}

	h.logger.Info("POST /gyms/{id}/courts - Court created: gym_id=%d, number=%d", gymID, result.Number)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListCourts GET /api/v1/gyms/{gymId}/courts
func (h *Handler) ListCourts(w http.ResponseWriter, r *http.Request) {
	gymID, ok := h.pathID(w, r, "gymId")
	if !ok {
		return
	}

	result, err := h.service.ListCourts(r.Context(), gymID)
	if err != nil {
		h.respondError(w, "GET /gyms/{id}/courts", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateCourt PUT /api/v1/gyms/{gymId}/courts/{courtNumber}
func (h *Handler) UpdateCourt(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.courtRef(w, r)
	if !ok {
		return
	}

	var req models.UpdateCourtRequest
	if !h.decode(w, r, "PUT /gyms/{id}/courts/{n}", &req) {
		return
	}

	result, err := h.service.UpdateCourt(r.Context(), ref, &req)
	if err != nil {
		h.respondError(w, "PUT /gyms/{id}/courts/{n}", err)
		return
	}

	h.logger.Info("PUT /gyms/{id}/courts/{n} - Court updated: court=%s", ref)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ChangeCourtStatus PATCH /api/v1/gyms/{gymId}/courts/{courtNumber}/status
func (h *Handler) ChangeCourtStatus(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.courtRef(w, r)
	if !ok {
		return
	}

	var req models.CourtStatusRequest
	if !h.decode(w, r, "PATCH /gyms/{id}/courts/{n}/status", &req) {
		return
	}

	if err := h.service.ChangeCourtStatus(r.Context(), ref, &req); err != nil {
		h.respondError(w, "PATCH /gyms/{id}/courts/{n}/status", err)
		return
	}

	h.logger.Info("PATCH /gyms/{id}/courts/{n}/status - Court %s is now %s", ref, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// SetCourtSports PUT /api/v1/gyms/{gymId}/courts/{courtNumber}/sports
func (h *Handler) SetCourtSports(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.courtRef(w, r)
	if !ok {
		return
	}

	var req models.CourtSportsRequest
	if !h.decode(w, r, "PUT /gyms/{id}/courts/{n}/sports", &req) {
		return
	}

	if err := h.service.SetCourtSports(r.Context(), ref, &req); err != nil {
		h.respondError(w, "PUT /gyms/{id}/courts/{n}/sports", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// DeleteCourt DELETE /api/v1/gyms/{gymId}/courts/{courtNumber}
func (h *Handler) DeleteCourt(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.courtRef(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteCourt(r.Context(), ref); err != nil {
		h.respondError(w, "DELETE /gyms/{id}/courts/{n}", err)
		return
	}

	h.logger.Info("DELETE /gyms/{id}/courts/{n} - Court deleted: court=%s", ref)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Виды спорта

// CreateSport POST /api/v1/sports
func (h *Handler) CreateSport(w http.ResponseWriter, r *http.Request) {
	var req models.SportRequest
	if !h.decode(w, r, "POST /sports", &req) {
		return
	}

	result, err := h.service.CreateSport(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /sports", err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListSports GET /api/v1/sports
func (h *Handler) ListSports(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSports(r.Context())
	if err != nil {
		h.respondError(w, "GET /sports", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateSport PUT /api/v1/sports/{sportId}
func (h *Handler) UpdateSport(w http.ResponseWriter, r *http.Request) {
	sportID, ok := h.pathID(w, r, "sportId")
	if !ok {
		return
	}

	var req models.SportRequest
	if !h.decode(w, r, "PUT /sports/{id}", &req) {
		return
	}

	result, err := h.service.UpdateSport(r.Context(), sportID, &req)
	if err != nil {
		h.respondError(w, "PUT /sports/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteSport DELETE /api/v1/sports/{sportId}
func (h *Handler) DeleteSport(w http.ResponseWriter, r *http.Request) {
	sportID, ok := h.pathID(w, r, "sportId")
	if !ok {
		return
	}

	if err := h.service.DeleteSport(r.Context(), sportID); err != nil {
		h.respondError(w, "DELETE /sports/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Вспомогательные методы

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, dst interface{}) bool {
	if err := handlers.DecodeAndValidate(r, dst); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := handlers.PathInt64(r, name)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return 0, false
	}
	return id, true
}

func (h *Handler) courtRef(w http.ResponseWriter, r *http.Request) (domain.CourtRef, bool) {
	gymID, err := handlers.PathInt64(r, "gymId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return domain.CourtRef{}, false
	}
	number, err := handlers.PathInt(r, "courtNumber")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return domain.CourtRef{}, false
	}
	return domain.CourtRef{GymID: gymID, Number: number}, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, facilities.ErrGymNotFound):
		handlers.RespondNotFound(w, msgGymNotFound)

	case errors.Is(err, facilities.ErrCourtNotFound):
		handlers.RespondNotFound(w, msgCourtNotFound)

	case errors.Is(err, facilities.ErrSportNotFound):
		handlers.RespondNotFound(w, msgSportNotFound)

	case errors.Is(err, facilities.ErrCourtAlreadyExists):
		h.logger.Warn("%s - Court already exists", route)
		handlers.RespondConflict(w, msgCourtExists)

	case errors.Is(err, facilities.ErrSportAlreadyExists):
		handlers.RespondConflict(w, msgSportExists)

	case errors.Is(err, facilities.ErrInUse):
		h.logger.Warn("%s - Entity in use: %v", route, err)
		handlers.RespondConflict(w, msgInUse)

	case errors.Is(err, facilities.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
