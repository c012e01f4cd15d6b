package manage_inventory

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/service/inventory"
	"github.com/m04kA/SMC-GymBookingService/internal/service/inventory/models"
)

const (
	msgInvalidID          = "некорректный идентификатор"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные"
	msgInvalidQuantity    = "доступное количество должно быть от 0 до общего количества"
	msgMaterialNotFound   = "инвентарь не найден"
	msgTicketNotFound     = "заявка не найдена"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service InventoryService
	logger  Logger
}

func NewHandler(service InventoryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateMaterial POST /api/v1/materials
func (h *Handler) CreateMaterial(w http.ResponseWriter, r *http.Request) {
	var req models.MaterialRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /materials - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateMaterial(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /materials", err)
		return
	}

	h.logger.Info("POST /materials - Material created: material_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListMaterials GET /api/v1/materials?gymId=
func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	var gymID *int64
	if v := r.URL.Query().Get("gymId"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidID)
			return
		}
		gymID = &parsed
	}

	result, err := h.service.ListMaterials(r.Context(), gymID)
	if err != nil {
		h.respondError(w, "GET /materials", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// UpdateMaterial PUT /api/v1/materials/{id}
func (h *Handler) UpdateMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.MaterialRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /materials/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateMaterial(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /materials/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// DeleteMaterial DELETE /api/v1/materials/{id}
func (h *Handler) DeleteMaterial(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.DeleteMaterial(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /materials/{id}", err)
		return
	}

	h.logger.Info("DELETE /materials/{id} - Material deleted: material_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// OpenTicket POST /api/v1/tickets
// Заявку может открыть любой авторизованный пользователь.
func (h *Handler) OpenTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateTicketRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /tickets - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.OpenedBy = userID

	result, err := h.service.OpenTicket(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /tickets", err)
		return
	}

	h.logger.Info("POST /tickets - Ticket opened: ticket_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// ListTickets GET /api/v1/tickets?status=
func (h *Handler) ListTickets(w http.ResponseWriter, r *http.Request) {
	var status *string
	if v := r.URL.Query().Get("status"); v != "" {
		status = &v
	}

	result, err := h.service.ListTickets(r.Context(), status)
	if err != nil {
		h.respondError(w, "GET /tickets", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// ChangeTicketStatus PATCH /api/v1/tickets/{id}/status
func (h *Handler) ChangeTicketStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req models.TicketStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /tickets/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeTicketStatus(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PATCH /tickets/{id}/status", err)
		return
	}

	h.logger.Info("PATCH /tickets/{id}/status - Ticket %d is now %s", id, req.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, inventory.ErrMaterialNotFound):
		handlers.RespondNotFound(w, msgMaterialNotFound)

	case errors.Is(err, inventory.ErrTicketNotFound):
		handlers.RespondNotFound(w, msgTicketNotFound)

	case errors.Is(err, inventory.ErrInvalidQuantity):
		h.logger.Warn("%s - Invalid quantity", route)
		handlers.RespondBadRequest(w, msgInvalidQuantity)

	case errors.Is(err, inventory.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
