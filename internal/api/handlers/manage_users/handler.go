package manage_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-GymBookingService/internal/service/users"
	"github.com/m04kA/SMC-GymBookingService/internal/service/users/models"
)

const (
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные пользователя"
	msgShortQuery         = "запрос поиска слишком короткий"
	msgNotFound           = "пользователь не найден"
	msgAlreadyExists      = "пользователь с таким email или CPF уже существует"
	msgInUse              = "у пользователя есть бронирования или мероприятия"
	msgForbidden          = "поиск доступен стипендиатам и сотрудникам"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /users", 0, err)
		return
	}

	h.logger.Info("POST /users - User created: user_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/users/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r, "GET /users/{id}")
	if !ok {
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /users/{id}", id, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, "GET /users", 0, err)
		return
	}

	h.logger.Info("GET /users - Users retrieved: count=%d", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result.Users)
}

// Search GET /api/v1/users/search?q=
// Операторы ищут пользователя, за которого бронируют.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}
	if !actor.CanOperate() {
		h.logger.Warn("GET /users/search - Access denied: user_id=%d", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		if errors.Is(err, users.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgShortQuery)
			return
		}
		h.respondError(w, "GET /users/search", 0, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Users)
}

// Update PUT /api/v1/users/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r, "PUT /users/{id}")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /users/{id}", id, err)
		return
	}

	h.logger.Info("PUT /users/{id} - User updated: user_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ToggleStatus PATCH /api/v1/users/{id}/status
func (h *Handler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r, "PATCH /users/{id}/status")
	if !ok {
		return
	}

	result, err := h.service.ToggleStatus(r.Context(), id)
	if err != nil {
		h.respondError(w, "PATCH /users/{id}/status", id, err)
		return
	}

	h.logger.Info("PATCH /users/{id}/status - User status changed: user_id=%d, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/users/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.userID(w, r, "DELETE /users/{id}")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /users/{id}", id, err)
		return
	}

	h.logger.Info("DELETE /users/{id} - User deleted: user_id=%d", id)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	id, err := handlers.PathInt64(r, "id")
	if err != nil {
		h.logger.Warn("%s - Invalid user ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, id int64, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		h.logger.Warn("%s - User not found: user_id=%d", route, id)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, users.ErrUserAlreadyExists):
		h.logger.Warn("%s - Duplicate user: %v", route, err)
		handlers.RespondConflict(w, msgAlreadyExists)

	case errors.Is(err, users.ErrUserInUse):
		h.logger.Warn("%s - User in use: user_id=%d", route, id)
		handlers.RespondConflict(w, msgInUse)

	case errors.Is(err, users.ErrInvalidInput):
		h.logger.Warn("%s - Invalid data: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidData)

	default:
		h.logger.Error("%s - Failed: user_id=%d, error=%v", route, id, err)
		handlers.RespondInternalError(w)
	}
}
