package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-GymBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-GymBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgUnauthorized       = "пользователь не авторизован"
	msgInvalidInput       = "некорректный интервал бронирования"
	msgBookingInPast      = "нельзя бронировать в прошлом"
	msgGymNotFound        = "спортзал не найден"
	msgCourtNotFound      = "корт не найден"
	msgCourtUnavailable   = "корт недоступен для бронирования"
	msgUserNotFound       = "пользователь не найден"
	msgUserInactive       = "учетная запись пользователя отключена"
	msgForbidden          = "бронировать за других пользователей могут только стипендиаты и сотрудники"
	msgSlotNotAvailable   = "выбранный интервал недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, nil)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	h.execute(w, r, "POST /bookings", useCaseReq)
}

// HandleOnBehalf POST /api/v1/bookings/on-behalf
func (h *Handler) HandleOnBehalf(w http.ResponseWriter, r *http.Request) {
	operatorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req OnBehalfRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings/on-behalf - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(req.UserID, &operatorID)
	if err != nil {
		h.logger.Warn("POST /bookings/on-behalf - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	h.execute(w, r, "POST /bookings/on-behalf", useCaseReq)
}

func (h *Handler) execute(w http.ResponseWriter, r *http.Request, route string, req *createBooking.Request) {
	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		var conflict *createBooking.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("%s - Slot not available: user_id=%d, court=%d/%d, reason=%s",
				route, req.UserID, req.GymID, req.CourtNumber, conflict.Reason)
			handlers.RespondConflict(w, msgSlotNotAvailable+": "+conflict.Reason)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: user_id=%d, court=%d/%d", route, req.UserID, req.GymID, req.CourtNumber)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("%s - Booking in the past: user_id=%d", route, req.UserID)
			handlers.RespondBadRequest(w, msgBookingInPast)

		case errors.Is(err, createBooking.ErrGymNotFound):
			h.logger.Warn("%s - Gym not found: gym_id=%d", route, req.GymID)
			handlers.RespondNotFound(w, msgGymNotFound)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("%s - Court not found: court=%d/%d", route, req.GymID, req.CourtNumber)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtUnavailable):
			h.logger.Warn("%s - Court unavailable: court=%d/%d", route, req.GymID, req.CourtNumber)
			handlers.RespondConflict(w, msgCourtUnavailable)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("%s - User not found: user_id=%d", route, req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrUserInactive):
			h.logger.Warn("%s - User inactive: user_id=%d", route, req.UserID)
			handlers.RespondForbidden(w, msgUserInactive)

		case errors.Is(err, createBooking.ErrForbidden):
			h.logger.Warn("%s - Operator not allowed: operator_id=%v", route, req.OperatorID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("%s - Failed to create booking: user_id=%d, court=%d/%d, error=%v",
				route, req.UserID, req.GymID, req.CourtNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking created successfully: booking_id=%d, user_id=%d", route, result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
