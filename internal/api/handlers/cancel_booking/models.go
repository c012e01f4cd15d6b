package cancel_booking

import (
	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model; тело необязательно
type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(actor domain.Actor) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Actor:  actor,
		Reason: r.Reason,
	}
}
