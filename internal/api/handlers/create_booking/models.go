package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	createBooking "github.com/m04kA/SMC-GymBookingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GymID       int64   `json:"gymId" validate:"required,gt=0"`
	CourtNumber int     `json:"courtNumber" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required"`      // "2024-01-15"
	StartTime   string  `json:"startTime" validate:"required"` // "10:00"
	EndTime     string  `json:"endTime" validate:"required"`   // "11:00", "00:00" - до конца дня
	Reason      *string `json:"reason,omitempty" validate:"omitempty,max=500"`
}

// OnBehalfRequest бронь оператора за другого пользователя
type OnBehalfRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
	CreateBookingRequest
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64   `json:"id"`
	UserID      int64   `json:"userId"`
	GymID       int64   `json:"gymId"`
	CourtNumber int     `json:"courtNumber"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Status      string  `json:"status"`
	RequesterID *int64  `json:"requesterId,omitempty"`
	OperatedAt  *string `json:"operatedAt,omitempty"`
	Reason      *string `json:"reason,omitempty"`
	UserName    string  `json:"userName"`
	GymName     string  `json:"gymName"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64, operatorID *int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		OperatorID:  operatorID,
		GymID:       r.GymID,
		CourtNumber: r.CourtNumber,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Reason:      r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		GymID:       resp.GymID,
		CourtNumber: resp.CourtNumber,
		Date:        resp.StartTime.Format(domain.DateFormat),
		StartTime:   resp.StartTime.Format(domain.TimeFormat),
		EndTime:     resp.EndTime.In(resp.StartTime.Location()).Format(domain.TimeFormat),
		Status:      resp.Status,
		RequesterID: resp.RequesterID,
		Reason:      resp.Reason,
		UserName:    resp.UserName,
		GymName:     resp.GymName,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.OperatedAt != nil {
		operated := resp.OperatedAt.Format(time.RFC3339)
		result.OperatedAt = &operated
	}

	return result
}
