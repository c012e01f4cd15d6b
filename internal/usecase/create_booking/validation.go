package create_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.OperatorID != nil && *req.OperatorID <= 0 {
		return fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}

	if req.GymID <= 0 {
		return fmt.Errorf("%w: gymID must be positive", ErrInvalidInput)
	}

	if req.CourtNumber <= 0 {
		return fmt.Errorf("%w: courtNumber must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return nil
}

// bookingInterval собирает абсолютный интервал из даты и времени суток.
// Конец 00:00 означает полночь следующего дня.
func bookingInterval(date time.Time, startTime, endTime types.TimeString, loc *time.Location) (time.Time, time.Time, error) {
	y, m, d := date.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, loc)

	start := startTime.On(day)
	end := endTime.On(day)
	if endTime.IsMidnight() {
		end = day.AddDate(0, 0, 1)
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return start, end, nil
}

// validateNotInPast бронь не может начинаться раньше текущего момента
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return ErrInvalidDate
	}
	return nil
}
