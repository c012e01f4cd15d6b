package list_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(
	gymIDStr string,
	statusStr string,
	startDateStr string,
	endDateStr string,
	includeCancelledStr string,
) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{
		IncludeCancelled: true, // Администратор по умолчанию видит все
	}

	// Парсим gymId если указан
	if gymIDStr != "" {
		gymID, err := strconv.ParseInt(gymIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.GymID = &gymID
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// Период [startDate, endDate] включительно
	if startDateStr != "" {
		date, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}
	if endDateStr != "" {
		date, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("endDate %s is before startDate %s", endDateStr, startDateStr)
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
