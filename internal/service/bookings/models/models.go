package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	Actor  domain.Actor
	Reason *string `json:"reason,omitempty"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetCourtBookingsRequest запрос бронирований корта за период [StartDate, EndDate]
type GetCourtBookingsRequest struct {
	GymID       int64
	CourtNumber int
	StartDate   time.Time
	EndDate     time.Time
}

// ListBookingsRequest запрос администратора на список всех бронирований
type ListBookingsRequest struct {
	GymID            *int64
	Status           *string
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeCancelled bool
}

// UsageReportRequest запрос отчета об использовании кортов
type UsageReportRequest struct {
	GymID     int64
	StartDate time.Time
	EndDate   time.Time
}

// ToDomainFilter конвертирует request в domain фильтр; EndDate включительно
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		GymID:            r.GymID,
		From:             r.StartDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.EndDate != nil {
		to := r.EndDate.AddDate(0, 0, 1)
		filter.To = &to
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"userId"`
	GymID       int64     `json:"gymId"`
	CourtNumber int       `json:"courtNumber"`
	Date        string    `json:"date"`      // "2024-01-15"
	StartTime   string    `json:"startTime"` // "10:00"
	EndTime     string    `json:"endTime"`   // "11:00"
	Status      string    `json:"status"`
	RequesterID *int64    `json:"requesterId,omitempty"`
	OperatedAt  *string   `json:"operatedAt,omitempty"` // ISO 8601 format
	Reason      *string   `json:"reason,omitempty"`

	// Денормализованные данные
	UserName string `json:"userName"`
	GymName  string `json:"gymName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CourtUsageResponse статистика корта
type CourtUsageResponse struct {
	CourtNumber int `json:"courtNumber"`
	Total       int `json:"total"`
	Completed   int `json:"completed"`
	Cancelled   int `json:"cancelled"`
	NoShow      int `json:"noShow"`
}

// UsageReportResponse отчет об использовании кортов спортзала
type UsageReportResponse struct {
	GymID     int64                `json:"gymId"`
	StartDate string               `json:"startDate"`
	EndDate   string               `json:"endDate"`
	Courts    []CourtUsageResponse `json:"courts"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO.
// Дата и время выводятся в часовом поясе начала брони.
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		GymID:       b.GymID,
		CourtNumber: b.CourtNumber,
		Date:        b.StartTime.Format(domain.DateFormat),
		StartTime:   b.StartTime.Format(domain.TimeFormat),
		EndTime:     b.EndTime.In(b.StartTime.Location()).Format(domain.TimeFormat),
		Status:      string(b.Status),
		RequesterID: b.RequesterID,
		Reason:      b.Reason,
		UserName:    b.UserName,
		GymName:     b.GymName,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}

	if b.OperatedAt != nil {
		operatedStr := b.OperatedAt.Format(time.RFC3339)
		resp.OperatedAt = &operatedStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainUsage конвертирует статистику кортов
func FromDomainUsage(req *UsageReportRequest, usage []*domain.CourtUsage) *UsageReportResponse {
	resp := &UsageReportResponse{
		GymID:     req.GymID,
		StartDate: req.StartDate.Format(domain.DateFormat),
		EndDate:   req.EndDate.Format(domain.DateFormat),
		Courts:    make([]CourtUsageResponse, 0, len(usage)),
	}

	for _, u := range usage {
		resp.Courts = append(resp.Courts, CourtUsageResponse{
			CourtNumber: u.CourtNumber,
			Total:       u.Total,
			Completed:   u.Completed,
			Cancelled:   u.Cancelled,
			NoShow:      u.NoShow,
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
