package models

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// CourtResponse заблокированный корт
type CourtResponse struct {
	GymID       int64 `json:"gymId"`
	CourtNumber int   `json:"courtNumber"`
}

// ExtraordinaryEventResponse разовое мероприятие
type ExtraordinaryEventResponse struct {
	ID            int64           `json:"id"`
	OrganizerID   int64           `json:"organizerId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	StartTime     time.Time       `json:"startTime"`
	EndTime       time.Time       `json:"endTime"`
	BlockedCourts []CourtResponse `json:"blockedCourts"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RecurringEventResponse еженедельное мероприятие.
// Weekday, StartTime и EndTime заполняются, если правило удалось разобрать.
type RecurringEventResponse struct {
	ID                int64           `json:"id"`
	OrganizerID       int64           `json:"organizerId"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Rule              string          `json:"rule"`
	Weekday           *int            `json:"weekday,omitempty"`
	StartTime         string          `json:"startTime,omitempty"`
	EndTime           string          `json:"endTime,omitempty"`
	RecurrenceEndDate string          `json:"recurrenceEndDate"`
	BlockedCourts     []CourtResponse `json:"blockedCourts"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// FromDomainExtraordinary конвертирует разовое мероприятие
func FromDomainExtraordinary(e *domain.ExtraordinaryEvent) *ExtraordinaryEventResponse {
	if e == nil {
		return nil
	}
	return &ExtraordinaryEventResponse{
		ID:            e.ID,
		OrganizerID:   e.OrganizerID,
		Name:          e.Name,
		Description:   e.Description,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		BlockedCourts: FromDomainCourts(e.BlockedCourts),
		CreatedAt:     e.CreatedAt,
	}
}

// FromDomainRecurring конвертирует еженедельное мероприятие
func FromDomainRecurring(e *domain.RecurringEvent) *RecurringEventResponse {
	if e == nil {
		return nil
	}
	resp := &RecurringEventResponse{
		ID:                e.ID,
		OrganizerID:       e.OrganizerID,
		Name:              e.Name,
		Description:       e.Description,
		Rule:              e.Rule,
		RecurrenceEndDate: e.RecurrenceEndDate.Format(domain.DateFormat),
		BlockedCourts:     FromDomainCourts(e.BlockedCourts),
		CreatedAt:         e.CreatedAt,
	}

	if rule, err := domain.ParseRule(e.Rule); err == nil {
		weekday := int(rule.Weekday)
		resp.Weekday = &weekday
		resp.StartTime = rule.StartTime.String()
		resp.EndTime = rule.EndTime.String()
	}

	return resp
}

// FromDomainCourts конвертирует список кортов
func FromDomainCourts(refs []domain.CourtRef) []CourtResponse {
	result := make([]CourtResponse, 0, len(refs))
	for _, r := range refs {
		result = append(result, CourtResponse{GymID: r.GymID, CourtNumber: r.Number})
	}
	return result
}
