package eventbus

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// Ключи маршрутизации доменных событий
const (
	BookingCreated       = "booking.created"
	BookingCancelled     = "booking.cancelled"
	BookingCompleted     = "booking.completed"
	BookingNoShow        = "booking.no_show"
	ExtraordinaryCreated = "event.extraordinary.created"
	RecurringCreated     = "event.recurring.created"
)

// BookingEvent тело событий booking.*
type BookingEvent struct {
	BookingID   int64     `json:"booking_id"`
	UserID      int64     `json:"user_id"`
	RequesterID *int64    `json:"requester_id,omitempty"`
	GymID       int64     `json:"gym_id"`
	CourtNumber int       `json:"court_number"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	Reason      *string   `json:"reason,omitempty"`
}

// NewBookingEvent событие по бронированию
func NewBookingEvent(b *domain.Booking) BookingEvent {
	return BookingEvent{
		BookingID:   b.ID,
		UserID:      b.UserID,
		RequesterID: b.RequesterID,
		GymID:       b.GymID,
		CourtNumber: b.CourtNumber,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		Reason:      b.Reason,
	}
}

// Court корт в теле события
type Court struct {
	GymID       int64 `json:"gym_id"`
	CourtNumber int   `json:"court_number"`
}

// EventCreated тело событий event.*.created
type EventCreated struct {
	EventID       int64      `json:"event_id"`
	OrganizerID   int64      `json:"organizer_id"`
	Name          string     `json:"name"`
	StartTime     *time.Time `json:"start_time,omitempty"`
	EndTime       *time.Time `json:"end_time,omitempty"`
	Rule          string     `json:"rule,omitempty"`
	EndDate       string     `json:"recurrence_end_date,omitempty"`
	BlockedCourts []Court    `json:"blocked_courts"`
}

// NewExtraordinaryCreated событие о новом разовом мероприятии
func NewExtraordinaryCreated(e *domain.ExtraordinaryEvent) EventCreated {
	start, end := e.StartTime, e.EndTime
	return EventCreated{
		EventID:       e.ID,
		OrganizerID:   e.OrganizerID,
		Name:          e.Name,
		StartTime:     &start,
		EndTime:       &end,
		BlockedCourts: courts(e.BlockedCourts),
	}
}

// NewRecurringCreated событие о новом еженедельном мероприятии
func NewRecurringCreated(e *domain.RecurringEvent) EventCreated {
	return EventCreated{
		EventID:       e.ID,
		OrganizerID:   e.OrganizerID,
		Name:          e.Name,
		Rule:          e.Rule,
		EndDate:       e.RecurrenceEndDate.Format(domain.DateFormat),
		BlockedCourts: courts(e.BlockedCourts),
	}
}

func courts(refs []domain.CourtRef) []Court {
	result := make([]Court, 0, len(refs))
	for _, r := range refs {
		result = append(result, Court{GymID: r.GymID, CourtNumber: r.Number})
	}
	return result
}
