package domain

import "time"

// BookingStatus статус бронирования корта
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Booking бронирование корта на интервал [StartTime, EndTime)
type Booking struct {
	ID          int64
	UserID      int64 // для кого бронь
	GymID       int64
	CourtNumber int
	StartTime   time.Time
	EndTime     time.Time
	Status      BookingStatus

	// Заполняется, когда бронь создал оператор от имени пользователя
	RequesterID *int64
	OperatedAt  *time.Time
	Reason      *string

	// Денормализованные данные для отображения, могут устаревать
	UserName string
	GymName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Court корт брони
func (b *Booking) Court() CourtRef {
	return CourtRef{GymID: b.GymID, Number: b.CourtNumber}
}

// Occupies true, если бронь занимает корт (все статусы, кроме отмены)
func (b *Booking) Occupies() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled отменить можно только подтвержденную бронь
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}

// CanBeClosed отметить посещение или неявку можно только для подтвержденной брони
func (b *Booking) CanBeClosed() bool {
	return b.Status == StatusConfirmed
}

// IsOperatedBy true, если бронь создана оператором userID
func (b *Booking) IsOperatedBy(userID int64) bool {
	return b.RequesterID != nil && *b.RequesterID == userID
}

// BookingsFilter фильтр выборки бронирований; nil поля не ограничивают выборку
type BookingsFilter struct {
	UserID      *int64
	RequesterID *int64
	GymID       *int64
	CourtNumber *int
	From        *time.Time // start_time >= From
	To          *time.Time // start_time < To
	Status      *BookingStatus

	IncludeCancelled bool
}

// CourtUsage статистика использования корта за период
type CourtUsage struct {
	GymID       int64
	CourtNumber int
	Total       int
	Completed   int
	Cancelled   int
	NoShow      int
}
