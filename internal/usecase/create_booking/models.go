package create_booking

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID      int64            // для кого бронь
	OperatorID  *int64           // кто бронирует за пользователя; nil - бронирует сам
	GymID       int64            // ID спортзала
	CourtNumber int              // номер корта в спортзале
	Date        time.Time        // дата (без времени)
	StartTime   types.TimeString // "HH:MM"
	EndTime     types.TimeString // "HH:MM", 00:00 - конец дня
	Reason      *string          // комментарий оператора
}

// IsOnBehalf бронь создается оператором за другого пользователя
func (r *Request) IsOnBehalf() bool {
	return r.OperatorID != nil
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	UserID      int64
	GymID       int64
	CourtNumber int
	StartTime   time.Time
	EndTime     time.Time
	Status      string
	RequesterID *int64
	OperatedAt  *time.Time
	Reason      *string

	// Денормализованные данные
	UserName string
	GymName  string

	CreatedAt time.Time
	UpdatedAt time.Time
}
