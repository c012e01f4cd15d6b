package get_week_calendar

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	getWeekCalendar "github.com/m04kA/SMC-GymBookingService/internal/usecase/get_week_calendar"
)

// WeekCalendarResponse HTTP response model
type WeekCalendarResponse struct {
	GymID       int64         `json:"gymId"`
	CourtNumber int           `json:"courtNumber"`
	WeekOffset  int           `json:"weekOffset"`
	WeekStart   string        `json:"weekStart"`
	WeekEnd     string        `json:"weekEnd"`
	Days        []DayResponse `json:"days"`
}

// DayResponse колонка календаря
type DayResponse struct {
	Date    string         `json:"date"`
	Weekday int            `json:"weekday"` // 0 - понедельник
	Slots   []SlotResponse `json:"slots"`
}

// SlotResponse часовая ячейка; Occupancy отсутствует, если корт свободен
type SlotResponse struct {
	Hour      int                `json:"hour"`
	Label     string             `json:"label"` // "08:00"
	Occupancy *OccupancyResponse `json:"occupancy,omitempty"`
}

// OccupancyResponse чем занята ячейка
type OccupancyResponse struct {
	Kind  string    `json:"kind"`
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(gymID int64, courtNumber int, weekOffsetStr string) (*getWeekCalendar.Request, error) {
	weekOffset := 0
	if weekOffsetStr != "" {
		parsed, err := strconv.Atoi(weekOffsetStr)
		if err != nil {
			return nil, err
		}
		weekOffset = parsed
	}

	return &getWeekCalendar.Request{
		GymID:       gymID,
		CourtNumber: courtNumber,
		WeekOffset:  weekOffset,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getWeekCalendar.Response) *WeekCalendarResponse {
	cal := resp.Calendar

	days := make([]DayResponse, len(cal.Days))
	for i, day := range cal.Days {
		slots := make([]SlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = SlotResponse{
				Hour:  slot.Hour,
				Label: time.Date(0, 1, 1, slot.Hour, 0, 0, 0, time.UTC).Format(domain.TimeFormat),
			}
			if occ := slot.Occupancy; occ != nil {
				slots[j].Occupancy = &OccupancyResponse{
					Kind:  string(occ.Kind),
					ID:    occ.ID,
					Title: occ.Title,
					Start: occ.Start,
					End:   occ.End,
				}
			}
		}
		days[i] = DayResponse{
			Date:    day.Date.Format(domain.DateFormat),
			Weekday: int(day.Weekday),
			Slots:   slots,
		}
	}

	return &WeekCalendarResponse{
		GymID:       cal.Court.GymID,
		CourtNumber: cal.Court.Number,
		WeekOffset:  cal.WeekOffset,
		WeekStart:   cal.WeekStart.Format(domain.DateFormat),
		WeekEnd:     cal.WeekEnd.Format(domain.DateFormat),
		Days:        days,
	}
}
