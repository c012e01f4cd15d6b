package domain

import "time"

// OccupancyKind источник занятости ячейки календаря
type OccupancyKind string

const (
	OccupancyBooking       OccupancyKind = "booking"
	OccupancyExtraordinary OccupancyKind = "extraordinary_event"
	OccupancyRecurring     OccupancyKind = "recurring_event"
)

// Occupancy запись, занимающая корт
type Occupancy struct {
	Kind  OccupancyKind
	ID    int64
	Title string
	Start time.Time
	End   time.Time
}

// CalendarSlot часовая ячейка [Hour:00, Hour+1:00); пустой Occupancy означает свободный час
type CalendarSlot struct {
	Hour      int
	Occupancy *Occupancy
}

// CalendarDay колонка календаря
type CalendarDay struct {
	Date    time.Time
	Weekday Weekday
	Slots   []CalendarSlot
}

// WeekCalendar сетка 7 дней × часы для одного корта
type WeekCalendar struct {
	Court      CourtRef
	WeekOffset int
	WeekStart  time.Time // понедельник
	WeekEnd    time.Time // воскресенье
	StartHour  int
	EndHour    int // не включительно
	Days       []CalendarDay
}

// NewWeekCalendar пустая сетка на неделю, начинающуюся в понедельник weekStart
func NewWeekCalendar(court CourtRef, weekOffset int, weekStart time.Time, startHour, endHour int) *WeekCalendar {
	weekStart = DateOnly(weekStart)

	days := make([]CalendarDay, DaysInWeek)
	for i := range days {
		slots := make([]CalendarSlot, 0, endHour-startHour)
		for h := startHour; h < endHour; h++ {
			slots = append(slots, CalendarSlot{Hour: h})
		}
		date := weekStart.AddDate(0, 0, i)
		days[i] = CalendarDay{Date: date, Weekday: WeekdayOf(date), Slots: slots}
	}

	return &WeekCalendar{
		Court:      court,
		WeekOffset: weekOffset,
		WeekStart:  weekStart,
		WeekEnd:    weekStart.AddDate(0, 0, DaysInWeek-1),
		StartHour:  startHour,
		EndHour:    endHour,
		Days:       days,
	}
}

// Cell ячейка дня dayIndex (0 = понедельник) и часа hour; nil вне сетки
func (c *WeekCalendar) Cell(dayIndex, hour int) *CalendarSlot {
	if dayIndex < 0 || dayIndex >= len(c.Days) || hour < c.StartHour || hour >= c.EndHour {
		return nil
	}
	return &c.Days[dayIndex].Slots[hour-c.StartHour]
}

// Mark занимает ячейку; запись вне сетки игнорируется. Возвращает true, если ячейка в сетке.
func (c *WeekCalendar) Mark(dayIndex, hour int, occ *Occupancy) bool {
	cell := c.Cell(dayIndex, hour)
	if cell == nil {
		return false
	}
	cell.Occupancy = occ
	return true
}

// DayIndex индекс дня недели для даты t в часовом поясе сетки; -1, если дата вне недели
func (c *WeekCalendar) DayIndex(t time.Time) int {
	date := DateOnly(t.In(c.WeekStart.Location()))
	for i, day := range c.Days {
		if day.Date.Equal(date) {
			return i
		}
	}
	return -1
}
