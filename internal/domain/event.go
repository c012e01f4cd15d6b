package domain

import "time"

// ExtraordinaryEvent разовое мероприятие, блокирующее корты на интервал [StartTime, EndTime)
type ExtraordinaryEvent struct {
	ID            int64
	OrganizerID   int64
	Name          string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	BlockedCourts []CourtRef
	CreatedAt     time.Time
}

// Blocks true, если мероприятие блокирует корт
func (e *ExtraordinaryEvent) Blocks(court CourtRef) bool {
	return containsCourt(e.BlockedCourts, court)
}

// RecurringEvent еженедельное мероприятие. Rule хранится текстом, см. ParseRule.
type RecurringEvent struct {
	ID                int64
	OrganizerID       int64
	Name              string
	Description       string
	Rule              string
	RecurrenceEndDate time.Time
	BlockedCourts     []CourtRef
	CreatedAt         time.Time
}

// ParsedRule разбирает Rule и дополняет его датой окончания
func (e *RecurringEvent) ParsedRule() (RecurrenceRule, error) {
	rule, err := ParseRule(e.Rule)
	if err != nil {
		return RecurrenceRule{}, err
	}
	rule.EndDate = e.RecurrenceEndDate
	return rule, nil
}

// Blocks true, если мероприятие блокирует корт
func (e *RecurringEvent) Blocks(court CourtRef) bool {
	return containsCourt(e.BlockedCourts, court)
}

func containsCourt(courts []CourtRef, court CourtRef) bool {
	for _, c := range courts {
		if c == court {
			return true
		}
	}
	return false
}
