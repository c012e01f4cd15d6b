package domain

import "fmt"

// CourtRef идентификатор корта: спортзал + номер
type CourtRef struct {
	GymID  int64
	Number int
}

func (c CourtRef) String() string {
	return fmt.Sprintf("gym=%d court=%d", c.GymID, c.Number)
}

// Gym спортзал
type Gym struct {
	ID       int64
	Name     string
	Address  string
	Capacity int
}

// CourtStatus состояние корта
type CourtStatus string

const (
	CourtAvailable   CourtStatus = "available"
	CourtMaintenance CourtStatus = "maintenance"
	CourtRestricted  CourtStatus = "restricted"
)

// IsValid проверяет, что статус известен
func (s CourtStatus) IsValid() bool {
	switch s {
	case CourtAvailable, CourtMaintenance, CourtRestricted:
		return true
	}
	return false
}

// Court корт спортзала; (GymID, Number) уникальны
type Court struct {
	GymID         int64
	Number        int
	Capacity      int
	FloorType     string
	Covered       bool
	Status        CourtStatus
	AllowedSports []int64
}

// Ref идентификатор корта
func (c *Court) Ref() CourtRef {
	return CourtRef{GymID: c.GymID, Number: c.Number}
}

// IsBookable бронировать можно только доступный корт
func (c *Court) IsBookable() bool {
	return c.Status == CourtAvailable
}

// Sport вид спорта
type Sport struct {
	ID         int64
	Name       string
	MaxPlayers int
}
