package domain

import "time"

// MaterialStatus доступность инвентаря
type MaterialStatus string

const (
	MaterialAvailable   MaterialStatus = "available"
	MaterialUnavailable MaterialStatus = "unavailable"
)

// Material спортивный инвентарь спортзала
type Material struct {
	ID                int64
	GymID             int64
	Name              string
	Description       string
	Brand             string
	Status            MaterialStatus
	TotalQuantity     int
	AvailableQuantity int
}

// QuantitiesValid 0 <= доступно <= всего
func (m *Material) QuantitiesValid() bool {
	return m.TotalQuantity >= 0 && m.AvailableQuantity >= 0 && m.AvailableQuantity <= m.TotalQuantity
}

// TicketStatus статус заявки на обслуживание
type TicketStatus string

const (
	TicketOpen       TicketStatus = "open"
	TicketInProgress TicketStatus = "in_progress"
	TicketResolved   TicketStatus = "resolved"
)

// IsValid проверяет, что статус известен
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved:
		return true
	}
	return false
}

// MaintenanceTicket заявка на обслуживание спортзала или корта
type MaintenanceTicket struct {
	ID          int64
	OpenedBy    int64
	GymID       int64
	CourtNumber *int
	Description string
	Status      TicketStatus
	CreatedAt   time.Time
	ResolvedAt  *time.Time
}
