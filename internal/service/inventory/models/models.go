package models

import (
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// Request модели

// MaterialRequest данные инвентаря
type MaterialRequest struct {
	GymID             int64  `json:"gymId" validate:"required,gt=0"`
	Name              string `json:"name" validate:"required,max=200"`
	Description       string `json:"description" validate:"max=2000"`
	Brand             string `json:"brand" validate:"max=100"`
	Status            string `json:"status" validate:"omitempty,oneof=available unavailable"`
	TotalQuantity     int    `json:"totalQuantity" validate:"gte=0"`
	AvailableQuantity int    `json:"availableQuantity" validate:"gte=0"`
}

// ToDomain конвертирует запрос; пустой статус означает available
func (r *MaterialRequest) ToDomain(id int64) *domain.Material {
	status := domain.MaterialAvailable
	if r.Status != "" {
		status = domain.MaterialStatus(r.Status)
	}
	return &domain.Material{
		ID:                id,
		GymID:             r.GymID,
		Name:              r.Name,
		Description:       r.Description,
		Brand:             r.Brand,
		Status:            status,
		TotalQuantity:     r.TotalQuantity,
		AvailableQuantity: r.AvailableQuantity,
	}
}

// CreateTicketRequest новая заявка на обслуживание
type CreateTicketRequest struct {
	OpenedBy    int64  `json:"-"`
	GymID       int64  `json:"gymId" validate:"required,gt=0"`
	CourtNumber *int   `json:"courtNumber,omitempty" validate:"omitempty,gt=0"`
	Description string `json:"description" validate:"required,max=2000"`
}

// TicketStatusRequest новый статус заявки
type TicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved"`
}

// Response модели

// MaterialResponse инвентарь
type MaterialResponse struct {
	ID                int64  `json:"id"`
	GymID             int64  `json:"gymId"`
	Name              string `json:"name"`
	Description       string `json:"description"`
	Brand             string `json:"brand"`
	Status            string `json:"status"`
	TotalQuantity     int    `json:"totalQuantity"`
	AvailableQuantity int    `json:"availableQuantity"`
}

// TicketResponse заявка на обслуживание
type TicketResponse struct {
	ID          int64      `json:"id"`
	OpenedBy    int64      `json:"openedBy"`
	GymID       int64      `json:"gymId"`
	CourtNumber *int       `json:"courtNumber,omitempty"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

// FromDomainMaterial конвертирует инвентарь
func FromDomainMaterial(m *domain.Material) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		ID:                m.ID,
		GymID:             m.GymID,
		Name:              m.Name,
		Description:       m.Description,
		Brand:             m.Brand,
		Status:            string(m.Status),
		TotalQuantity:     m.TotalQuantity,
		AvailableQuantity: m.AvailableQuantity,
	}
}

// FromDomainMaterials конвертирует список инвентаря
func FromDomainMaterials(materials []*domain.Material) []MaterialResponse {
	result := make([]MaterialResponse, 0, len(materials))
	for _, m := range materials {
		result = append(result, *FromDomainMaterial(m))
	}
	return result
}

// FromDomainTicket конвертирует заявку
func FromDomainTicket(t *domain.MaintenanceTicket) *TicketResponse {
	if t == nil {
		return nil
	}
	return &TicketResponse{
		ID:          t.ID,
		OpenedBy:    t.OpenedBy,
		GymID:       t.GymID,
		CourtNumber: t.CourtNumber,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		ResolvedAt:  t.ResolvedAt,
	}
}

// FromDomainTickets конвертирует список заявок
func FromDomainTickets(tickets []*domain.MaintenanceTicket) []TicketResponse {
	result := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, *FromDomainTicket(t))
	}
	return result
}
