package inventory

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
)

// InventoryRepository интерфейс репозитория инвентаря и заявок
type InventoryRepository interface {
	CreateMaterial(ctx context.Context, m *domain.Material) (*domain.Material, error)
	GetMaterial(ctx context.Context, id int64) (*domain.Material, error)
	ListMaterials(ctx context.Context, gymID *int64) ([]*domain.Material, error)
	UpdateMaterial(ctx context.Context, m *domain.Material) error
	DeleteMaterial(ctx context.Context, id int64) error

	CreateTicket(ctx context.Context, t *domain.MaintenanceTicket) (*domain.MaintenanceTicket, error)
	GetTicket(ctx context.Context, id int64) (*domain.MaintenanceTicket, error)
	ListTickets(ctx context.Context, status *domain.TicketStatus) ([]*domain.MaintenanceTicket, error)
	UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
