package manage_inventory

import (
	"context"

	"github.com/m04kA/SMC-GymBookingService/internal/service/inventory/models"
)

type InventoryService interface {
	CreateMaterial(ctx context.Context, req *models.MaterialRequest) (*models.MaterialResponse, error)
	ListMaterials(ctx context.Context, gymID *int64) ([]models.MaterialResponse, error)
	UpdateMaterial(ctx context.Context, id int64, req *models.MaterialRequest) (*models.MaterialResponse, error)
	DeleteMaterial(ctx context.Context, id int64) error

	OpenTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.TicketResponse, error)
	ListTickets(ctx context.Context, status *string) ([]models.TicketResponse, error)
	ChangeTicketStatus(ctx context.Context, id int64, req *models.TicketStatusRequest) (*models.TicketResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
