package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-GymBookingService/internal/service/inventory/models"
)

// Service сервис инвентаря и заявок на обслуживание
type Service struct {
	repo   InventoryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo InventoryRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// CreateMaterial добавляет инвентарь спортзалу
func (s *Service) CreateMaterial(ctx context.Context, req *models.MaterialRequest) (*models.MaterialResponse, error) {
	material := req.ToDomain(0)
	if err := validateMaterial(material); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateMaterial(ctx, material)
	if err != nil {
		return nil, s.mapError("CreateMaterial", err)
	}

	s.logger.Info("CreateMaterial: created material id=%d for gym=%d", created.ID, created.GymID)
	return models.FromDomainMaterial(created), nil
}

// ListMaterials инвентарь спортзала; gymID nil - весь инвентарь
func (s *Service) ListMaterials(ctx context.Context, gymID *int64) ([]models.MaterialResponse, error) {
	materials, err := s.repo.ListMaterials(ctx, gymID)
	if err != nil {
		return nil, s.mapError("ListMaterials", err)
	}
	return models.FromDomainMaterials(materials), nil
}

// UpdateMaterial обновляет инвентарь
func (s *Service) UpdateMaterial(ctx context.Context, id int64, req *models.MaterialRequest) (*models.MaterialResponse, error) {
	material := req.ToDomain(id)
	if err := validateMaterial(material); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMaterial(ctx, material); err != nil {
		return nil, s.mapError("UpdateMaterial", err)
	}
	return models.FromDomainMaterial(material), nil
}

// DeleteMaterial удаляет инвентарь
func (s *Service) DeleteMaterial(ctx context.Context, id int64) error {
	if err := s.repo.DeleteMaterial(ctx, id); err != nil {
		return s.mapError("DeleteMaterial", err)
	}
	return nil
}

// OpenTicket создает заявку со статусом open
func (s *Service) OpenTicket(ctx context.Context, req *models.CreateTicketRequest) (*models.TicketResponse, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	ticket, err := s.repo.CreateTicket(ctx, &domain.MaintenanceTicket{
		OpenedBy:    req.OpenedBy,
		GymID:       req.GymID,
		CourtNumber: req.CourtNumber,
		Description: description,
		Status:      domain.TicketOpen,
	})
	if err != nil {
		return nil, s.mapError("OpenTicket", err)
	}

	s.logger.Info("OpenTicket: user=%d opened ticket id=%d for gym=%d", req.OpenedBy, ticket.ID, req.GymID)
	return models.FromDomainTicket(ticket), nil
}

// ListTickets заявки; status nil - все
func (s *Service) ListTickets(ctx context.Context, status *string) ([]models.TicketResponse, error) {
	var filter *domain.TicketStatus
	if status != nil {
		st := domain.TicketStatus(*status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown ticket status %q", ErrInvalidInput, *status)
		}
		filter = &st
	}

	tickets, err := s.repo.ListTickets(ctx, filter)
	if err != nil {
		return nil, s.mapError("ListTickets", err)
	}
	return models.FromDomainTickets(tickets), nil
}

// ChangeTicketStatus меняет статус заявки и возвращает ее
func (s *Service) ChangeTicketStatus(ctx context.Context, id int64, req *models.TicketStatusRequest) (*models.TicketResponse, error) {
	status := domain.TicketStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown ticket status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateTicketStatus(ctx, id, status); err != nil {
		return nil, s.mapError("ChangeTicketStatus", err)
	}

	ticket, err := s.repo.GetTicket(ctx, id)
	if err != nil {
		return nil, s.mapError("ChangeTicketStatus", err)
	}

	s.logger.Info("ChangeTicketStatus: ticket id=%d is now %s", id, status)
	return models.FromDomainTicket(ticket), nil
}

func validateMaterial(m *domain.Material) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if m.Status != domain.MaterialAvailable && m.Status != domain.MaterialUnavailable {
		return fmt.Errorf("%w: unknown material status %q", ErrInvalidInput, m.Status)
	}
	if !m.QuantitiesValid() {
		return ErrInvalidQuantity
	}
	return nil
}

func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, inventoryRepo.ErrMaterialNotFound):
		return ErrMaterialNotFound
	case errors.Is(err, inventoryRepo.ErrTicketNotFound):
		return ErrTicketNotFound
	case errors.Is(err, inventoryRepo.ErrInvalidQuantity):
		return ErrInvalidQuantity
	case errors.Is(err, inventoryRepo.ErrReferenceNotFound):
		return fmt.Errorf("%w: gym or court does not exist", ErrInvalidInput)
	}

	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
