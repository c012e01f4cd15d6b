package inventory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	inventoryRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/inventory"
	"github.com/m04kA/SMC-GymBookingService/internal/service/inventory/models"
	"github.com/m04kA/SMC-GymBookingService/pkg/ptr"
)

type mockRepo struct {
	mock.Mock
	InventoryRepository
}

func (m *mockRepo) CreateMaterial(ctx context.Context, material *domain.Material) (*domain.Material, error) {
	args := m.Called(ctx, material)
	r, _ := args.Get(0).(*domain.Material)
	return r, args.Error(1)
}

func (m *mockRepo) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockRepo) GetTicket(ctx context.Context, id int64) (*domain.MaintenanceTicket, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.MaintenanceTicket)
	return r, args.Error(1)
}

func (m *mockRepo) ListTickets(ctx context.Context, status *domain.TicketStatus) ([]*domain.MaintenanceTicket, error) {
	args := m.Called(ctx, status)
	r, _ := args.Get(0).([]*domain.MaintenanceTicket)
	return r, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreateMaterial_QuantityInvariant(t *testing.T) {
	repo := &mockRepo{}
	repo.On("CreateMaterial", mock.Anything, mock.Anything).Return(&domain.Material{
		ID: 1, GymID: 1, Name: "Bola", Status: domain.MaterialAvailable, TotalQuantity: 10, AvailableQuantity: 8,
	}, nil)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.CreateMaterial(context.Background(), &models.MaterialRequest{
		GymID: 1, Name: "Bola", TotalQuantity: 10, AvailableQuantity: 8,
	})
	require.NoError(t, err)
	assert.Equal(t, "available", resp.Status)

	_, err = svc.CreateMaterial(context.Background(), &models.MaterialRequest{
		GymID: 1, Name: "Rede", TotalQuantity: 2, AvailableQuantity: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	repo.AssertNumberOfCalls(t, "CreateMaterial", 1)
}

func TestChangeTicketStatus_Resolved(t *testing.T) {
	resolvedAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	repo := &mockRepo{}
	repo.On("UpdateTicketStatus", mock.Anything, int64(3), domain.TicketResolved).Return(nil)
	repo.On("GetTicket", mock.Anything, int64(3)).Return(&domain.MaintenanceTicket{
		ID: 3, GymID: 1, Status: domain.TicketResolved, ResolvedAt: &resolvedAt,
	}, nil)
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ChangeTicketStatus(context.Background(), 3, &models.TicketStatusRequest{Status: "resolved"})
	require.NoError(t, err)
	assert.Equal(t, "resolved", resp.Status)
	assert.Equal(t, &resolvedAt, resp.ResolvedAt)
}

func TestChangeTicketStatus_NotFound(t *testing.T) {
	repo := &mockRepo{}
	repo.On("UpdateTicketStatus", mock.Anything, int64(9), domain.TicketInProgress).Return(inventoryRepo.ErrTicketNotFound)
	svc := NewService(repo, nopLogger{})

	_, err := svc.ChangeTicketStatus(context.Background(), 9, &models.TicketStatusRequest{Status: "in_progress"})
	assert.ErrorIs(t, err, ErrTicketNotFound)
}

func TestListTickets_StatusFilter(t *testing.T) {
	repo := &mockRepo{}
	repo.On("ListTickets", mock.Anything, mock.MatchedBy(func(s *domain.TicketStatus) bool {
		return s != nil && *s == domain.TicketOpen
	})).Return([]*domain.MaintenanceTicket{{ID: 1, Status: domain.TicketOpen}}, nil)
	svc := NewService(repo, nopLogger{})

	tickets, err := svc.ListTickets(context.Background(), ptr.Ptr("open"))
	require.NoError(t, err)
	assert.Len(t, tickets, 1)

	_, err = svc.ListTickets(context.Background(), ptr.Ptr("closed"))
	assert.ErrorIs(t, err, ErrInvalidInput)
}
