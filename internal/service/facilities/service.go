package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	facilityRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-GymBookingService/internal/service/facilities/models"
)

// Service сервис управления спортзалами, кортами и видами спорта
type Service struct {
	repo      FacilityRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo FacilityRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
		logger:    logger,
	}
}

// Спортзалы

// CreateGym создает спортзал
func (s *Service) CreateGym(ctx context.Context, req *models.GymRequest) (*models.GymResponse, error) {
	gym, err := s.repo.CreateGym(ctx, &domain.Gym{
		Name:     strings.TrimSpace(req.Name),
		Address:  req.Address,
		Capacity: req.Capacity,
	})
	if err != nil {
		return nil, s.mapError("CreateGym", err)
	}

	s.logger.Info("CreateGym: created gym id=%d", gym.ID)
	return models.FromDomainGym(gym), nil
}

// GetGym получает спортзал
func (s *Service) GetGym(ctx context.Context, id int64) (*models.GymResponse, error) {
	gym, err := s.repo.GetGym(ctx, id)
	if err != nil {
		return nil, s.mapError("GetGym", err)
	}
	return models.FromDomainGym(gym), nil
}

// ListGyms список спортзалов
func (s *Service) ListGyms(ctx context.Context) ([]models.GymResponse, error) {
	gyms, err := s.repo.ListGyms(ctx)
	if err != nil {
		return nil, s.mapError("ListGyms", err)
	}
	return models.FromDomainGyms(gyms), nil
}

// UpdateGym обновляет спортзал
func (s *Service) UpdateGym(ctx context.Context, id int64, req *models.GymRequest) (*models.GymResponse, error) {
	gym := &domain.Gym{ID: id, Name: strings.TrimSpace(req.Name), Address: req.Address, Capacity: req.Capacity}
	if err := s.repo.UpdateGym(ctx, gym); err != nil {
		return nil, s.mapError("UpdateGym", err)
	}
	return models.FromDomainGym(gym), nil
}

// DeleteGym удаляет спортзал
func (s *Service) DeleteGym(ctx context.Context, id int64) error {
	if err := s.repo.DeleteGym(ctx, id); err != nil {
		return s.mapError("DeleteGym", err)
	}
	s.logger.Info("DeleteGym: deleted gym id=%d", id)
	return nil
}

// Корты

// CreateCourt добавляет корт в спортзал вместе с разрешенными видами спорта
func (s *Service) CreateCourt(ctx context.Context, gymID int64, req *models.CreateCourtRequest) (*models.CourtResponse, error) {
	status := domain.CourtAvailable
	if req.Status != "" {
		status = domain.CourtStatus(req.Status)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown court status %q", ErrInvalidInput, req.Status)
	}

	court := &domain.Court{
		GymID:         gymID,
		Number:        req.Number,
		Capacity:      req.Capacity,
		FloorType:     req.FloorType,
		Covered:       req.Covered,
		Status:        status,
		AllowedSports: req.AllowedSports,
	}

	var created *domain.Court
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.repo.CreateCourt(txCtx, court)
		return err
	})
	if err != nil {
		return nil, s.mapError("CreateCourt", err)
	}

	s.logger.Info("CreateCourt: created court %s", created.Ref())
	return models.FromDomainCourt(created), nil
}

// ListCourts корты спортзала
func (s *Service) ListCourts(ctx context.Context, gymID int64) ([]models.CourtResponse, error) {
	if _, err := s.repo.GetGym(ctx, gymID); err != nil {
		return nil, s.mapError("ListCourts", err)
	}

	courts, err := s.repo.ListCourts(ctx, gymID)
	if err != nil {
		return nil, s.mapError("ListCourts", err)
	}
	return models.FromDomainCourts(courts), nil
}

// UpdateCourt обновляет характеристики корта
func (s *Service) UpdateCourt(ctx context.Context, ref domain.CourtRef, req *models.UpdateCourtRequest) (*models.CourtResponse, error) {
	court := &domain.Court{
		GymID:     ref.GymID,
		Number:    ref.Number,
		Capacity:  req.Capacity,
		FloorType: req.FloorType,
		Covered:   req.Covered,
		Status:    domain.CourtStatus(req.Status),
	}
	if !court.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown court status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateCourt(ctx, court); err != nil {
		return nil, s.mapError("UpdateCourt", err)
	}

	updated, err := s.repo.GetCourt(ctx, ref)
	if err != nil {
		return nil, s.mapError("UpdateCourt", err)
	}
	return models.FromDomainCourt(updated), nil
}

// ChangeCourtStatus переводит корт в available, maintenance или restricted
func (s *Service) ChangeCourtStatus(ctx context.Context, ref domain.CourtRef, req *models.CourtStatusRequest) error {
	status := domain.CourtStatus(req.Status)
	if !status.IsValid() {
		return fmt.Errorf("%w: unknown court status %q", ErrInvalidInput, req.Status)
	}

	if err := s.repo.UpdateCourtStatus(ctx, ref, status); err != nil {
		return s.mapError("ChangeCourtStatus", err)
	}

	s.logger.Info("ChangeCourtStatus: %s is now %s", ref, status)
	return nil
}

// SetCourtSports заменяет список разрешенных видов спорта
func (s *Service) SetCourtSports(ctx context.Context, ref domain.CourtRef, req *models.CourtSportsRequest) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.repo.GetCourt(txCtx, ref); err != nil {
			return err
		}
		return s.repo.SetCourtSports(txCtx, ref, req.SportIDs)
	})
	if err != nil {
		return s.mapError("SetCourtSports", err)
	}
	return nil
}

// DeleteCourt удаляет корт
func (s *Service) DeleteCourt(ctx context.Context, ref domain.CourtRef) error {
	if err := s.repo.DeleteCourt(ctx, ref); err != nil {
		return s.mapError("DeleteCourt", err)
	}
	s.logger.Info("DeleteCourt: deleted court %s", ref)
	return nil
}

// Виды спорта

// CreateSport создает вид спорта
func (s *Service) CreateSport(ctx context.Context, req *models.SportRequest) (*models.SportResponse, error) {
	sport, err := s.repo.CreateSport(ctx, &domain.Sport{Name: strings.TrimSpace(req.Name), MaxPlayers: req.MaxPlayers})
	if err != nil {
		return nil, s.mapError("CreateSport", err)
	}
	return &models.SportResponse{ID: sport.ID, Name: sport.Name, MaxPlayers: sport.MaxPlayers}, nil
}

// ListSports список видов спорта
func (s *Service) ListSports(ctx context.Context) ([]models.SportResponse, error) {
	sports, err := s.repo.ListSports(ctx)
	if err != nil {
		return nil, s.mapError("ListSports", err)
	}
	return models.FromDomainSports(sports), nil
}

// UpdateSport обновляет вид спорта
func (s *Service) UpdateSport(ctx context.Context, id int64, req *models.SportRequest) (*models.SportResponse, error) {
	sport := &domain.Sport{ID: id, Name: strings.TrimSpace(req.Name), MaxPlayers: req.MaxPlayers}
	if err := s.repo.UpdateSport(ctx, sport); err != nil {
		return nil, s.mapError("UpdateSport", err)
	}
	return &models.SportResponse{ID: sport.ID, Name: sport.Name, MaxPlayers: sport.MaxPlayers}, nil
}

// DeleteSport удаляет вид спорта
func (s *Service) DeleteSport(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSport(ctx, id); err != nil {
		return s.mapError("DeleteSport", err)
	}
	return nil
}

// mapError переводит ошибки репозитория в ошибки сервиса
func (s *Service) mapError(op string, err error) error {
	switch {
	case errors.Is(err, facilityRepo.ErrGymNotFound):
		return ErrGymNotFound
	case errors.Is(err, facilityRepo.ErrCourtNotFound):
		return ErrCourtNotFound
	case errors.Is(err, facilityRepo.ErrCourtAlreadyExists):
		return ErrCourtAlreadyExists
	case errors.Is(err, facilityRepo.ErrSportNotFound):
		return ErrSportNotFound
	case errors.Is(err, facilityRepo.ErrSportAlreadyExists):
		return ErrSportAlreadyExists
	case errors.Is(err, facilityRepo.ErrInUse):
		return ErrInUse
	}

	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
