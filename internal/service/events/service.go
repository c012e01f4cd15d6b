package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	eventRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/event"
	"github.com/m04kA/SMC-GymBookingService/internal/service/events/models"
)

// Service просмотр и удаление мероприятий. Создание - в usecase create_*_event.
type Service struct {
	repo         EventRepository
	cache        CalendarCache
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo EventRepository, cache CalendarCache, location *time.Location, logger Logger) *Service {
	return &Service{
		repo:         repo,
		cache:        cache,
		timeProvider: realTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// ListExtraordinary разовые мероприятия, пересекающиеся с [from, to); nil границы не ограничивают
func (s *Service) ListExtraordinary(ctx context.Context, from, to *time.Time) ([]models.ExtraordinaryEventResponse, error) {
	events, err := s.repo.ListExtraordinary(ctx, from, to)
	if err != nil {
		s.logger.Error("ListExtraordinary: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExtraordinary - repository error: %v", ErrInternal, err)
	}

	result := make([]models.ExtraordinaryEventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *models.FromDomainExtraordinary(e))
	}
	return result, nil
}

// ListRecurring еженедельные мероприятия; activeOnly оставляет действующие на сегодня
func (s *Service) ListRecurring(ctx context.Context, activeOnly bool) ([]models.RecurringEventResponse, error) {
	var activeFrom *time.Time
	if activeOnly {
		today := domain.DateOnly(s.timeProvider.Now().In(s.location))
		activeFrom = &today
	}

	events, err := s.repo.ListRecurring(ctx, activeFrom)
	if err != nil {
		s.logger.Error("ListRecurring: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRecurring - repository error: %v", ErrInternal, err)
	}

	result := make([]models.RecurringEventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, *models.FromDomainRecurring(e))
	}
	return result, nil
}

// DeleteExtraordinary удаляет разовое мероприятие и освобождает его корты
func (s *Service) DeleteExtraordinary(ctx context.Context, id int64) error {
	event, err := s.repo.GetExtraordinary(ctx, id)
	if err != nil {
		return s.mapError("DeleteExtraordinary", id, err)
	}

	if err := s.repo.DeleteExtraordinary(ctx, id); err != nil {
		return s.mapError("DeleteExtraordinary", id, err)
	}

	s.invalidate(ctx, event.BlockedCourts)
	s.logger.Info("DeleteExtraordinary: deleted event id=%d", id)
	return nil
}

// DeleteRecurring удаляет еженедельное мероприятие и освобождает его корты
func (s *Service) DeleteRecurring(ctx context.Context, id int64) error {
	event, err := s.repo.GetRecurring(ctx, id)
	if err != nil {
		return s.mapError("DeleteRecurring", id, err)
	}

	if err := s.repo.DeleteRecurring(ctx, id); err != nil {
		return s.mapError("DeleteRecurring", id, err)
	}

	s.invalidate(ctx, event.BlockedCourts)
	s.logger.Info("DeleteRecurring: deleted event id=%d", id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, courts []domain.CourtRef) {
	for _, court := range courts {
		if err := s.cache.Invalidate(ctx, court); err != nil {
			s.logger.Warn("invalidate: failed to invalidate calendar cache for %s: %v", court, err)
		}
	}
}

func (s *Service) mapError(op string, id int64, err error) error {
	if errors.Is(err, eventRepo.ErrEventNotFound) {
		s.logger.Warn("%s: event id=%d not found", op, id)
		return ErrEventNotFound
	}
	s.logger.Error("%s: repository error for event id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
