package create_extraordinary_event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	eventRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/event"
	facilityRepo "github.com/m04kA/SMC-GymBookingService/internal/infra/storage/facility"
	"github.com/m04kA/SMC-GymBookingService/internal/integrations/eventbus"
)

// UseCase use case для создания разового мероприятия, блокирующего корты
type UseCase struct {
	eventRepo EventRepository
	courts    CourtLocker
	checker   ConflictChecker
	cache     CalendarCache
	publisher EventPublisher
	txManager TransactionManager
	location  *time.Location
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	eventRepo EventRepository,
	courts CourtLocker,
	checker ConflictChecker,
	cache CalendarCache,
	publisher EventPublisher,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		eventRepo: eventRepo,
		courts:    courts,
		checker:   checker,
		cache:     cache,
		publisher: publisher,
		txManager: txManager,
		location:  location,
		logger:    logger,
	}
}

// Execute создает мероприятие, если все корты свободны в его интервале.
// Время мероприятия приводится к часовому поясу календаря.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req.StartTime = req.StartTime.In(uc.location)
	req.EndTime = req.EndTime.In(uc.location)

	uc.logger.Info("CreateExtraordinaryEvent: organizer=%d, name=%q, %s-%s, courts=%d",
		req.OrganizerID, req.Name, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339), len(req.BlockedCourts))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateExtraordinaryEvent: validation failed: %v", err)
		return nil, err
	}

	courts := uniqueCourts(req.BlockedCourts)

	var result *domain.ExtraordinaryEvent

	// 2. Проверка и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, court := range courts {
			// 2.1. Блокируем корт
			if _, err := uc.courts.LockCourt(txCtx, court); err != nil {
				if errors.Is(err, facilityRepo.ErrCourtNotFound) {
					uc.logger.Warn("CreateExtraordinaryEvent: court %s not found", court)
					return fmt.Errorf("%w: %s", ErrCourtNotFound, court)
				}
				uc.logger.Error("CreateExtraordinaryEvent: failed to lock court %s: %v", court, err)
				return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
			}

			// 2.2. Бронирования, разовые и еженедельные мероприятия
			conflict, err := uc.checker.FindAnyConflict(txCtx, court, req.StartTime, req.EndTime)
			if err != nil {
				uc.logger.Error("CreateExtraordinaryEvent: conflict check failed for %s: %v", court, err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if conflict != nil {
				uc.logger.Warn("CreateExtraordinaryEvent: %s is occupied by %s id=%d", court, conflict.Kind, conflict.ID)
				return &ConflictError{Court: court.String(), Reason: conflict.Reason()}
			}
		}

		// 2.3. Сохраняем мероприятие вместе с кортами
		created, err := uc.eventRepo.CreateExtraordinary(txCtx, &domain.ExtraordinaryEvent{
			OrganizerID:   req.OrganizerID,
			Name:          strings.TrimSpace(req.Name),
			Description:   req.Description,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			BlockedCourts: courts,
		})
		if err != nil {
			if errors.Is(err, eventRepo.ErrReferenceNotFound) {
				return fmt.Errorf("%w: organizer or court does not exist", ErrInvalidInput)
			}
			uc.logger.Error("CreateExtraordinaryEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateExtraordinaryEvent: successfully created event id=%d", result.ID)

	// 3. После коммита
	for _, court := range courts {
		if err := uc.cache.Invalidate(ctx, court); err != nil {
			uc.logger.Warn("CreateExtraordinaryEvent: failed to invalidate calendar cache: %v", err)
		}
	}
	if err := uc.publisher.Publish(ctx, eventbus.ExtraordinaryCreated, eventbus.NewExtraordinaryCreated(result)); err != nil {
		uc.logger.Warn("CreateExtraordinaryEvent: failed to publish %s: %v", eventbus.ExtraordinaryCreated, err)
	}

	return &Response{Event: result}, nil
}
