package create_recurring_event

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

// UseCase use case для создания еженедельного мероприятия
type UseCase struct {
	eventRepo    EventRepository
	courts       CourtLocker
	checker      ConflictChecker
	cache        CalendarCache
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
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
		eventRepo:    eventRepo,
		courts:       courts,
		checker:      checker,
		cache:        cache,
		publisher:    publisher,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает мероприятие, если ни одно его занятие не пересекается с занятостью кортов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateRecurringEvent: organizer=%d, name=%q, %s %s-%s until %s, courts=%d",
		req.OrganizerID, req.Name, req.Weekday, req.StartTime, req.EndTime,
		req.EndDate.Format(domain.DateFormat), len(req.BlockedCourts))

	// 1. Валидация входных данных
	rule, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateRecurringEvent: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата окончания не в прошлом
	today := domain.DateOnly(uc.timeProvider.Now().In(uc.location))
	y, m, d := rule.EndDate.Date()
	rule.EndDate = time.Date(y, m, d, 0, 0, 0, 0, uc.location)
	if err := validateEndDate(rule.EndDate, today); err != nil {
		uc.logger.Warn("CreateRecurringEvent: end date %s is before today", rule.EndDate.Format(domain.DateFormat))
		return nil, err
	}

	courts := uniqueCourts(req.BlockedCourts)

	var result *domain.RecurringEvent

	// 3. Проверка и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, court := range courts {
			// 3.1. Блокируем корт
			if _, err := uc.courts.LockCourt(txCtx, court); err != nil {
				if errors.Is(err, facilityRepo.ErrCourtNotFound) {
					uc.logger.Warn("CreateRecurringEvent: court %s not found", court)
					return fmt.Errorf("%w: %s", ErrCourtNotFound, court)
				}
				uc.logger.Error("CreateRecurringEvent: failed to lock court %s: %v", court, err)
				return fmt.Errorf("%w: failed to lock court: %v", ErrInternal, err)
			}

			// 3.2. Другие правила и все занятия до даты окончания
			conflict, err := uc.checker.FindRuleConflict(txCtx, court, rule, today)
			if err != nil {
				uc.logger.Error("CreateRecurringEvent: conflict check failed for %s: %v", court, err)
				return fmt.Errorf("%w: conflict check failed: %v", ErrInternal, err)
			}
			if conflict != nil {
				uc.logger.Warn("CreateRecurringEvent: %s is occupied by %s id=%d", court, conflict.Kind, conflict.ID)
				return &ConflictError{Court: court.String(), Reason: conflict.Reason()}
			}
		}

		// 3.3. Сохраняем правило текстом вместе с кортами
		created, err := uc.eventRepo.CreateRecurring(txCtx, &domain.RecurringEvent{
			OrganizerID:       req.OrganizerID,
			Name:              strings.TrimSpace(req.Name),
			Description:       req.Description,
			Rule:              rule.Text(),
			RecurrenceEndDate: rule.EndDate,
			BlockedCourts:     courts,
		})
		if err != nil {
			if errors.Is(err, eventRepo.ErrReferenceNotFound) {
				return fmt.Errorf("%w: organizer or court does not exist", ErrInvalidInput)
			}
			uc.logger.Error("CreateRecurringEvent: failed to create event: %v", err)
			return fmt.Errorf("%w: failed to create event: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateRecurringEvent: successfully created event id=%d rule=%q", result.ID, result.Rule)

	// 4. После коммита
	for _, court := range courts {
		if err := uc.cache.Invalidate(ctx, court); err != nil {
			uc.logger.Warn("CreateRecurringEvent: failed to invalidate calendar cache: %v", err)
		}
	}
	if err := uc.publisher.Publish(ctx, eventbus.RecurringCreated, eventbus.NewRecurringCreated(result)); err != nil {
		uc.logger.Warn("CreateRecurringEvent: failed to publish %s: %v", eventbus.RecurringCreated, err)
	}

	return &Response{Event: result}, nil
}
