package event

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-GymBookingService/pkg/psqlbuilder"
)

const (
	tableExtraordinary       = "extraordinary_events"
	tableExtraordinaryCourts = "extraordinary_event_courts"
	tableRecurring           = "recurring_events"
	tableRecurringCourts     = "recurring_event_courts"
)

var extraordinaryColumns = []string{
	"e.id",
	"e.organizer_id",
	"e.name",
	"e.description",
	"e.start_time",
	"e.end_time",
	"e.created_at",
}

var recurringColumns = []string{
	"e.id",
	"e.organizer_id",
	"e.name",
	"e.description",
	"e.rule",
	"e.recurrence_end_date",
	"e.created_at",
}

// Repository репозиторий мероприятий: разовых и еженедельных
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мероприятий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateExtraordinary сохраняет разовое мероприятие вместе со списком блокируемых кортов
func (r *Repository) CreateExtraordinary(ctx context.Context, event *domain.ExtraordinaryEvent) (*domain.ExtraordinaryEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableExtraordinary).
		Columns("organizer_id", "name", "description", "start_time", "end_time").
		Values(event.OrganizerID, event.Name, event.Description, event.StartTime, event.EndTime).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateExtraordinary - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: CreateExtraordinary - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.insertCourts(ctx, executor, tableExtraordinaryCourts, event.ID, event.BlockedCourts); err != nil {
		return nil, err
	}

	return event, nil
}

// GetExtraordinary получает разовое мероприятие по ID
func (r *Repository) GetExtraordinary(ctx context.Context, id int64) (*domain.ExtraordinaryEvent, error) {
	events, err := r.selectExtraordinary(ctx, "GetExtraordinary", squirrel.Eq{"e.id": id}, nil)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrEventNotFound
	}
	return events[0], nil
}

// ListExtraordinary разовые мероприятия, пересекающиеся с [from, to); nil границы не ограничивают
func (r *Repository) ListExtraordinary(ctx context.Context, from, to *time.Time) ([]*domain.ExtraordinaryEvent, error) {
	where := squirrel.And{}
	if to != nil {
		where = append(where, squirrel.Lt{"e.start_time": *to})
	}
	if from != nil {
		where = append(where, squirrel.Gt{"e.end_time": *from})
	}
	return r.selectExtraordinary(ctx, "ListExtraordinary", where, nil)
}

// FindExtraordinaryOverlapping разовые мероприятия, блокирующие корт и пересекающиеся с [start, end)
func (r *Repository) FindExtraordinaryOverlapping(ctx context.Context, court domain.CourtRef, start, end time.Time) ([]*domain.ExtraordinaryEvent, error) {
	where := squirrel.And{
		squirrel.Lt{"e.start_time": end},
		squirrel.Gt{"e.end_time": start},
	}
	return r.selectExtraordinary(ctx, "FindExtraordinaryOverlapping", where, &court)
}

// DeleteExtraordinary удаляет разовое мероприятие; связи с кортами удаляются каскадно
func (r *Repository) DeleteExtraordinary(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteExtraordinary", tableExtraordinary, id)
}

// CreateRecurring сохраняет еженедельное мероприятие вместе со списком блокируемых кортов
func (r *Repository) CreateRecurring(ctx context.Context, event *domain.RecurringEvent) (*domain.RecurringEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableRecurring).
		Columns("organizer_id", "name", "description", "rule", "recurrence_end_date").
		Values(event.OrganizerID, event.Name, event.Description, event.Rule, event.RecurrenceEndDate).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecurring - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return nil, ErrReferenceNotFound
		}
		return nil, fmt.Errorf("%w: CreateRecurring - execute insert: %v", ErrExecQuery, err)
	}

	if err := r.insertCourts(ctx, executor, tableRecurringCourts, event.ID, event.BlockedCourts); err != nil {
		return nil, err
	}

	return event, nil
}

// GetRecurring получает еженедельное мероприятие по ID
func (r *Repository) GetRecurring(ctx context.Context, id int64) (*domain.RecurringEvent, error) {
	events, err := r.selectRecurring(ctx, "GetRecurring", squirrel.Eq{"e.id": id}, nil)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrEventNotFound
	}
	return events[0], nil
}

// ListRecurring еженедельные мероприятия, действующие на дату activeFrom и позже; nil - все
func (r *Repository) ListRecurring(ctx context.Context, activeFrom *time.Time) ([]*domain.RecurringEvent, error) {
	where := squirrel.And{}
	if activeFrom != nil {
		where = append(where, squirrel.GtOrEq{"e.recurrence_end_date": domain.DateOnly(*activeFrom)})
	}
	return r.selectRecurring(ctx, "ListRecurring", where, nil)
}

// FindRecurringByCourt еженедельные мероприятия корта, не закончившиеся до activeFrom.
// Правила не разбираются: это делает вызывающая сторона.
func (r *Repository) FindRecurringByCourt(ctx context.Context, court domain.CourtRef, activeFrom time.Time) ([]*domain.RecurringEvent, error) {
	where := squirrel.GtOrEq{"e.recurrence_end_date": domain.DateOnly(activeFrom)}
	return r.selectRecurring(ctx, "FindRecurringByCourt", where, &court)
}

// DeleteRecurring удаляет еженедельное мероприятие
func (r *Repository) DeleteRecurring(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, "DeleteRecurring", tableRecurring, id)
}

func (r *Repository) selectExtraordinary(ctx context.Context, op string, where squirrel.Sqlizer, court *domain.CourtRef) ([]*domain.ExtraordinaryEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(extraordinaryColumns...).
		From(tableExtraordinary + " e").
		Where(where).
		OrderBy("e.start_time ASC", "e.id ASC")

	if court != nil {
		selectBuilder = selectBuilder.
			Join(tableExtraordinaryCourts + " c ON c.event_id = e.id").
			Where(squirrel.Eq{"c.gym_id": court.GymID, "c.court_number": court.Number})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	events := make([]*domain.ExtraordinaryEvent, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var e domain.ExtraordinaryEvent
		if err := rows.Scan(&e.ID, &e.OrganizerID, &e.Name, &e.Description, &e.StartTime, &e.EndTime, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		events = append(events, &e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	courts, err := r.loadCourts(ctx, executor, tableExtraordinaryCourts, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.BlockedCourts = courts[e.ID]
	}

	return events, nil
}

func (r *Repository) selectRecurring(ctx context.Context, op string, where squirrel.Sqlizer, court *domain.CourtRef) ([]*domain.RecurringEvent, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(recurringColumns...).
		From(tableRecurring + " e").
		Where(where).
		OrderBy("e.id ASC")

	if court != nil {
		selectBuilder = selectBuilder.
			Join(tableRecurringCourts + " c ON c.event_id = e.id").
			Where(squirrel.Eq{"c.gym_id": court.GymID, "c.court_number": court.Number})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	events := make([]*domain.RecurringEvent, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var e domain.RecurringEvent
		if err := rows.Scan(&e.ID, &e.OrganizerID, &e.Name, &e.Description, &e.Rule, &e.RecurrenceEndDate, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		events = append(events, &e)
		ids = append(ids, e.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	courts, err := r.loadCourts(ctx, executor, tableRecurringCourts, ids)
	if err != nil {
		return nil, err
	}
	for _, e := range events {
		e.BlockedCourts = courts[e.ID]
	}

	return events, nil
}

// loadCourts загружает блокируемые корты для списка мероприятий одним запросом
func (r *Repository) loadCourts(ctx context.Context, executor DBExecutor, table string, eventIDs []int64) (map[int64][]domain.CourtRef, error) {
	result := make(map[int64][]domain.CourtRef, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	query, args, err := psqlbuilder.Select("event_id", "gym_id", "court_number").
		From(table).
		Where(squirrel.Eq{"event_id": eventIDs}).
		OrderBy("event_id", "gym_id", "court_number").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventID int64
		var ref domain.CourtRef
		if err := rows.Scan(&eventID, &ref.GymID, &ref.Number); err != nil {
			return nil, fmt.Errorf("%w: loadCourts - scan row: %v", ErrScanRow, err)
		}
		result[eventID] = append(result[eventID], ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadCourts - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func (r *Repository) insertCourts(ctx context.Context, executor DBExecutor, table string, eventID int64, courts []domain.CourtRef) error {
	if len(courts) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(table).Columns("event_id", "gym_id", "court_number")
	for _, c := range courts {
		insertBuilder = insertBuilder.Values(eventID, c.GymID, c.Number)
	}

	query, args, err := insertBuilder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertCourts - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return ErrReferenceNotFound
		}
		return fmt.Errorf("%w: insertCourts - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) deleteByID(ctx context.Context, op, table string, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build delete query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrEventNotFound
	}

	return nil
}
