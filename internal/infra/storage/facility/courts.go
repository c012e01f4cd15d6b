package facility

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-GymBookingService/pkg/psqlbuilder"
)

const (
	tableCourts      = "courts"
	tableCourtSports = "court_sports"
)

var courtColumns = []string{"gym_id", "number", "capacity", "floor_type", "covered", "status"}

// CreateCourt создает корт в спортзале
func (r *Repository) CreateCourt(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableCourts).
		Columns(courtColumns...).
		Values(court.GymID, court.Number, court.Capacity, court.FloorType, court.Covered, court.Status).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateCourt - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return nil, ErrCourtAlreadyExists
		case pgerrors.IsForeignKeyViolation(err):
			return nil, ErrGymNotFound
		}
		return nil, fmt.Errorf("%w: CreateCourt - execute insert: %v", ErrExecQuery, err)
	}

	if len(court.AllowedSports) > 0 {
		if err := r.SetCourtSports(ctx, court.Ref(), court.AllowedSports); err != nil {
			return nil, err
		}
	}

	return court, nil
}

// GetCourt получает корт вместе со списком разрешенных видов спорта
func (r *Repository) GetCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error) {
	return r.getCourt(ctx, "GetCourt", ref, false)
}

// LockCourt получает корт с блокировкой строки (FOR UPDATE).
// Используется для сериализации бронирований одного корта внутри транзакции.
func (r *Repository) LockCourt(ctx context.Context, ref domain.CourtRef) (*domain.Court, error) {
	return r.getCourt(ctx, "LockCourt", ref, dbmetrics.IsInTransaction(ctx))
}

func (r *Repository) getCourt(ctx context.Context, op string, ref domain.CourtRef, forUpdate bool) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From(tableCourts).
		Where(squirrel.Eq{"gym_id": ref.GymID, "number": ref.Number})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var court domain.Court
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&court.GymID, &court.Number, &court.Capacity, &court.FloorType, &court.Covered, &court.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan court: %v", ErrScanRow, op, err)
	}

	sports, err := r.loadCourtSports(ctx, executor, squirrel.Eq{"gym_id": ref.GymID, "court_number": ref.Number})
	if err != nil {
		return nil, err
	}
	court.AllowedSports = sports[ref]

	return &court, nil
}

// ListCourts возвращает корты спортзала по возрастанию номера
func (r *Repository) ListCourts(ctx context.Context, gymID int64) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From(tableCourts).
		Where(squirrel.Eq{"gym_id": gymID}).
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCourts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		if err := rows.Scan(&court.GymID, &court.Number, &court.Capacity, &court.FloorType, &court.Covered, &court.Status); err != nil {
			return nil, fmt.Errorf("%w: ListCourts - scan row: %v", ErrScanRow, err)
		}
		courts = append(courts, &court)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCourts - rows error: %v", ErrScanRow, err)
	}

	sports, err := r.loadCourtSports(ctx, executor, squirrel.Eq{"gym_id": gymID})
	if err != nil {
		return nil, err
	}
	for _, c := range courts {
		c.AllowedSports = sports[c.Ref()]
	}

	return courts, nil
}

// UpdateCourt обновляет характеристики корта; номер и спортзал не меняются
func (r *Repository) UpdateCourt(ctx context.Context, court *domain.Court) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableCourts).
		Set("capacity", court.Capacity).
		Set("floor_type", court.FloorType).
		Set("covered", court.Covered).
		Set("status", court.Status).
		Where(squirrel.Eq{"gym_id": court.GymID, "number": court.Number}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCourt - build update query: %v", ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "UpdateCourt", query, args, ErrCourtNotFound)
}

// UpdateCourtStatus меняет только статус корта
func (r *Repository) UpdateCourtStatus(ctx context.Context, ref domain.CourtRef, status domain.CourtStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableCourts).
		Set("status", status).
		Where(squirrel.Eq{"gym_id": ref.GymID, "number": ref.Number}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateCourtStatus - build update query: %v", ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "UpdateCourtStatus", query, args, ErrCourtNotFound)
}

// DeleteCourt удаляет корт; корт с бронированиями удалить нельзя (ErrInUse)
func (r *Repository) DeleteCourt(ctx context.Context, ref domain.CourtRef) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableCourts).
		Where(squirrel.Eq{"gym_id": ref.GymID, "number": ref.Number}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteCourt - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "DeleteCourt", query, args, ErrCourtNotFound)
}

// SetCourtSports заменяет список разрешенных видов спорта корта.
// Вызывается внутри транзакции, чтобы удаление и вставка были атомарны.
func (r *Repository) SetCourtSports(ctx context.Context, ref domain.CourtRef, sportIDs []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableCourtSports).
		Where(squirrel.Eq{"gym_id": ref.GymID, "court_number": ref.Number}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCourtSports - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetCourtSports - execute delete: %v", ErrExecQuery, err)
	}

	if len(sportIDs) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert(tableCourtSports).Columns("gym_id", "court_number", "sport_id")
	for _, id := range sportIDs {
		insertBuilder = insertBuilder.Values(ref.GymID, ref.Number, id)
	}

	query, args, err = insertBuilder.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetCourtSports - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return ErrSportNotFound
		}
		return fmt.Errorf("%w: SetCourtSports - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *Repository) loadCourtSports(ctx context.Context, executor DBExecutor, where squirrel.Sqlizer) (map[domain.CourtRef][]int64, error) {
	query, args, err := psqlbuilder.Select("gym_id", "court_number", "sport_id").
		From(tableCourtSports).
		Where(where).
		OrderBy("sport_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadCourtSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadCourtSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[domain.CourtRef][]int64)
	for rows.Next() {
		var ref domain.CourtRef
		var sportID int64
		if err := rows.Scan(&ref.GymID, &ref.Number, &sportID); err != nil {
			return nil, fmt.Errorf("%w: loadCourtSports - scan row: %v", ErrScanRow, err)
		}
		result[ref] = append(result[ref], sportID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadCourtSports - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}
