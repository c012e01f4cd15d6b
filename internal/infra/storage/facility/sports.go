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

const tableSports = "sports"

// CreateSport создает вид спорта; название уникально
func (r *Repository) CreateSport(ctx context.Context, sport *domain.Sport) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableSports).
		Columns("name", "max_players").
		Values(sport.Name, sport.MaxPlayers).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateSport - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID); err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrSportAlreadyExists
		}
		return nil, fmt.Errorf("%w: CreateSport - execute insert: %v", ErrExecQuery, err)
	}

	return sport, nil
}

// GetSport получает вид спорта по ID
func (r *Repository) GetSport(ctx context.Context, id int64) (*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "max_players").
		From(tableSports).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSport - build select query: %v", ErrBuildQuery, err)
	}

	var sport domain.Sport
	err = executor.QueryRowContext(ctx, query, args...).Scan(&sport.ID, &sport.Name, &sport.MaxPlayers)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSport - scan sport: %v", ErrScanRow, err)
	}

	return &sport, nil
}

// ListSports возвращает все виды спорта по названию
func (r *Repository) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "max_players").
		From(tableSports).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]*domain.Sport, 0)
	for rows.Next() {
		var sport domain.Sport
		if err := rows.Scan(&sport.ID, &sport.Name, &sport.MaxPlayers); err != nil {
			return nil, fmt.Errorf("%w: ListSports - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, &sport)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// UpdateSport обновляет вид спорта
func (r *Repository) UpdateSport(ctx context.Context, sport *domain.Sport) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableSports).
		Set("name", sport.Name).
		Set("max_players", sport.MaxPlayers).
		Where(squirrel.Eq{"id": sport.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateSport - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return ErrSportAlreadyExists
		}
		return fmt.Errorf("%w: UpdateSport - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSport - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSportNotFound
	}

	return nil
}

// DeleteSport удаляет вид спорта; связи с кортами удаляются каскадно
func (r *Repository) DeleteSport(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableSports).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteSport - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "DeleteSport", query, args, ErrSportNotFound)
}
