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

const tableGyms = "gyms"

// Repository репозиторий спортзалов, кортов и видов спорта
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateGym создает спортзал
func (r *Repository) CreateGym(ctx context.Context, gym *domain.Gym) (*domain.Gym, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableGyms).
		Columns("name", "address", "capacity").
		Values(gym.Name, gym.Address, gym.Capacity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateGym - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&gym.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateGym - execute insert: %v", ErrExecQuery, err)
	}

	return gym, nil
}

// GetGym получает спортзал по ID
func (r *Repository) GetGym(ctx context.Context, id int64) (*domain.Gym, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "capacity").
		From(tableGyms).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetGym - build select query: %v", ErrBuildQuery, err)
	}

	var gym domain.Gym
	err = executor.QueryRowContext(ctx, query, args...).Scan(&gym.ID, &gym.Name, &gym.Address, &gym.Capacity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrGymNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetGym - scan gym: %v", ErrScanRow, err)
	}

	return &gym, nil
}

// ListGyms возвращает все спортзалы
func (r *Repository) ListGyms(ctx context.Context) ([]*domain.Gym, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "capacity").
		From(tableGyms).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListGyms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListGyms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	gyms := make([]*domain.Gym, 0)
	for rows.Next() {
		var gym domain.Gym
		if err := rows.Scan(&gym.ID, &gym.Name, &gym.Address, &gym.Capacity); err != nil {
			return nil, fmt.Errorf("%w: ListGyms - scan row: %v", ErrScanRow, err)
		}
		gyms = append(gyms, &gym)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListGyms - rows error: %v", ErrScanRow, err)
	}

	return gyms, nil
}

// UpdateGym обновляет данные спортзала
func (r *Repository) UpdateGym(ctx context.Context, gym *domain.Gym) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableGyms).
		Set("name", gym.Name).
		Set("address", gym.Address).
		Set("capacity", gym.Capacity).
		Where(squirrel.Eq{"id": gym.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateGym - build update query: %v", ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "UpdateGym", query, args, ErrGymNotFound)
}

// DeleteGym удаляет спортзал. Корты удаляются каскадно; спортзал с бронированиями удалить нельзя.
func (r *Repository) DeleteGym(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableGyms).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteGym - build delete query: %v", ErrBuildQuery, err)
	}

	return execAffected(ctx, executor, "DeleteGym", query, args, ErrGymNotFound)
}

// execAffected выполняет запрос и возвращает notFound, если ни одна строка не изменена
func execAffected(ctx context.Context, executor DBExecutor, op, query string, args []interface{}, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if pgerrors.IsForeignKeyViolation(err) {
			return ErrInUse
		}
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}
