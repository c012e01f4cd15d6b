package inventory

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

const tableMaterials = "materials"

var materialColumns = []string{
	"id", "gym_id", "name", "description", "brand", "status", "total_quantity", "available_quantity",
}

// Repository репозиторий инвентаря и заявок на обслуживание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateMaterial создает запись инвентаря
func (r *Repository) CreateMaterial(ctx context.Context, m *domain.Material) (*domain.Material, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableMaterials).
		Columns(materialColumns[1:]...).
		Values(m.GymID, m.Name, m.Description, m.Brand, m.Status, m.TotalQuantity, m.AvailableQuantity).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateMaterial - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&m.ID); err != nil {
		return nil, mapWriteError("CreateMaterial", err)
	}

	return m, nil
}

// GetMaterial получает инвентарь по ID
func (r *Repository) GetMaterial(ctx context.Context, id int64) (*domain.Material, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(materialColumns...).
		From(tableMaterials).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMaterial - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Material
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.GymID, &m.Name, &m.Description, &m.Brand, &m.Status, &m.TotalQuantity, &m.AvailableQuantity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMaterialNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMaterial - scan material: %v", ErrScanRow, err)
	}

	return &m, nil
}

// ListMaterials инвентарь спортзала; gymID nil - весь инвентарь
func (r *Repository) ListMaterials(ctx context.Context, gymID *int64) ([]*domain.Material, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(materialColumns...).
		From(tableMaterials).
		OrderBy("gym_id ASC", "name ASC")
	if gymID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"gym_id": *gymID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListMaterials - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListMaterials - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	materials := make([]*domain.Material, 0)
	for rows.Next() {
		var m domain.Material
		if err := rows.Scan(&m.ID, &m.GymID, &m.Name, &m.Description, &m.Brand, &m.Status, &m.TotalQuantity, &m.AvailableQuantity); err != nil {
			return nil, fmt.Errorf("%w: ListMaterials - scan row: %v", ErrScanRow, err)
		}
		materials = append(materials, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListMaterials - rows error: %v", ErrScanRow, err)
	}

	return materials, nil
}

// UpdateMaterial обновляет инвентарь
func (r *Repository) UpdateMaterial(ctx context.Context, m *domain.Material) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableMaterials).
		Set("name", m.Name).
		Set("description", m.Description).
		Set("brand", m.Brand).
		Set("status", m.Status).
		Set("total_quantity", m.TotalQuantity).
		Set("available_quantity", m.AvailableQuantity).
		Where(squirrel.Eq{"id": m.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateMaterial - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, executor, "UpdateMaterial", query, args, ErrMaterialNotFound)
}

// DeleteMaterial удаляет инвентарь
func (r *Repository) DeleteMaterial(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableMaterials).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteMaterial - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, executor, "DeleteMaterial", query, args, ErrMaterialNotFound)
}

func (r *Repository) execAffected(ctx context.Context, executor DBExecutor, op, query string, args []interface{}, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(op, err)
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

func mapWriteError(op string, err error) error {
	switch {
	case pgerrors.IsForeignKeyViolation(err):
		return ErrReferenceNotFound
	case pgerrors.IsCheckViolation(err):
		return ErrInvalidQuantity
	}
	return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
}
