package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/pgerrors"
	"github.com/m04kA/SMC-GymBookingService/pkg/psqlbuilder"
)

const tableUsers = "users"

var userColumns = []string{
	"id",
	"name",
	"email",
	"cpf",
	"password_hash",
	"status",
	"role",
	"profile",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей. Профиль роли хранится в JSONB колонке profile.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	role, profile, err := domain.EncodeProfile(user.Profile)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert(tableUsers).
		Columns("name", "email", "cpf", "password_hash", "status", "role", "profile").
		Values(user.Name, user.Email, user.CPF, user.PasswordHash, user.Status, role, string(profile)).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByEmail получает пользователя по email без учета регистра
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, "GetByEmail", squirrel.Expr("lower(email) = ?", strings.ToLower(email)))
}

// List возвращает всех пользователей по ID
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From(tableUsers).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Search ищет активных пользователей по префиксу имени или CPF
func (r *Repository) Search(ctx context.Context, q string, limit int) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	prefix := escapeLike(strings.ToLower(q)) + "%"

	query, args, err := psqlbuilder.Select(userColumns...).
		From(tableUsers).
		Where(squirrel.Eq{"status": domain.UserActive}).
		Where(squirrel.Or{
			squirrel.Expr("lower(name) LIKE ?", prefix),
			squirrel.Expr("cpf LIKE ?", prefix),
		}).
		OrderBy("name ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Update обновляет имя, email, CPF и профиль пользователя. Роль следует из профиля.
func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	role, profile, err := domain.EncodeProfile(user.Profile)
	if err != nil {
		return err
	}

	updateBuilder := psqlbuilder.Update(tableUsers).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("cpf", user.CPF).
		Set("role", role).
		Set("profile", string(profile)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": user.ID})

	if user.PasswordHash != "" {
		updateBuilder = updateBuilder.Set("password_hash", user.PasswordHash)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "Update", query, args)
}

// UpdateStatus меняет статус учетной записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.UserStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableUsers).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "UpdateStatus", query, args)
}

// Delete удаляет пользователя
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableUsers).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.exec(ctx, executor, "Delete", query, args)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From(tableUsers).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	return user, nil
}

func (r *Repository) exec(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		switch {
		case pgerrors.IsUniqueViolation(err):
			return ErrUserAlreadyExists
		case pgerrors.IsForeignKeyViolation(err):
			return ErrUserInUse
		}
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var role domain.Role
	var profile []byte

	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CPF,
		&user.PasswordHash,
		&user.Status,
		&role,
		&profile,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Profile, err = domain.DecodeProfile(role, profile)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func scanUsers(rows *sql.Rows) ([]*domain.User, error) {
	users := make([]*domain.User, 0)

	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanUsers - scan row: %v", ErrScanRow, err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanUsers - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
