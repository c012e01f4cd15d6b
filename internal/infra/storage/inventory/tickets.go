package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-GymBookingService/internal/domain"
	"github.com/m04kA/SMC-GymBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GymBookingService/pkg/psqlbuilder"
)

const tableTickets = "maintenance_tickets"

var ticketColumns = []string{
	"id", "opened_by", "gym_id", "court_number", "description", "status", "created_at", "resolved_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// CreateTicket создает заявку на обслуживание
func (r *Repository) CreateTicket(ctx context.Context, t *domain.MaintenanceTicket) (*domain.MaintenanceTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableTickets).
		Columns("opened_by", "gym_id", "court_number", "description", "status").
		Values(t.OpenedBy, t.GymID, t.CourtNumber, t.Description, t.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTicket - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt); err != nil {
		return nil, mapWriteError("CreateTicket", err)
	}

	return t, nil
}

// GetTicket получает заявку по ID
func (r *Repository) GetTicket(ctx context.Context, id int64) (*domain.MaintenanceTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ticketColumns...).
		From(tableTickets).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetTicket - build select query: %v", ErrBuildQuery, err)
	}

	ticket, err := scanTicket(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTicket - scan ticket: %v", ErrScanRow, err)
	}

	return ticket, nil
}

// ListTickets заявки, новые первыми; status nil - все
func (r *Repository) ListTickets(ctx context.Context, status *domain.TicketStatus) ([]*domain.MaintenanceTicket, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(ticketColumns...).
		From(tableTickets).
		OrderBy("created_at DESC", "id DESC")
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListTickets - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTickets - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tickets := make([]*domain.MaintenanceTicket, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListTickets - scan row: %v", ErrScanRow, err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListTickets - rows error: %v", ErrScanRow, err)
	}

	return tickets, nil
}

// UpdateTicketStatus меняет статус заявки; при переходе в resolved фиксируется resolved_at
func (r *Repository) UpdateTicketStatus(ctx context.Context, id int64, status domain.TicketStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableTickets).
		Set("status", status).
		Where(squirrel.Eq{"id": id})

	if status == domain.TicketResolved {
		updateBuilder = updateBuilder.Set("resolved_at", squirrel.Expr("NOW()"))
	} else {
		updateBuilder = updateBuilder.Set("resolved_at", nil)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateTicketStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffected(ctx, executor, "UpdateTicketStatus", query, args, ErrTicketNotFound)
}

func scanTicket(row rowScanner) (*domain.MaintenanceTicket, error) {
	var t domain.MaintenanceTicket
	var courtNumber sql.NullInt32
	var resolvedAt sql.NullTime

	if err := row.Scan(&t.ID, &t.OpenedBy, &t.GymID, &courtNumber, &t.Description, &t.Status, &t.CreatedAt, &resolvedAt); err != nil {
		return nil, err
	}

	if courtNumber.Valid {
		n := int(courtNumber.Int32)
		t.CourtNumber = &n
	}
	if resolvedAt.Valid {
		t.ResolvedAt = &resolvedAt.Time
	}

	return &t, nil
}
