package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/sync/errgroup"
)

const ticketsTable = "tickets"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	ticketColumns = []string{
		"id", "project_id", "sprint_id", "title", "description",
		"status", "priority", "estimate", "assignee_id",
		"created_at", "updated_at",
	}
)

type (
	// PoolOps defines the interface for database operations.
	// This allows injecting mock implementations for testing.
	PoolOps interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
		Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		Ping(ctx context.Context) error
	}

	// TicketsRepository handles ticket persistence operations.
	TicketsRepository struct {
		pool       PoolOps
		scanner    Scanner
		translator *CriteriaTranslator
		logger     logger.Logger
	}

	ticketRow struct {
		ID          string    `db:"id"`
		ProjectID   string    `db:"project_id"`
		SprintID    *string   `db:"sprint_id"`
		Title       string    `db:"title"`
		Description string    `db:"description"`
		Status      string    `db:"status"`
		Priority    string    `db:"priority"`
		Estimate    float64   `db:"estimate"`
		AssigneeID  *string   `db:"assignee_id"`
		CreatedAt   time.Time `db:"created_at"`
		UpdatedAt   time.Time `db:"updated_at"`
	}
)

// NewTicketsRepository creates a new TicketsRepository with the given dependencies.
func NewTicketsRepository(
	pool PoolOps,
	scanner Scanner,
	translator *CriteriaTranslator,
	log logger.Logger,
) *TicketsRepository {
	return &TicketsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
	}
}

func (r *TicketsRepository) Create(ctx context.Context, ticket *model.Ticket) error {
	query, args, err := psql.Insert(ticketsTable).
		Columns(ticketColumns...).
		Values(
			ticket.ID.String(),
			ticket.ProjectID.String(),
			sprintIDValue(ticket.SprintID),
			ticket.Title,
			ticket.Description,
			ticket.Status.String(),
			ticket.Priority.String(),
			ticket.Estimate,
			ticket.AssigneeID,
			ticket.CreatedAt,
			ticket.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err = r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return nil
}

func (r *TicketsRepository) FetchByID(ctx context.Context, id model.TicketID) (*model.Ticket, error) {
	query, args, err := psql.Select(ticketColumns...).
		From(ticketsTable).
		Where(sq.Eq{"id": id.String()}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var row ticketRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrTicketNotFound
		}

		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return convertRowToTicket(row)
}

// Search fetches a page of tickets and the total number of matches. Both
// reads run concurrently and share the criteria predicate; only the row
// fetch carries the ordering and window.
func (r *TicketsRepository) Search(ctx context.Context, criteria model.Criteria) (model.Page[*model.Ticket], error) {
	listBuilder := r.translator.ApplyToSelect(
		psql.Select(ticketColumns...).From(ticketsTable),
		criteria,
	)
	countBuilder := r.translator.ApplyConditionsOnly(
		psql.Select("COUNT(*)").From(ticketsTable),
		criteria,
	)

	var (
		tickets []*model.Ticket
		total   uint
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		tickets, err = r.queryTickets(groupCtx, listBuilder)

		return err
	})

	group.Go(func() error {
		var err error
		total, err = r.countRows(groupCtx, countBuilder)

		return err
	})

	if err := group.Wait(); err != nil {
		return model.Page[*model.Ticket]{}, err
	}

	return model.NewPage(tickets, total, criteria.Skip(), criteria.Take()), nil
}

func (r *TicketsRepository) Update(ctx context.Context, ticket *model.Ticket) error {
	query, args, err := psql.Update(ticketsTable).
		Set("sprint_id", sprintIDValue(ticket.SprintID)).
		Set("title", ticket.Title).
		Set("description", ticket.Description).
		Set("status", ticket.Status.String()).
		Set("priority", ticket.Priority.String()).
		Set("estimate", ticket.Estimate).
		Set("assignee_id", ticket.AssigneeID).
		Set("updated_at", ticket.UpdatedAt).
		Where(sq.Eq{"id": ticket.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrTicketNotFound
	}

	return nil
}

func (r *TicketsRepository) Delete(ctx context.Context, id model.TicketID) error {
	query, args, err := psql.Delete(ticketsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrTicketNotFound
	}

	return nil
}

// CheckHealth reports database reachability for readiness probes.
func (r *TicketsRepository) CheckHealth(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *TicketsRepository) queryTickets(ctx context.Context, builder sq.SelectBuilder) ([]*model.Ticket, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var ticketRows []ticketRow
	if err := r.scanner.ScanAll(&ticketRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	tickets := make([]*model.Ticket, 0, len(ticketRows))
	for index := range ticketRows {
		ticket, err := convertRowToTicket(ticketRows[index])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

func (r *TicketsRepository) countRows(ctx context.Context, builder sq.SelectBuilder) (uint, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query: %w", err)
	}

	var total uint
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return total, nil
}

func convertRowToTicket(row ticketRow) (*model.Ticket, error) {
	id, err := model.ParseTicketID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket ID: %w", err)
	}

	projectID, err := model.ParseProjectID(row.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project ID: %w", err)
	}

	var sprintID *model.SprintID
	if row.SprintID != nil {
		parsed, err := model.ParseSprintID(*row.SprintID)
		if err != nil {
			return nil, fmt.Errorf("failed to parse sprint ID: %w", err)
		}
		sprintID = &parsed
	}

	status, err := model.ParseTicketStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket status: %w", err)
	}

	priority, err := model.ParseTicketPriority(row.Priority)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ticket priority: %w", err)
	}

	return &model.Ticket{
		ID:          id,
		ProjectID:   projectID,
		SprintID:    sprintID,
		Title:       row.Title,
		Description: row.Description,
		Status:      status,
		Priority:    priority,
		Estimate:    row.Estimate,
		AssigneeID:  row.AssigneeID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func sprintIDValue(id *model.SprintID) *string {
	if id == nil {
		return nil
	}

	value := id.String()

	return &value
}

func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
