package repos

import (
	"context"
	"fmt"
	"time"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	sq "github.com/Masterminds/squirrel"
	"golang.org/x/sync/errgroup"
)

const sprintsTable = "sprints"

var sprintColumns = []string{
	"id", "project_id", "name", "goal", "status",
	"starts_at", "ends_at", "created_at", "updated_at",
}

type (
	// SprintsRepository handles sprint persistence operations.
	SprintsRepository struct {
		pool       PoolOps
		scanner    Scanner
		translator *CriteriaTranslator
		logger     logger.Logger
	}

	sprintRow struct {
		ID        string    `db:"id"`
		ProjectID string    `db:"project_id"`
		Name      string    `db:"name"`
		Goal      string    `db:"goal"`
		Status    string    `db:"status"`
		StartsAt  time.Time `db:"starts_at"`
		EndsAt    time.Time `db:"ends_at"`
		CreatedAt time.Time `db:"created_at"`
		UpdatedAt time.Time `db:"updated_at"`
	}
)

// NewSprintsRepository creates a new SprintsRepository with the given dependencies.
func NewSprintsRepository(
	pool PoolOps,
	scanner Scanner,
	translator *CriteriaTranslator,
	log logger.Logger,
) *SprintsRepository {
	return &SprintsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
	}
}

func (r *SprintsRepository) Create(ctx context.Context, sprint *model.Sprint) error {
	query, args, err := psql.Insert(sprintsTable).
		Columns(sprintColumns...).
		Values(
			sprint.ID.String(),
			sprint.ProjectID.String(),
			sprint.Name,
			sprint.Goal,
			sprint.Status.String(),
			sprint.StartsAt,
			sprint.EndsAt,
			sprint.CreatedAt,
			sprint.UpdatedAt,
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

func (r *SprintsRepository) FetchByID(ctx context.Context, id model.SprintID) (*model.Sprint, error) {
	query, args, err := psql.Select(sprintColumns...).
		From(sprintsTable).
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

	var row sprintRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrSprintNotFound
		}

		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return convertRowToSprint(row)
}

// Search fetches a page of sprints and the total number of matches with
// two concurrent reads over the same predicate.
func (r *SprintsRepository) Search(ctx context.Context, criteria model.Criteria) (model.Page[*model.Sprint], error) {
	listBuilder := r.translator.ApplyToSelect(
		psql.Select(sprintColumns...).From(sprintsTable),
		criteria,
	)
	countBuilder := r.translator.ApplyConditionsOnly(
		psql.Select("COUNT(*)").From(sprintsTable),
		criteria,
	)

	var (
		sprints []*model.Sprint
		total   uint
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		sprints, err = r.querySprints(groupCtx, listBuilder)

		return err
	})

	group.Go(func() error {
		var err error
		total, err = r.countSprints(groupCtx, countBuilder)

		return err
	})

	if err := group.Wait(); err != nil {
		return model.Page[*model.Sprint]{}, err
	}

	return model.NewPage(sprints, total, criteria.Skip(), criteria.Take()), nil
}

func (r *SprintsRepository) Update(ctx context.Context, sprint *model.Sprint) error {
	query, args, err := psql.Update(sprintsTable).
		Set("name", sprint.Name).
		Set("goal", sprint.Goal).
		Set("status", sprint.Status.String()).
		Set("starts_at", sprint.StartsAt).
		Set("ends_at", sprint.EndsAt).
		Set("updated_at", sprint.UpdatedAt).
		Where(sq.Eq{"id": sprint.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSprintNotFound
	}

	return nil
}

func (r *SprintsRepository) Delete(ctx context.Context, id model.SprintID) error {
	query, args, err := psql.Delete(sprintsTable).
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
		return model.ErrSprintNotFound
	}

	return nil
}

func (r *SprintsRepository) querySprints(ctx context.Context, builder sq.SelectBuilder) ([]*model.Sprint, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var sprintRows []sprintRow
	if err := r.scanner.ScanAll(&sprintRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	sprints := make([]*model.Sprint, 0, len(sprintRows))
	for index := range sprintRows {
		sprint, err := convertRowToSprint(sprintRows[index])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}
		sprints = append(sprints, sprint)
	}

	return sprints, nil
}

func (r *SprintsRepository) countSprints(ctx context.Context, builder sq.SelectBuilder) (uint, error) {
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

func convertRowToSprint(row sprintRow) (*model.Sprint, error) {
	id, err := model.ParseSprintID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sprint ID: %w", err)
	}

	projectID, err := model.ParseProjectID(row.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project ID: %w", err)
	}

	status, err := model.ParseSprintStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sprint status: %w", err)
	}

	return &model.Sprint{
		ID:        id,
		ProjectID: projectID,
		Name:      row.Name,
		Goal:      row.Goal,
		Status:    status,
		StartsAt:  row.StartsAt,
		EndsAt:    row.EndsAt,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
