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

const projectsTable = "projects"

var projectColumns = []string{
	"id", "workspace_id", "name", "slug", "description",
	"status", "created_at", "updated_at",
}

type (
	// ProjectsRepository handles project persistence operations.
	ProjectsRepository struct {
		pool       PoolOps
		scanner    Scanner
		translator *CriteriaTranslator
		logger     logger.Logger
	}

	projectRow struct {
		ID          string    `db:"id"`
		WorkspaceID string    `db:"workspace_id"`
		Name        string    `db:"name"`
		Slug        string    `db:"slug"`
		Description string    `db:"description"`
		Status      string    `db:"status"`
		CreatedAt   time.Time `db:"created_at"`
		UpdatedAt   time.Time `db:"updated_at"`
	}
)

// NewProjectsRepository creates a new ProjectsRepository with the given dependencies.
func NewProjectsRepository(
	pool PoolOps,
	scanner Scanner,
	translator *CriteriaTranslator,
	log logger.Logger,
) *ProjectsRepository {
	return &ProjectsRepository{
		pool:       pool,
		scanner:    scanner,
		translator: translator,
		logger:     log,
	}
}

func (r *ProjectsRepository) Create(ctx context.Context, project *model.Project) error {
	query, args, err := psql.Insert(projectsTable).
		Columns(projectColumns...).
		Values(
			project.ID.String(),
			project.WorkspaceID.String(),
			project.Name,
			project.Slug,
			project.Description,
			project.Status.String(),
			project.CreatedAt,
			project.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err = r.pool.Exec(ctx, query, args...); err != nil {
		if isDuplicateKeyError(err) {
			return model.ErrDuplicateSlug
		}

		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return nil
}

func (r *ProjectsRepository) FetchByID(ctx context.Context, id model.ProjectID) (*model.Project, error) {
	query, args, err := psql.Select(projectColumns...).
		From(projectsTable).
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

	var row projectRow
	if err := r.scanner.ScanOne(&row, rows); err != nil {
		if r.scanner.IsNotFound(err) {
			return nil, model.ErrProjectNotFound
		}

		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return convertRowToProject(row)
}

// Search fetches a page of projects and the total number of matches with
// two concurrent reads over the same predicate.
func (r *ProjectsRepository) Search(ctx context.Context, criteria model.Criteria) (model.Page[*model.Project], error) {
	listBuilder := r.translator.ApplyToSelect(
		psql.Select(projectColumns...).From(projectsTable),
		criteria,
	)
	countBuilder := r.translator.ApplyConditionsOnly(
		psql.Select("COUNT(*)").From(projectsTable),
		criteria,
	)

	var (
		projects []*model.Project
		total    uint
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		projects, err = r.queryProjects(groupCtx, listBuilder)

		return err
	})

	group.Go(func() error {
		var err error
		total, err = r.countProjects(groupCtx, countBuilder)

		return err
	})

	if err := group.Wait(); err != nil {
		return model.Page[*model.Project]{}, err
	}

	return model.NewPage(projects, total, criteria.Skip(), criteria.Take()), nil
}

func (r *ProjectsRepository) Update(ctx context.Context, project *model.Project) error {
	query, args, err := psql.Update(projectsTable).
		Set("name", project.Name).
		Set("description", project.Description).
		Set("status", project.Status.String()).
		Set("updated_at", project.UpdatedAt).
		Where(sq.Eq{"id": project.ID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectsRepository) Delete(ctx context.Context, id model.ProjectID) error {
	query, args, err := psql.Delete(projectsTable).
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
		return model.ErrProjectNotFound
	}

	return nil
}

func (r *ProjectsRepository) Exists(ctx context.Context, id model.ProjectID) (bool, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(projectsTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build count query: %w", err)
	}

	var count uint
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	return count > 0, nil
}

func (r *ProjectsRepository) queryProjects(ctx context.Context, builder sq.SelectBuilder) ([]*model.Project, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}
	defer rows.Close()

	var projectRows []projectRow
	if err := r.scanner.ScanAll(&projectRows, rows); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
	}

	projects := make([]*model.Project, 0, len(projectRows))
	for index := range projectRows {
		project, err := convertRowToProject(projectRows[index])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrDatabaseQuery, err)
		}
		projects = append(projects, project)
	}

	return projects, nil
}

func (r *ProjectsRepository) countProjects(ctx context.Context, builder sq.SelectBuilder) (uint, error) {
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

func convertRowToProject(row projectRow) (*model.Project, error) {
	id, err := model.ParseProjectID(row.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project ID: %w", err)
	}

	workspaceID, err := model.ParseWorkspaceID(row.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workspace ID: %w", err)
	}

	status, err := model.ParseProjectStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to parse project status: %w", err)
	}

	return &model.Project{
		ID:          id,
		WorkspaceID: workspaceID,
		Name:        row.Name,
		Slug:        row.Slug,
		Description: row.Description,
		Status:      status,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}
