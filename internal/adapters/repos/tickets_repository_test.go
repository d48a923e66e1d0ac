package repos_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/Leozerbib/gile-back-sub000/internal/adapters/repos"
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var ticketCols = []string{
	"id", "project_id", "sprint_id", "title", "description",
	"status", "priority", "estimate", "assignee_id",
	"created_at", "updated_at",
}

func runTicketRepoTest(
	t *testing.T,
	setupMock func(pgxmock.PgxPoolIface),
	testFn func(*testing.T, *repos.TicketsRepository),
) {
	t.Helper()
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	setupMock(mock)

	log := logger.NewTestLogger()
	repo := repos.NewTicketsRepository(mock, repos.NewPgxScanner(), repos.NewTicketCriteriaTranslator(log), log)
	testFn(t, repo)

	require.NoError(t, mock.ExpectationsWereMet())
}

func ticketToRow(ticket *model.Ticket) []any {
	var sprintID *string
	if ticket.SprintID != nil {
		value := ticket.SprintID.String()
		sprintID = &value
	}

	return []any{
		ticket.ID.String(),
		ticket.ProjectID.String(),
		sprintID,
		ticket.Title,
		ticket.Description,
		ticket.Status.String(),
		ticket.Priority.String(),
		ticket.Estimate,
		ticket.AssigneeID,
		ticket.CreatedAt,
		ticket.UpdatedAt,
	}
}

func TestTicketsRepository_Create(t *testing.T) {
	t.Parallel()

	insertSQL := regexp.QuoteMeta(
		`INSERT INTO tickets (id,project_id,sprint_id,title,description,status,priority,estimate,assignee_id,created_at,updated_at) ` +
			`VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
	)

	t.Run("successfully create ticket", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "Session expires early", model.TicketPriorityHigh)

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(insertSQL).
					WithArgs(
						ticket.ID.String(),
						ticket.ProjectID.String(),
						(*string)(nil),
						ticket.Title,
						ticket.Description,
						ticket.Status.String(),
						ticket.Priority.String(),
						ticket.Estimate,
						(*string)(nil),
						ticket.CreatedAt,
						ticket.UpdatedAt,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				require.NoError(t, repo.Create(context.Background(), ticket))
			},
		)
	})

	t.Run("database error returns wrapped ErrDatabaseQuery", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Broken", "", model.TicketPriorityLow)

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(insertSQL).
					WithArgs(
						ticket.ID.String(),
						ticket.ProjectID.String(),
						(*string)(nil),
						ticket.Title,
						ticket.Description,
						ticket.Status.String(),
						ticket.Priority.String(),
						ticket.Estimate,
						(*string)(nil),
						ticket.CreatedAt,
						ticket.UpdatedAt,
					).
					WillReturnError(errors.New("connection refused"))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				err := repo.Create(context.Background(), ticket)
				require.ErrorIs(t, err, model.ErrDatabaseQuery)
			},
		)
	})
}

func TestTicketsRepository_FetchByID(t *testing.T) {
	t.Parallel()

	selectSQL := regexp.QuoteMeta(
		`SELECT id, project_id, sprint_id, title, description, status, priority, estimate, assignee_id, created_at, updated_at ` +
			`FROM tickets WHERE id = $1 LIMIT 1`,
	)

	t.Run("returns the ticket", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "", model.TicketPriorityMedium)

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectSQL).
					WithArgs(ticket.ID.String()).
					WillReturnRows(pgxmock.NewRows(ticketCols).AddRow(ticketToRow(ticket)...))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				found, err := repo.FetchByID(context.Background(), ticket.ID)

				require.NoError(t, err)
				require.Equal(t, ticket.ID, found.ID)
				require.Equal(t, ticket.Title, found.Title)
				require.Equal(t, ticket.Status, found.Status)
			},
		)
	})

	t.Run("missing row returns ErrTicketNotFound", func(t *testing.T) {
		id := model.NewTicketID()

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectSQL).
					WithArgs(id.String()).
					WillReturnRows(pgxmock.NewRows(ticketCols))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				_, err := repo.FetchByID(context.Background(), id)
				require.ErrorIs(t, err, model.ErrTicketNotFound)
			},
		)
	})
}

func TestTicketsRepository_Search(t *testing.T) {
	t.Parallel()

	projectID := model.NewProjectID()
	first := model.NewTicket(projectID, "Fix login", "", model.TicketPriorityHigh)
	second := model.NewTicket(projectID, "Fix logout", "", model.TicketPriorityLow)

	criteria := model.NewCriteria().
		Where("projectId", projectID.String()).
		Window(0, 25).
		Build()

	listSQL := regexp.QuoteMeta(
		`SELECT id, project_id, sprint_id, title, description, status, priority, estimate, assignee_id, created_at, updated_at ` +
			`FROM tickets WHERE project_id = $1 ORDER BY created_at DESC LIMIT 25 OFFSET 0`,
	)
	countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM tickets WHERE project_id = $1`)

	t.Run("pages rows and counts concurrently", func(t *testing.T) {
		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				// The row fetch and the count run in parallel goroutines.
				mock.MatchExpectationsInOrder(false)

				mock.ExpectQuery(listSQL).
					WithArgs(projectID.String()).
					WillReturnRows(pgxmock.NewRows(ticketCols).
						AddRow(ticketToRow(first)...).
						AddRow(ticketToRow(second)...))
				mock.ExpectQuery(countSQL).
					WithArgs(projectID.String()).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(uint(42)))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				page, err := repo.Search(context.Background(), criteria)

				require.NoError(t, err)
				require.Len(t, page.Items, 2)
				require.Equal(t, uint(42), page.Total)
				require.True(t, page.HasNext)
				require.False(t, page.HasPrev)
			},
		)
	})

	t.Run("count failure fails the search", func(t *testing.T) {
		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.MatchExpectationsInOrder(false)

				mock.ExpectQuery(listSQL).
					WithArgs(projectID.String()).
					WillReturnRows(pgxmock.NewRows(ticketCols))
				mock.ExpectQuery(countSQL).
					WithArgs(projectID.String()).
					WillReturnError(errors.New("connection reset"))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				_, err := repo.Search(context.Background(), criteria)
				require.ErrorIs(t, err, model.ErrDatabaseQuery)
			},
		)
	})
}

func TestTicketsRepository_Update(t *testing.T) {
	t.Parallel()

	updateSQL := regexp.QuoteMeta(
		`UPDATE tickets SET sprint_id = $1, title = $2, description = $3, status = $4, priority = $5, ` +
			`estimate = $6, assignee_id = $7, updated_at = $8 WHERE id = $9`,
	)

	t.Run("successfully update ticket", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "", model.TicketPriorityHigh)

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(updateSQL).
					WithArgs(
						(*string)(nil),
						ticket.Title,
						ticket.Description,
						ticket.Status.String(),
						ticket.Priority.String(),
						ticket.Estimate,
						(*string)(nil),
						ticket.UpdatedAt,
						ticket.ID.String(),
					).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				require.NoError(t, repo.Update(context.Background(), ticket))
			},
		)
	})

	t.Run("zero rows affected returns ErrTicketNotFound", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Gone", "", model.TicketPriorityLow)

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(updateSQL).
					WithArgs(
						(*string)(nil),
						ticket.Title,
						ticket.Description,
						ticket.Status.String(),
						ticket.Priority.String(),
						ticket.Estimate,
						(*string)(nil),
						ticket.UpdatedAt,
						ticket.ID.String(),
					).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				err := repo.Update(context.Background(), ticket)
				require.ErrorIs(t, err, model.ErrTicketNotFound)
			},
		)
	})
}

func TestTicketsRepository_Delete(t *testing.T) {
	t.Parallel()

	deleteSQL := regexp.QuoteMeta(`DELETE FROM tickets WHERE id = $1`)

	t.Run("successfully delete ticket", func(t *testing.T) {
		id := model.NewTicketID()

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(deleteSQL).
					WithArgs(id.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				require.NoError(t, repo.Delete(context.Background(), id))
			},
		)
	})

	t.Run("zero rows affected returns ErrTicketNotFound", func(t *testing.T) {
		id := model.NewTicketID()

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(deleteSQL).
					WithArgs(id.String()).
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				err := repo.Delete(context.Background(), id)
				require.ErrorIs(t, err, model.ErrTicketNotFound)
			},
		)
	})
}

func TestTicketsRepository_RowConversion(t *testing.T) {
	t.Parallel()

	selectSQL := regexp.QuoteMeta(
		`SELECT id, project_id, sprint_id, title, description, status, priority, estimate, assignee_id, created_at, updated_at ` +
			`FROM tickets WHERE id = $1 LIMIT 1`,
	)

	t.Run("carries sprint and assignee", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "", model.TicketPriorityMedium)
		sprintID := model.NewSprintID()
		assignee := "user-42"
		ticket.MoveToSprint(&sprintID)
		ticket.Assign(&assignee)

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectSQL).
					WithArgs(ticket.ID.String()).
					WillReturnRows(pgxmock.NewRows(ticketCols).AddRow(ticketToRow(ticket)...))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				found, err := repo.FetchByID(context.Background(), ticket.ID)

				require.NoError(t, err)
				require.NotNil(t, found.SprintID)
				require.Equal(t, sprintID, *found.SprintID)
				require.NotNil(t, found.AssigneeID)
				require.Equal(t, assignee, *found.AssigneeID)
			},
		)
	})

	t.Run("invalid status in storage surfaces as parse error", func(t *testing.T) {
		ticket := model.NewTicket(model.NewProjectID(), "Fix login", "", model.TicketPriorityMedium)
		row := ticketToRow(ticket)
		row[5] = "parked"

		runTicketRepoTest(t,
			func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(selectSQL).
					WithArgs(ticket.ID.String()).
					WillReturnRows(pgxmock.NewRows(ticketCols).AddRow(row...))
			},
			func(t *testing.T, repo *repos.TicketsRepository) {
				_, err := repo.FetchByID(context.Background(), ticket.ID)
				require.ErrorIs(t, err, model.ErrInvalidTicketStatus)
			},
		)
	})
}
