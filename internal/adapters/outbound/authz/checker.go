package authz

import (
	"context"
	"errors"
	"fmt"

	"github.com/Leozerbib/gile-back-sub000/internal/config"
	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/internal/ports"
	"github.com/Leozerbib/gile-back-sub000/pkg/circuitbreaker"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const membershipsTable = "memberships"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Role ranks order workspace roles by privilege. An action is allowed
// when the member's rank meets the action's required rank.
var roleRank = map[string]int{
	"viewer": 1,
	"member": 2,
	"admin":  3,
}

var actionRank = map[ports.Action]int{
	ports.ActionRead:   1,
	ports.ActionWrite:  2,
	ports.ActionDelete: 3,
}

type (
	// RowQuerier is the slice of the pgx pool the checker needs.
	RowQuerier interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	}

	// Checker resolves a resource to its workspace and checks the
	// actor's membership role there. Lookups run through a circuit
	// breaker so a struggling authorization store fails fast instead
	// of stalling every request.
	Checker struct {
		pool    RowQuerier
		breaker *circuitbreaker.CircuitBreaker[string]
		logger  logger.Logger
	}
)

// NewChecker creates a membership-backed access checker.
func NewChecker(pool RowQuerier, cfg config.Authz, log logger.Logger) *Checker {
	breaker := circuitbreaker.New[string](circuitbreaker.Config{
		Name:             "authz",
		Enabled:          true,
		MaxRequests:      cfg.SuccessThreshold,
		Timeout:          cfg.BreakerTimeout,
		FailureThreshold: cfg.FailureThreshold,
	})

	return &Checker{
		pool:    pool,
		breaker: breaker,
		logger:  log,
	}
}

// HasRight reports whether the actor may perform the action on the
// resource. A missing membership yields (false, nil); infrastructure
// failures yield an error wrapping model.ErrAccessCheck.
func (c *Checker) HasRight(
	ctx context.Context,
	resourceID, actorID string,
	action ports.Action,
	resourceType ports.ResourceType,
) (bool, error) {
	builder, err := c.roleQuery(resourceID, actorID, resourceType)
	if err != nil {
		return false, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: building role query: %v", model.ErrAccessCheck, err)
	}

	role, err := circuitbreaker.Execute(c.breaker, func() (string, error) {
		var role string
		if err := c.pool.QueryRow(ctx, query, args...).Scan(&role); err != nil {
			// A missing membership is a verdict, not a failure;
			// it must not trip the breaker.
			if errors.Is(err, pgx.ErrNoRows) {
				return "", nil
			}

			return "", err
		}

		return role, nil
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
			c.logger.Warn().
				Str("resource_id", resourceID).
				Str("actor_id", actorID).
				Msg("authz circuit open, denying access check")
		}

		return false, fmt.Errorf("%w: %v", model.ErrAccessCheck, err)
	}

	if role == "" {
		return false, nil
	}

	required, ok := actionRank[action]
	if !ok {
		return false, fmt.Errorf("%w: unknown action %q", model.ErrAccessCheck, action)
	}

	return roleRank[role] >= required, nil
}

func (c *Checker) roleQuery(resourceID, actorID string, resourceType ports.ResourceType) (sq.SelectBuilder, error) {
	base := psql.Select("m.role").From(membershipsTable + " m")

	switch resourceType {
	case ports.ResourceWorkspace:
		return base.Where(sq.Eq{"m.workspace_id": resourceID, "m.user_id": actorID}), nil

	case ports.ResourceProject:
		return base.
			Join("projects p ON p.workspace_id = m.workspace_id").
			Where(sq.Eq{"p.id": resourceID, "m.user_id": actorID}), nil

	case ports.ResourceSprint:
		return base.
			Join("projects p ON p.workspace_id = m.workspace_id").
			Join("sprints s ON s.project_id = p.id").
			Where(sq.Eq{"s.id": resourceID, "m.user_id": actorID}), nil

	case ports.ResourceTicket:
		return base.
			Join("projects p ON p.workspace_id = m.workspace_id").
			Join("tickets t ON t.project_id = p.id").
			Where(sq.Eq{"t.id": resourceID, "m.user_id": actorID}), nil

	default:
		return sq.SelectBuilder{}, fmt.Errorf("%w: unknown resource type %q", model.ErrAccessCheck, resourceType)
	}
}
