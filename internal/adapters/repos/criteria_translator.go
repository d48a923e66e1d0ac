package repos

import (
	"fmt"

	"github.com/Leozerbib/gile-back-sub000/internal/domain/model"
	"github.com/Leozerbib/gile-back-sub000/pkg/logger"
	sq "github.com/Masterminds/squirrel"
)

var (
	ticketColumnMapping = map[string]string{
		"id":          "id",
		"projectId":   "project_id",
		"sprintId":    "sprint_id",
		"title":       "title",
		"description": "description",
		"status":      "status",
		"priority":    "priority",
		"estimate":    "estimate",
		"assigneeId":  "assignee_id",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}

	sprintColumnMapping = map[string]string{
		"id":        "id",
		"projectId": "project_id",
		"name":      "name",
		"goal":      "goal",
		"status":    "status",
		"startsAt":  "starts_at",
		"endsAt":    "ends_at",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	}

	projectColumnMapping = map[string]string{
		"id":          "id",
		"workspaceId": "workspace_id",
		"name":        "name",
		"slug":        "slug",
		"description": "description",
		"status":      "status",
		"createdAt":   "created_at",
		"updatedAt":   "updated_at",
	}
)

// CriteriaTranslator turns a model.Criteria into squirrel clauses for one
// table, renaming API fields to columns through its mapping. Fields
// without a mapping pass through verbatim.
type CriteriaTranslator struct {
	columns map[string]string
	logger  logger.Logger
}

func NewCriteriaTranslator(columns map[string]string, log logger.Logger) *CriteriaTranslator {
	return &CriteriaTranslator{columns: columns, logger: log}
}

func NewTicketCriteriaTranslator(log logger.Logger) *CriteriaTranslator {
	return NewCriteriaTranslator(ticketColumnMapping, log)
}

func NewSprintCriteriaTranslator(log logger.Logger) *CriteriaTranslator {
	return NewCriteriaTranslator(sprintColumnMapping, log)
}

func NewProjectCriteriaTranslator(log logger.Logger) *CriteriaTranslator {
	return NewCriteriaTranslator(projectColumnMapping, log)
}

// ApplyToSelect adds the predicate, the full ordering and the skip/take
// window to a row-fetch query.
func (t *CriteriaTranslator) ApplyToSelect(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	if criteria.HasSpec() {
		builder = builder.Where(t.translateSpec(criteria.Spec()))
	}

	builder = t.applySorting(builder, criteria)
	builder = t.applyWindow(builder, criteria)

	return builder
}

// ApplyConditionsOnly adds the predicate and nothing else. The count
// query of a search shares the predicate with the row fetch but must not
// inherit its ordering or window.
func (t *CriteriaTranslator) ApplyConditionsOnly(builder sq.SelectBuilder, criteria model.Criteria) sq.SelectBuilder {
	if criteria.HasSpec() {
		builder = builder.Where(t.translateSpec(criteria.Spec()))
	}

	return builder
}

func (t *CriteriaTranslator) translateSpec(spec model.Specification) sq.Sqlizer {
	switch spec.Operator() {
	case model.SpecOpEq:
		return sq.Eq{t.col(spec.Field()): spec.Value()}

	case model.SpecOpNotEq:
		return sq.NotEq{t.col(spec.Field()): spec.Value()}

	case model.SpecOpIn:
		return sq.Eq{t.col(spec.Field()): spec.Value()}

	case model.SpecOpILike:
		return sq.ILike{t.col(spec.Field()): spec.Value()}

	case model.SpecOpGte:
		return sq.GtOrEq{t.col(spec.Field()): spec.Value()}

	case model.SpecOpLte:
		return sq.LtOrEq{t.col(spec.Field()): spec.Value()}

	case model.SpecOpBetween:
		values := spec.Value().([]any)
		col := t.col(spec.Field())

		return sq.And{sq.GtOrEq{col: values[0]}, sq.LtOrEq{col: values[1]}}

	case model.SpecOpMust:
		conditions := make(sq.And, 0, len(spec.Children()))
		for _, child := range spec.Children() {
			conditions = append(conditions, t.translateSpec(child))
		}

		return conditions

	case model.SpecOpShould:
		conditions := make(sq.Or, 0, len(spec.Children()))
		for _, child := range spec.Children() {
			conditions = append(conditions, t.translateSpec(child))
		}

		return conditions

	case model.SpecOpMustNot:
		children := spec.Children()
		if len(children) > 0 {
			return sq.Expr("NOT (?)", t.translateSpec(children[0]))
		}
	}

	return nil
}

func (t *CriteriaTranslator) col(field string) string {
	if col, ok := t.columns[field]; ok {
		return col
	}

	t.logger.Debug().
		Str("field", field).
		Msg("field has no column mapping, passing through verbatim")

	return field
}

func (t *CriteriaTranslator) applySorting(builder sq.SelectBuilder, c model.Criteria) sq.SelectBuilder {
	if !c.HasSorting() {
		return builder.OrderBy("created_at DESC")
	}

	for _, s := range c.Sorting() {
		builder = builder.OrderBy(fmt.Sprintf("%s %s", t.col(s.Field), s.Direction))
	}

	return builder
}

func (t *CriteriaTranslator) applyWindow(builder sq.SelectBuilder, c model.Criteria) sq.SelectBuilder {
	if !c.HasWindow() {
		return builder
	}

	return builder.Limit(uint64(c.Take())).Offset(uint64(c.Skip()))
}
