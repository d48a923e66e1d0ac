package model

import (
	"fmt"
	"sort"
	"strings"
)

// FilterOperator is the comparison verb of a single filter rule, as
// supplied by callers.
type FilterOperator string

const (
	FilterOpEquals    FilterOperator = "equals"
	FilterOpNotEquals FilterOperator = "notEquals"
	FilterOpIn        FilterOperator = "in"
	FilterOpContains  FilterOperator = "contains"
	FilterOpGte       FilterOperator = "gte"
	FilterOpLte       FilterOperator = "lte"
	FilterOpBetween   FilterOperator = "between"
)

type (
	// FilterRule is a single {field, operator, value} constraint.
	FilterRule struct {
		Field    string
		Operator FilterOperator
		Value    any
	}

	// SortSpec is one caller-supplied sort key. Order in a sort list is
	// significant: the first entry is the primary key, every following
	// entry breaks ties of the previous ones.
	SortSpec struct {
		Field string
		Order SortDirection
	}

	// SearchRequest carries a free-text term, sort keys, filter rules and
	// a skip/take window. It is transient: built per call, never stored.
	SearchRequest struct {
		Term  string
		Sort  []SortSpec
		Rules []FilterRule
		Skip  uint
		Take  uint
	}
)

// WithDefaultTake returns a copy of the request with the entity default
// window size applied when the caller supplied none.
func (r SearchRequest) WithDefaultTake(take uint) SearchRequest {
	if r.Take == 0 {
		r.Take = take
	}

	return r
}

// Validate rejects windows beyond the global cap. Oversized requests
// fail rather than being clamped, so callers learn about the limit.
func (r SearchRequest) Validate() error {
	if r.Take > MaxPageSize {
		return fmt.Errorf("%w: take %d exceeds %d", ErrPageSizeTooLarge, r.Take, MaxPageSize)
	}

	return nil
}

// ParseSortDirection normalizes a caller-supplied direction string.
func ParseSortDirection(s string) (SortDirection, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ASC", "":
		return SortAsc, nil
	case "DESC":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, s)
	}
}

// ParseFilterOperator validates a caller-supplied operator string.
// Unknown operators are an error, never silently treated as equality.
func ParseFilterOperator(s string) (FilterOperator, error) {
	op := FilterOperator(s)

	switch op {
	case FilterOpEquals, FilterOpNotEquals, FilterOpIn, FilterOpContains,
		FilterOpGte, FilterOpLte, FilterOpBetween:
		return op, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFilterOperator, s)
	}
}

// Spec translates the rule into its predicate form.
func (r FilterRule) Spec() (Specification, error) {
	switch r.Operator {
	case FilterOpEquals:
		return Eq(r.Field, r.Value), nil

	case FilterOpNotEquals:
		return NotEq(r.Field, r.Value), nil

	case FilterOpIn:
		values, ok := r.Value.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %q requires a list value", ErrInvalidFilterValue, r.Field)
		}

		return In(r.Field, values...), nil

	case FilterOpContains:
		term, ok := r.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q requires a string value", ErrInvalidFilterValue, r.Field)
		}

		return Contains(r.Field, term), nil

	case FilterOpGte:
		return Gte(r.Field, r.Value), nil

	case FilterOpLte:
		return Lte(r.Field, r.Value), nil

	case FilterOpBetween:
		bounds, ok := r.Value.([]any)
		if !ok || len(bounds) != 2 {
			return nil, fmt.Errorf("%w: %q requires a [start, end] pair", ErrInvalidFilterValue, r.Field)
		}

		return Between(r.Field, bounds[0], bounds[1]), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilterOperator, r.Operator)
	}
}

// LiftFilterMap converts a legacy flat filter map into filter rules:
// scalars become equality rules, lists and {in: [...]} markers become
// membership rules. Keys are visited in sorted order so the lifted
// rule list is deterministic.
func LiftFilterMap(filters map[string]any) []FilterRule {
	if len(filters) == 0 {
		return nil
	}

	keys := make([]string, 0, len(filters))
	for key := range filters {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	rules := make([]FilterRule, 0, len(keys))

	for _, key := range keys {
		switch value := filters[key].(type) {
		case []any:
			rules = append(rules, FilterRule{Field: key, Operator: FilterOpIn, Value: value})
		case map[string]any:
			if members, ok := value["in"].([]any); ok {
				rules = append(rules, FilterRule{Field: key, Operator: FilterOpIn, Value: members})

				continue
			}

			rules = append(rules, FilterRule{Field: key, Operator: FilterOpEquals, Value: value})
		default:
			rules = append(rules, FilterRule{Field: key, Operator: FilterOpEquals, Value: value})
		}
	}

	return rules
}

// TextSearch builds the free-text predicate: an OR of case-insensitive
// contains conditions over the searchable fields, in field order.
// An empty term yields no constraint.
func TextSearch(term string, searchableFields []string) Specification {
	term = strings.TrimSpace(term)
	if term == "" || len(searchableFields) == 0 {
		return nil
	}

	if len(searchableFields) == 1 {
		return Contains(searchableFields[0], term)
	}

	branches := make([]Specification, 0, len(searchableFields))
	for _, field := range searchableFields {
		branches = append(branches, Contains(field, term))
	}

	return Should(branches...)
}

// SearchCriteria normalizes a search request into criteria. The caller
// filters and the text predicate are composed first; scope is composed
// last and, being a mandatory conjunct, can never be overridden or
// relaxed by caller-supplied rules.
func SearchCriteria(scope Specification, req SearchRequest, searchableFields []string) (Criteria, error) {
	builder := NewCriteria()

	for _, rule := range req.Rules {
		spec, err := rule.Spec()
		if err != nil {
			return Criteria{}, err
		}

		builder.WhereSpec(spec)
	}

	if textSpec := TextSearch(req.Term, searchableFields); textSpec != nil {
		builder.WhereSpec(textSpec)
	}

	if scope != nil {
		builder.WhereSpec(scope)
	}

	for _, sortSpec := range req.Sort {
		builder.SortBy(sortSpec.Field, sortSpec.Order)
	}

	builder.Window(req.Skip, req.Take)

	return builder.Build(), nil
}
