package model

type SpecOperator string

const (
	SpecOpEq      SpecOperator = "eq"
	SpecOpNotEq   SpecOperator = "neq"
	SpecOpIn      SpecOperator = "in"
	SpecOpILike   SpecOperator = "ilike"
	SpecOpGte     SpecOperator = "gte"
	SpecOpLte     SpecOperator = "lte"
	SpecOpBetween SpecOperator = "between"
	SpecOpMust    SpecOperator = "must"
	SpecOpShould  SpecOperator = "should"
	SpecOpMustNot SpecOperator = "must_not"
)

// Specification is a storage-agnostic boolean filter evaluated per row.
// Leaf nodes carry a field, an operator and a value; composite nodes
// combine children with AND (must), OR (should) or negation (must_not).
type Specification interface {
	Must(other Specification) Specification
	Should(other Specification) Specification
	MustNot() Specification
	IsComposite() bool
	Children() []Specification
	Operator() SpecOperator
	Field() string
	Value() any
}
