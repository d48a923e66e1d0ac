package model

type baseSpec struct {
	self Specification
}

func (b *baseSpec) setSelf(s Specification) { b.self = s }

func (b *baseSpec) Must(other Specification) Specification {
	return &mustSpec{specs: []Specification{b.self, other}}
}
func (b *baseSpec) Should(other Specification) Specification {
	return &shouldSpec{specs: []Specification{b.self, other}}
}
func (b *baseSpec) MustNot() Specification    { return &mustNotSpec{spec: b.self} }
func (b *baseSpec) IsComposite() bool         { return false }
func (b *baseSpec) Children() []Specification { return nil }

type fieldSpec struct {
	baseSpec
	op    SpecOperator
	field string
	value any
}

func newFieldSpec(op SpecOperator, field string, value any) Specification {
	s := &fieldSpec{op: op, field: field, value: value}
	s.setSelf(s)

	return s
}

func (s *fieldSpec) Operator() SpecOperator { return s.op }
func (s *fieldSpec) Field() string          { return s.field }
func (s *fieldSpec) Value() any             { return s.value }

// Eq matches rows whose field equals value.
func Eq(field string, value any) Specification {
	return newFieldSpec(SpecOpEq, field, value)
}

// NotEq matches rows whose field differs from value.
func NotEq(field string, value any) Specification {
	return newFieldSpec(SpecOpNotEq, field, value)
}

// In matches rows whose field is one of values.
func In(field string, values ...any) Specification {
	return newFieldSpec(SpecOpIn, field, values)
}

// ILike matches rows whose field contains pattern, case-insensitively.
// The pattern uses SQL LIKE syntax; Contains wraps a literal term.
func ILike(field, pattern string) Specification {
	return newFieldSpec(SpecOpILike, field, pattern)
}

// Contains matches rows whose field contains the literal term,
// case-insensitively.
func Contains(field, term string) Specification {
	return ILike(field, "%"+term+"%")
}

// Gte matches rows whose field is greater than or equal to value.
func Gte(field string, value any) Specification {
	return newFieldSpec(SpecOpGte, field, value)
}

// Lte matches rows whose field is less than or equal to value.
func Lte(field string, value any) Specification {
	return newFieldSpec(SpecOpLte, field, value)
}

// Between matches rows whose field lies within [start, end].
func Between(field string, start, end any) Specification {
	return newFieldSpec(SpecOpBetween, field, []any{start, end})
}
