package model

type CriteriaBuilder struct {
	specs   []Specification
	sorting []SortField
	skip    uint
	take    uint
	fields  []string
}

func NewCriteria() *CriteriaBuilder {
	return &CriteriaBuilder{
		specs: make([]Specification, 0),
		take:  defaultTake,
	}
}

func (b *CriteriaBuilder) Where(field string, value any) *CriteriaBuilder {
	b.specs = append(b.specs, Eq(field, value))

	return b
}

func (b *CriteriaBuilder) WhereIn(field string, values ...any) *CriteriaBuilder {
	b.specs = append(b.specs, In(field, values...))

	return b
}

func (b *CriteriaBuilder) WhereContains(field, term string) *CriteriaBuilder {
	b.specs = append(b.specs, Contains(field, term))

	return b
}

func (b *CriteriaBuilder) WhereBetween(field string, start, end any) *CriteriaBuilder {
	b.specs = append(b.specs, Between(field, start, end))

	return b
}

func (b *CriteriaBuilder) WhereSpec(spec Specification) *CriteriaBuilder {
	b.specs = append(b.specs, spec)

	return b
}

func (b *CriteriaBuilder) WhereMustNot(spec Specification) *CriteriaBuilder {
	b.specs = append(b.specs, MustNot(spec))

	return b
}

func (b *CriteriaBuilder) WhereShould(specs ...Specification) *CriteriaBuilder {
	b.specs = append(b.specs, Should(specs...))

	return b
}

// OrderBy appends a sort key. A leading '-' selects descending order,
// e.g. "-createdAt".
func (b *CriteriaBuilder) OrderBy(field string) *CriteriaBuilder {
	direction := SortAsc
	actualField := field

	if len(field) > 0 && field[0] == '-' {
		direction = SortDesc
		actualField = field[1:]
	}

	return b.SortBy(actualField, direction)
}

// SortBy appends a sort key with an explicit direction. Keys apply in
// insertion order; the first key is the primary sort.
func (b *CriteriaBuilder) SortBy(field string, direction SortDirection) *CriteriaBuilder {
	b.sorting = append(b.sorting, SortField{Field: field, Direction: direction})

	return b
}

func (b *CriteriaBuilder) Window(skip, take uint) *CriteriaBuilder {
	b.skip = skip

	if take > 0 {
		b.take = take
	}

	return b
}

func (b *CriteriaBuilder) Select(fields ...string) *CriteriaBuilder {
	b.fields = append(b.fields, fields...)

	return b
}

func (b *CriteriaBuilder) Build() Criteria {
	var rootSpec Specification

	if len(b.specs) == 1 {
		rootSpec = b.specs[0]
	} else if len(b.specs) > 1 {
		rootSpec = Must(b.specs...)
	}

	return Criteria{
		spec:    rootSpec,
		sorting: b.sorting,
		skip:    b.skip,
		take:    b.take,
		fields:  b.fields,
	}
}
