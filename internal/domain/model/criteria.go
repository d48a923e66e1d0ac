package model

type SortDirection string

const (
	SortAsc  SortDirection = "ASC"
	SortDesc SortDirection = "DESC"

	// MaxPageSize caps the take window of every search; larger
	// requests are rejected rather than clamped.
	MaxPageSize uint = 100

	defaultTake uint = 20
)

type (
	SortField struct {
		Field     string
		Direction SortDirection
	}

	// Criteria is the normalized output of a search request: a predicate
	// tree, an ordering and a skip/take window, ready for translation
	// into a storage query.
	Criteria struct {
		spec    Specification
		sorting []SortField
		skip    uint
		take    uint
		fields  []string
	}
)

func (c Criteria) Spec() Specification  { return c.spec }
func (c Criteria) Sorting() []SortField { return c.sorting }
func (c Criteria) Skip() uint           { return c.skip }
func (c Criteria) Take() uint           { return c.take }
func (c Criteria) Fields() []string     { return c.fields }
func (c Criteria) HasSpec() bool        { return c.spec != nil }
func (c Criteria) HasSorting() bool     { return len(c.sorting) > 0 }
func (c Criteria) HasWindow() bool      { return c.take > 0 }
