package model

type (
	// Page is a bounded slice of a larger result set plus metadata
	// describing its position within the whole. Total counts every row
	// matching the predicate, independent of the window.
	Page[T any] struct {
		Items   []T
		Total   uint
		Skip    uint
		Take    uint
		HasNext bool
		HasPrev bool
	}
)

// NewPage assembles a page and its navigation metadata.
// HasNext holds iff skip+take < total; HasPrev holds iff skip > 0.
func NewPage[T any](items []T, total, skip, take uint) Page[T] {
	return Page[T]{
		Items:   items,
		Total:   total,
		Skip:    skip,
		Take:    take,
		HasNext: skip+take < total,
		HasPrev: skip > 0,
	}
}
