package specification

// NewestFirst is the listing order for notes.
func NewestFirst() Specification {
	return OrderBy{Field: "created_at", Desc: true}
}
