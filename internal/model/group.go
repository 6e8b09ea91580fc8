package model

// Group is an admin-curated category. Users never mutate groups at runtime.
type Group struct {
	ID          int64
	Title       string
	Slug        string
	Description string
}
