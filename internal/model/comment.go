package model

import "time"

// Comment is immutable once created; there is no edit path.
type Comment struct {
	ID       int64
	PostID   int64
	AuthorID int64
	Text     string
	Created  time.Time
}
