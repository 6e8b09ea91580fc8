package model

import "time"

// Follow is a directed subscription edge. The (UserID, AuthorID) pair is
// unique; storages must enforce that atomically on creation.
type Follow struct {
	UserID    int64
	AuthorID  int64
	CreatedAt time.Time
}
