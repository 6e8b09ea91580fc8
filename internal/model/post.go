package model

import "time"

// Post is a user-authored entry in the global feed. GroupID is optional,
// Image holds a filestore key and is empty when no file was attached.
// PubDate is assigned once at creation and never changed by edits.
type Post struct {
	ID       int64
	Text     string
	AuthorID int64
	GroupID  *int64
	Image    string
	PubDate  time.Time
}
