package storage

// PostFilter scopes a feed query. Fields combine with AND; the zero value
// selects the global feed. Results are always ordered pub_date descending
// (newest first), ties broken by id descending.
type PostFilter struct {
	// GroupID selects posts published to the given group.
	GroupID *int64
	// AuthorID selects posts owned by the given user.
	AuthorID *int64
	// FollowedBy selects posts whose author is followed by the given user.
	FollowedBy *int64
}
