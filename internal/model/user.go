package model

import "time"

// User mirrors the external identity provider: just enough to resolve
// usernames and own posts. Account management lives outside this service.
type User struct {
	ID        int64
	Username  string
	CreatedAt time.Time
}
