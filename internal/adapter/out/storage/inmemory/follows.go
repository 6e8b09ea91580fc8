package inmemory

import (
	"context"
	"sync"
	"time"
	"yatube/internal/model"
)

type followKey struct {
	userID   int64
	authorID int64
}

// FollowStorage holds the (user, author) edge set. A single mutex section
// makes CreateFollow an atomic get-or-create, so concurrent follows of the
// same pair still leave exactly one edge.
type FollowStorage struct {
	mu    sync.RWMutex
	pairs map[followKey]model.Follow
}

func NewFollowStorage() *FollowStorage {
	return &FollowStorage{
		pairs: make(map[followKey]model.Follow),
	}
}

func (s *FollowStorage) CreateFollow(_ context.Context, in model.Follow) error {
	key := followKey{userID: in.UserID, authorID: in.AuthorID}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pairs[key]; ok {
		return nil
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.pairs[key] = in
	return nil
}

func (s *FollowStorage) DeleteFollow(_ context.Context, userID, authorID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pairs, followKey{userID: userID, authorID: authorID})
	return nil
}

func (s *FollowStorage) FollowExists(_ context.Context, userID, authorID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pairs[followKey{userID: userID, authorID: authorID}]
	return ok, nil
}

func (s *FollowStorage) followedAuthors(userID int64) map[int64]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[int64]struct{})
	for key := range s.pairs {
		if key.userID == userID {
			out[key.authorID] = struct{}{}
		}
	}
	return out
}
