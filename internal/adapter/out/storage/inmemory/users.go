package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"
	"yatube/internal/model"
	"yatube/internal/service"
)

type UserStorage struct {
	mu         sync.RWMutex
	users      []model.User
	byUsername map[string]int64
}

func NewUserStorage() *UserStorage {
	return &UserStorage{
		users:      []model.User{{}},
		byUsername: make(map[string]int64),
	}
}

func (s *UserStorage) CreateUser(_ context.Context, in model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byUsername[in.Username]; ok {
		return model.User{}, fmt.Errorf("%w: username %q already taken", service.ErrInvalidRequest, in.Username)
	}

	in.ID = int64(len(s.users))
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now()
	}
	s.users = append(s.users, in)
	s.byUsername[in.Username] = in.ID
	return in, nil
}

func (s *UserStorage) GetUserByID(_ context.Context, userID int64) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if userID < 1 || userID >= int64(len(s.users)) {
		return model.User{}, service.ErrNotFound
	}
	return s.users[userID], nil
}

func (s *UserStorage) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byUsername[username]
	if !ok {
		return model.User{}, service.ErrNotFound
	}
	return s.users[id], nil
}
