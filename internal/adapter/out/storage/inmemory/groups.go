package inmemory

import (
	"context"
	"fmt"
	"sync"
	"yatube/internal/model"
	"yatube/internal/service"
)

type GroupStorage struct {
	mu     sync.RWMutex
	groups []model.Group
	bySlug map[string]int64
}

func NewGroupStorage() *GroupStorage {
	return &GroupStorage{
		groups: []model.Group{{}},
		bySlug: make(map[string]int64),
	}
}

func (s *GroupStorage) CreateGroup(_ context.Context, in model.Group) (model.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.bySlug[in.Slug]; ok {
		return model.Group{}, fmt.Errorf("%w: slug %q already taken", service.ErrInvalidRequest, in.Slug)
	}

	in.ID = int64(len(s.groups))
	s.groups = append(s.groups, in)
	s.bySlug[in.Slug] = in.ID
	return in, nil
}

func (s *GroupStorage) GetGroupBySlug(_ context.Context, slug string) (model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.bySlug[slug]
	if !ok {
		return model.Group{}, service.ErrNotFound
	}
	return s.groups[id], nil
}

func (s *GroupStorage) GetGroupByID(_ context.Context, groupID int64) (model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if groupID < 1 || groupID >= int64(len(s.groups)) {
		return model.Group{}, service.ErrNotFound
	}
	return s.groups[groupID], nil
}

func (s *GroupStorage) GetGroups(_ context.Context) ([]model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Group, len(s.groups)-1)
	copy(out, s.groups[1:])
	return out, nil
}
