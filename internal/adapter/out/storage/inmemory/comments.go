package inmemory

import (
	"context"
	"sync"
	"time"
	"yatube/internal/model"
)

// CommentStorage keeps comments per post in insertion order.
type CommentStorage struct {
	mu     sync.RWMutex
	nextID int64
	byPost map[int64][]model.Comment
}

func NewCommentStorage() *CommentStorage {
	return &CommentStorage{
		nextID: 1,
		byPost: make(map[int64][]model.Comment),
	}
}

func (s *CommentStorage) CreateComment(_ context.Context, in model.Comment) (model.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = s.nextID
	s.nextID++
	if in.Created.IsZero() {
		in.Created = time.Now()
	}
	s.byPost[in.PostID] = append(s.byPost[in.PostID], in)
	return in, nil
}

func (s *CommentStorage) GetCommentsByPost(_ context.Context, postID int64) ([]model.Comment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.byPost[postID]
	out := make([]model.Comment, len(stored))
	copy(out, stored)
	return out, nil
}
