package service

import (
	"context"
	"fmt"
	"yatube/internal/model"
)

//go:generate mockgen -source=follows.go -destination=./follow_storage_mock.go -package=service yatube/internal/service FollowStorage
type FollowStorage interface {
	// CreateFollow must be an atomic get-or-create: concurrent calls for
	// the same pair leave exactly one row.
	CreateFollow(ctx context.Context, follow model.Follow) error
	// DeleteFollow is a no-op when the pair is absent.
	DeleteFollow(ctx context.Context, userID, authorID int64) error
	FollowExists(ctx context.Context, userID, authorID int64) (bool, error)
}

type FollowService struct {
	followStorage FollowStorage
}

func NewFollowService(followStorage FollowStorage) *FollowService {
	return &FollowService{followStorage: followStorage}
}

// Follow subscribes user to author. Self-follow is silently refused and
// re-following an already followed author is idempotent.
func (s *FollowService) Follow(ctx context.Context, userID, authorID int64) error {
	if userID <= 0 || authorID <= 0 {
		return fmt.Errorf("ids must be > 0: %w", ErrInvalidRequest)
	}
	if userID == authorID {
		return nil
	}
	return s.followStorage.CreateFollow(ctx, model.Follow{
		UserID:   userID,
		AuthorID: authorID,
	})
}

// Unfollow removes the subscription; unfollowing a non-followed author is
// not an error.
func (s *FollowService) Unfollow(ctx context.Context, userID, authorID int64) error {
	if userID <= 0 || authorID <= 0 {
		return fmt.Errorf("ids must be > 0: %w", ErrInvalidRequest)
	}
	return s.followStorage.DeleteFollow(ctx, userID, authorID)
}

// IsFollowing reports whether user follows author. Anonymous viewers
// (userID <= 0) never follow anyone.
func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	if userID <= 0 || authorID <= 0 {
		return false, nil
	}
	return s.followStorage.FollowExists(ctx, userID, authorID)
}
