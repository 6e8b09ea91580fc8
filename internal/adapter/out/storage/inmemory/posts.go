package inmemory

import (
	"context"
	"sync"
	"time"
	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/internal/service"
)

// PostStorage keeps posts in an append-only slice with a sentinel at index
// 0 so slice index equals post id. Ids grow with time, so descending id is
// descending pub_date.
type PostStorage struct {
	mu      sync.RWMutex
	posts   []model.Post
	byID    map[int64]model.Post
	follows *FollowStorage
}

func NewPostStorage(follows *FollowStorage) *PostStorage {
	return &PostStorage{
		posts:   []model.Post{{}},
		byID:    make(map[int64]model.Post),
		follows: follows,
	}
}

func (s *PostStorage) CreatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	in.ID = int64(len(s.posts))
	if in.PubDate.IsZero() {
		in.PubDate = time.Now()
	}
	s.posts = append(s.posts, in)
	s.byID[in.ID] = in
	return in, nil
}

func (s *PostStorage) GetPostByID(_ context.Context, postID int64) (model.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if post, ok := s.byID[postID]; ok {
		return post, nil
	}
	return model.Post{}, service.ErrNotFound
}

// UpdatePost replaces text, group and image. PubDate and AuthorID are kept
// from the stored row regardless of what the caller passes.
func (s *PostStorage) UpdatePost(_ context.Context, in model.Post) (model.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.byID[in.ID]
	if !ok {
		return model.Post{}, service.ErrNotFound
	}

	stored.Text = in.Text
	stored.GroupID = in.GroupID
	stored.Image = in.Image
	s.byID[in.ID] = stored
	s.posts[in.ID] = stored
	return stored, nil
}

func (s *PostStorage) GetPosts(_ context.Context, filter storage.PostFilter) ([]model.Post, error) {
	var followed map[int64]struct{}
	if filter.FollowedBy != nil {
		followed = s.follows.followedAuthors(*filter.FollowedBy)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Post, 0, len(s.posts)-1)
	for id := len(s.posts) - 1; id >= 1; id-- {
		p := s.posts[id]
		if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.GroupID != nil && (p.GroupID == nil || *p.GroupID != *filter.GroupID) {
			continue
		}
		if followed != nil {
			if _, ok := followed[p.AuthorID]; !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PostStorage) CountPostsByAuthor(_ context.Context, authorID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for id := 1; id < len(s.posts); id++ {
		if s.posts[id].AuthorID == authorID {
			count++
		}
	}
	return count, nil
}
