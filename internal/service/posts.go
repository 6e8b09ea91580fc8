package service

import (
	"context"
	"fmt"
	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"
	"yatube/pkg/pagination"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=posts.go -destination=./post_storage_mock.go -package=service yatube/internal/service PostStorage
type PostStorage interface {
	CreatePost(ctx context.Context, post model.Post) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	UpdatePost(ctx context.Context, post model.Post) (model.Post, error)
	GetPosts(ctx context.Context, filter storage.PostFilter) ([]model.Post, error)
	CountPostsByAuthor(ctx context.Context, authorID int64) (int, error)
}

type PostService struct {
	postStorage PostStorage
	pageSize    int
}

func NewPostService(postStorage PostStorage, pageSize int) *PostService {
	if pageSize <= 0 {
		pageSize = pagination.DefaultPageSize
	}
	return &PostService{
		postStorage: postStorage,
		pageSize:    pageSize,
	}
}

func (s *PostService) CreatePost(ctx context.Context, req CreatePostRequest) (model.Post, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	return s.postStorage.CreatePost(ctx, model.Post{
		Text:     req.Text,
		AuthorID: req.AuthorID,
		GroupID:  req.GroupID,
		Image:    req.Image,
	})
}

// EditPost updates text, group and image in place. Only the author may
// edit; PubDate is never touched.
func (s *PostService) EditPost(ctx context.Context, req EditPostRequest) (model.Post, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Post{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	post, err := s.postStorage.GetPostByID(ctx, req.PostID)
	if err != nil {
		return model.Post{}, err
	}
	if post.AuthorID != req.EditorID {
		return model.Post{}, fmt.Errorf("%w: not the post author", ErrForbidden)
	}

	post.Text = req.Text
	post.GroupID = req.GroupID
	if req.Image != "" {
		post.Image = req.Image
	}
	return s.postStorage.UpdatePost(ctx, post)
}

func (s *PostService) GetPostByID(ctx context.Context, postID int64) (model.Post, error) {
	if postID <= 0 {
		return model.Post{}, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}
	return s.postStorage.GetPostByID(ctx, postID)
}

// RecentPosts is the global feed, newest first.
func (s *PostService) RecentPosts(ctx context.Context, page int) (pagination.Page[model.Post], error) {
	return s.feed(ctx, storage.PostFilter{}, page)
}

func (s *PostService) GroupPosts(ctx context.Context, groupID int64, page int) (pagination.Page[model.Post], error) {
	return s.feed(ctx, storage.PostFilter{GroupID: &groupID}, page)
}

func (s *PostService) AuthorPosts(ctx context.Context, authorID int64, page int) (pagination.Page[model.Post], error) {
	return s.feed(ctx, storage.PostFilter{AuthorID: &authorID}, page)
}

// FollowedPosts returns posts whose author is followed by userID.
func (s *PostService) FollowedPosts(ctx context.Context, userID int64, page int) (pagination.Page[model.Post], error) {
	return s.feed(ctx, storage.PostFilter{FollowedBy: &userID}, page)
}

func (s *PostService) CountByAuthor(ctx context.Context, authorID int64) (int, error) {
	if authorID <= 0 {
		return 0, fmt.Errorf("authorID must be > 0: %w", ErrInvalidRequest)
	}
	return s.postStorage.CountPostsByAuthor(ctx, authorID)
}

func (s *PostService) feed(ctx context.Context, filter storage.PostFilter, page int) (pagination.Page[model.Post], error) {
	posts, err := s.postStorage.GetPosts(ctx, filter)
	if err != nil {
		return pagination.Page[model.Post]{}, err
	}
	return pagination.Paginate(posts, page, s.pageSize), nil
}
