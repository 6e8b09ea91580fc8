package service

import (
	"context"
	"fmt"
	"yatube/internal/model"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=comments.go -destination=./comment_storage_mock.go -package=service yatube/internal/service CommentStorage
type CommentStorage interface {
	CreateComment(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetCommentsByPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type CommentService struct {
	commentStorage CommentStorage
	postStorage    PostStorage
}

func NewCommentService(commentStorage CommentStorage, postStorage PostStorage) *CommentService {
	return &CommentService{
		commentStorage: commentStorage,
		postStorage:    postStorage,
	}
}

// AddComment attaches a comment to an existing post. The post must exist;
// a missing post surfaces as ErrNotFound before anything is written.
func (s *CommentService) AddComment(ctx context.Context, req AddCommentRequest) (model.Comment, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Comment{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if _, err := s.postStorage.GetPostByID(ctx, req.PostID); err != nil {
		return model.Comment{}, err
	}

	return s.commentStorage.CreateComment(ctx, model.Comment{
		PostID:   req.PostID,
		AuthorID: req.AuthorID,
		Text:     req.Text,
	})
}

// CommentsForPost returns comments in insertion order.
func (s *CommentService) CommentsForPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	if postID <= 0 {
		return nil, fmt.Errorf("postID must be > 0: %w", ErrInvalidRequest)
	}
	return s.commentStorage.GetCommentsByPost(ctx, postID)
}
