package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"yatube/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentService_AddComment(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name    string
		req     AddCommentRequest
		setup   func(posts *MockPostStorage, comments *MockCommentStorage)
		wantErr error
	}{
		{
			name:    "empty text is rejected before any lookup",
			req:     AddCommentRequest{PostID: 5, AuthorID: 7},
			setup:   func(_ *MockPostStorage, _ *MockCommentStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "missing post",
			req:  AddCommentRequest{PostID: 5, AuthorID: 7, Text: "nice"},
			setup: func(posts *MockPostStorage, _ *MockCommentStorage) {
				posts.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "storage error",
			req:  AddCommentRequest{PostID: 5, AuthorID: 7, Text: "nice"},
			setup: func(posts *MockPostStorage, comments *MockCommentStorage) {
				posts.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{ID: 5, AuthorID: 1, Text: "p"}, nil)
				comments.EXPECT().
					CreateComment(gomock.Any(), model.Comment{PostID: 5, AuthorID: 7, Text: "nice"}).
					Return(model.Comment{}, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
		{
			name: "success",
			req:  AddCommentRequest{PostID: 5, AuthorID: 7, Text: "nice"},
			setup: func(posts *MockPostStorage, comments *MockCommentStorage) {
				posts.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{ID: 5, AuthorID: 1, Text: "p"}, nil)
				comments.EXPECT().
					CreateComment(gomock.Any(), model.Comment{PostID: 5, AuthorID: 7, Text: "nice"}).
					Return(model.Comment{ID: 1, PostID: 5, AuthorID: 7, Text: "nice", Created: now}, nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			posts := NewMockPostStorage(ctrl)
			comments := NewMockCommentStorage(ctrl)
			tt.setup(posts, comments)

			svc := NewCommentService(comments, posts)
			got, err := svc.AddComment(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				}
				if errors.Is(tt.wantErr, ErrNotFound) {
					require.ErrorIs(t, err, ErrNotFound)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(5), got.PostID)
			require.Equal(t, int64(7), got.AuthorID)
			require.WithinDuration(t, now, got.Created, time.Second)
		})
	}
}

func TestCommentService_CommentsForPost(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	posts := NewMockPostStorage(ctrl)
	comments := NewMockCommentStorage(ctrl)
	comments.EXPECT().
		GetCommentsByPost(gomock.Any(), int64(5)).
		Return([]model.Comment{
			{ID: 1, PostID: 5, AuthorID: 2, Text: "first"},
			{ID: 2, PostID: 5, AuthorID: 3, Text: "second"},
		}, nil)

	svc := NewCommentService(comments, posts)

	got, err := svc.CommentsForPost(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Text)

	_, err = svc.CommentsForPost(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidRequest)
}
