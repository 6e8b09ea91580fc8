package service

import (
	"context"
	"errors"
	"testing"
	"time"
	"yatube/internal/adapter/out/storage"
	"yatube/internal/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPostService_CreatePost(t *testing.T) {
	t.Parallel()

	now := time.Now()
	groupID := int64(3)

	tests := []struct {
		name    string
		req     CreatePostRequest
		setup   func(m *MockPostStorage)
		wantErr error
	}{
		{
			name:    "empty text is rejected",
			req:     CreatePostRequest{AuthorID: 7},
			setup:   func(_ *MockPostStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name:    "missing author is rejected",
			req:     CreatePostRequest{Text: "hello"},
			setup:   func(_ *MockPostStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "storage error",
			req:  CreatePostRequest{AuthorID: 7, Text: "hello"},
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					CreatePost(gomock.Any(), model.Post{AuthorID: 7, Text: "hello"}).
					Return(model.Post{}, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
		{
			name: "success with group and image",
			req:  CreatePostRequest{AuthorID: 7, Text: "hello", GroupID: &groupID, Image: "posts/cat.png"},
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					CreatePost(gomock.Any(), model.Post{
						AuthorID: 7,
						Text:     "hello",
						GroupID:  &groupID,
						Image:    "posts/cat.png",
					}).
					Return(model.Post{ID: 10, AuthorID: 7, Text: "hello", GroupID: &groupID, Image: "posts/cat.png", PubDate: now}, nil)
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockPostStorage(ctrl)
			tt.setup(m)

			svc := NewPostService(m, 10)
			got, err := svc.CreatePost(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidRequest) {
					require.ErrorIs(t, err, ErrInvalidRequest)
				}
				return
			}

			require.NoError(t, err)
			require.Equal(t, int64(10), got.ID)
			require.Equal(t, int64(7), got.AuthorID)
			require.WithinDuration(t, now, got.PubDate, time.Second)
		})
	}
}

func TestPostService_EditPost(t *testing.T) {
	t.Parallel()

	pubDate := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	groupID := int64(2)

	tests := []struct {
		name    string
		req     EditPostRequest
		setup   func(m *MockPostStorage)
		wantErr error
	}{
		{
			name:    "empty text is rejected",
			req:     EditPostRequest{PostID: 5, EditorID: 7},
			setup:   func(_ *MockPostStorage) {},
			wantErr: ErrInvalidRequest,
		},
		{
			name: "missing post",
			req:  EditPostRequest{PostID: 5, EditorID: 7, Text: "edited"},
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{}, ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "non-author is forbidden",
			req:  EditPostRequest{PostID: 5, EditorID: 8, Text: "edited"},
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{ID: 5, AuthorID: 7, Text: "original", PubDate: pubDate}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "author edit keeps pub date",
			req:  EditPostRequest{PostID: 5, EditorID: 7, Text: "edited", GroupID: &groupID},
			setup: func(m *MockPostStorage) {
				m.EXPECT().
					GetPostByID(gomock.Any(), int64(5)).
					Return(model.Post{ID: 5, AuthorID: 7, Text: "original", Image: "posts/old.png", PubDate: pubDate}, nil)
				m.EXPECT().
					UpdatePost(gomock.Any(), model.Post{
						ID:       5,
						AuthorID: 7,
						Text:     "edited",
						GroupID:  &groupID,
						Image:    "posts/old.png",
						PubDate:  pubDate,
					}).
					DoAndReturn(func(_ context.Context, p model.Post) (model.Post, error) {
						return p, nil
					})
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockPostStorage(ctrl)
			tt.setup(m)

			svc := NewPostService(m, 10)
			got, err := svc.EditPost(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "edited", got.Text)
			require.Equal(t, pubDate, got.PubDate)
			require.Equal(t, "posts/old.png", got.Image)
		})
	}
}

func TestPostService_Feeds(t *testing.T) {
	t.Parallel()

	posts := make([]model.Post, 13)
	for i := range posts {
		posts[i] = model.Post{ID: int64(13 - i), AuthorID: 1, Text: "p"}
	}

	tests := []struct {
		name      string
		page      int
		wantCount int
		wantNext  bool
	}{
		{name: "first page is full", page: 1, wantCount: 10, wantNext: true},
		{name: "second page holds the rest", page: 2, wantCount: 3, wantNext: false},
		{name: "overflow clamps to last", page: 9, wantCount: 3, wantNext: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := NewMockPostStorage(ctrl)
			m.EXPECT().
				GetPosts(gomock.Any(), storage.PostFilter{}).
				Return(posts, nil)

			svc := NewPostService(m, 10)
			page, err := svc.RecentPosts(context.Background(), tt.page)

			require.NoError(t, err)
			require.Equal(t, tt.wantCount, page.Count)
			require.Equal(t, tt.wantNext, page.HasNextPage)
			require.Equal(t, 2, page.TotalPages)
		})
	}
}

func TestPostService_FollowedPosts_PassesFilter(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := int64(4)
	m := NewMockPostStorage(ctrl)
	m.EXPECT().
		GetPosts(gomock.Any(), gomock.Cond(func(x any) bool {
			f, ok := x.(storage.PostFilter)
			return ok && f.FollowedBy != nil && *f.FollowedBy == userID && f.AuthorID == nil && f.GroupID == nil
		})).
		Return(nil, nil)

	svc := NewPostService(m, 10)
	page, err := svc.FollowedPosts(context.Background(), userID, 1)

	require.NoError(t, err)
	require.Zero(t, page.Count)
}

func TestPostService_CountByAuthor(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockPostStorage(ctrl)
	m.EXPECT().
		CountPostsByAuthor(gomock.Any(), int64(7)).
		Return(4, nil)

	svc := NewPostService(m, 10)

	count, err := svc.CountByAuthor(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, 4, count)

	_, err = svc.CountByAuthor(context.Background(), 0)
	require.ErrorIs(t, err, ErrInvalidRequest)
}
