package postgres

import (
	"testing"
	"yatube/internal/adapter/out/storage"

	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func Test_getPostsQueryBuilder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		filter       storage.PostFilter
		wantContains []string
		wantArgs     []any
		notContains  []string
	}{
		{
			name:   "global feed",
			filter: storage.PostFilter{},
			wantContains: []string{
				"FROM posts",
				"ORDER BY posts.pub_date DESC, posts.id DESC",
			},
			notContains: []string{"WHERE", "JOIN"},
		},
		{
			name:   "group feed",
			filter: storage.PostFilter{GroupID: ptr(3)},
			wantContains: []string{
				"posts.group_id",
				"ORDER BY posts.pub_date DESC, posts.id DESC",
			},
			wantArgs:    []any{int64(3)},
			notContains: []string{"JOIN"},
		},
		{
			name:   "author feed",
			filter: storage.PostFilter{AuthorID: ptr(7)},
			wantContains: []string{
				"posts.author_id",
			},
			wantArgs:    []any{int64(7)},
			notContains: []string{"JOIN"},
		},
		{
			name:   "follow feed joins follows",
			filter: storage.PostFilter{FollowedBy: ptr(5)},
			wantContains: []string{
				"JOIN follows ON follows.author_id = posts.author_id",
				"follows.user_id",
			},
			wantArgs: []any{int64(5)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sql, args, err := getPostsQueryBuilder(tt.filter).ToSql()
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				require.Contains(t, sql, want)
			}
			for _, not := range tt.notContains {
				require.NotContains(t, sql, not)
			}
			require.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_getPostsQueryBuilder_CombinedFilters(t *testing.T) {
	t.Parallel()

	sql, args, err := getPostsQueryBuilder(storage.PostFilter{
		GroupID:  ptr(3),
		AuthorID: ptr(7),
	}).ToSql()
	require.NoError(t, err)

	require.Contains(t, sql, "posts.group_id")
	require.Contains(t, sql, "posts.author_id")
	require.Len(t, args, 2)
}
