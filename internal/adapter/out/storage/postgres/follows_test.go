package postgres

import (
	"testing"
	"yatube/internal/model"

	"github.com/stretchr/testify/require"
)

func Test_createFollowQueryBuilder(t *testing.T) {
	t.Parallel()

	sql, args, err := createFollowQueryBuilder(model.Follow{UserID: 1, AuthorID: 2}).ToSql()
	require.NoError(t, err)

	require.Contains(t, sql, "INSERT INTO follows")
	require.Contains(t, sql, "ON CONFLICT (user_id, author_id) DO NOTHING")
	require.Equal(t, []any{int64(1), int64(2)}, args)
}
