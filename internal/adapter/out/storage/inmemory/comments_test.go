package inmemory

import (
	"context"
	"testing"
	"time"
	"yatube/internal/model"

	"github.com/stretchr/testify/require"
)

func TestCommentStorage_CreateAndListInInsertionOrder(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()

	first, err := st.CreateComment(context.Background(), model.Comment{PostID: 1, AuthorID: 2, Text: "first"})
	require.NoError(t, err)
	require.Equal(t, int64(1), first.ID)
	require.WithinDuration(t, time.Now(), first.Created, time.Second)

	second, err := st.CreateComment(context.Background(), model.Comment{PostID: 1, AuthorID: 3, Text: "second"})
	require.NoError(t, err)
	require.Equal(t, int64(2), second.ID)

	_, err = st.CreateComment(context.Background(), model.Comment{PostID: 2, AuthorID: 2, Text: "other post"})
	require.NoError(t, err)

	got, err := st.GetCommentsByPost(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "first", got[0].Text)
	require.Equal(t, "second", got[1].Text)
}

func TestCommentStorage_EmptyPostHasNoComments(t *testing.T) {
	t.Parallel()

	st := NewCommentStorage()

	got, err := st.GetCommentsByPost(context.Background(), 42)
	require.NoError(t, err)
	require.Empty(t, got)
}
