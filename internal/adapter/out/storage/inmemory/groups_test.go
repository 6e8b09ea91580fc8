package inmemory

import (
	"context"
	"testing"
	"yatube/internal/model"
	"yatube/internal/service"

	"github.com/stretchr/testify/require"
)

func TestGroupStorage_CreateAndLookup(t *testing.T) {
	t.Parallel()

	st := NewGroupStorage()

	created, err := st.CreateGroup(context.Background(), model.Group{
		Title: "Cats", Slug: "cats", Description: "feline content",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	bySlug, err := st.GetGroupBySlug(context.Background(), "cats")
	require.NoError(t, err)
	require.Equal(t, created, bySlug)

	byID, err := st.GetGroupByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, byID)

	_, err = st.GetGroupBySlug(context.Background(), "dogs")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestGroupStorage_DuplicateSlugRejected(t *testing.T) {
	t.Parallel()

	st := NewGroupStorage()

	_, err := st.CreateGroup(context.Background(), model.Group{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)

	_, err = st.CreateGroup(context.Background(), model.Group{Title: "Other cats", Slug: "cats"})
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}

func TestGroupStorage_List(t *testing.T) {
	t.Parallel()

	st := NewGroupStorage()
	_, err := st.CreateGroup(context.Background(), model.Group{Title: "Cats", Slug: "cats"})
	require.NoError(t, err)
	_, err = st.CreateGroup(context.Background(), model.Group{Title: "Dogs", Slug: "dogs"})
	require.NoError(t, err)

	groups, err := st.GetGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "cats", groups[0].Slug)
	require.Equal(t, "dogs", groups[1].Slug)
}
