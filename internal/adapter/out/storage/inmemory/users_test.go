package inmemory

import (
	"context"
	"testing"
	"yatube/internal/model"
	"yatube/internal/service"

	"github.com/stretchr/testify/require"
)

func TestUserStorage_CreateAndLookup(t *testing.T) {
	t.Parallel()

	st := NewUserStorage()

	created, err := st.CreateUser(context.Background(), model.User{Username: "leo"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	byName, err := st.GetUserByUsername(context.Background(), "leo")
	require.NoError(t, err)
	require.Equal(t, created, byName)

	byID, err := st.GetUserByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created, byID)

	_, err = st.GetUserByUsername(context.Background(), "nobody")
	require.ErrorIs(t, err, service.ErrNotFound)
	_, err = st.GetUserByID(context.Background(), 7)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserStorage_DuplicateUsernameRejected(t *testing.T) {
	t.Parallel()

	st := NewUserStorage()

	_, err := st.CreateUser(context.Background(), model.User{Username: "leo"})
	require.NoError(t, err)

	_, err = st.CreateUser(context.Background(), model.User{Username: "leo"})
	require.ErrorIs(t, err, service.ErrInvalidRequest)
}
