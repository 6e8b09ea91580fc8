package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalStore_Save(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	st, err := NewLocalStore(root)
	require.NoError(t, err)

	key, err := st.Save("cat.PNG", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(key, "posts/"))
	require.True(t, strings.HasSuffix(key, ".png"))

	data, err := os.ReadFile(filepath.Join(root, key))
	require.NoError(t, err)
	require.Equal(t, []byte("image-bytes"), data)
}

func TestLocalStore_KeysDoNotCollide(t *testing.T) {
	t.Parallel()

	st, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	first, err := st.Save("cat.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := st.Save("cat.png", strings.NewReader("b"))
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
