package filestore

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStore writes uploads under root/posts/. Keys are content-addressed
// by name and upload time so repeated uploads of the same file name never
// collide.
type LocalStore struct {
	root string
}

func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "posts"), os.ModePerm); err != nil {
		return nil, fmt.Errorf("create media root: %w", err)
	}
	return &LocalStore{root: root}, nil
}

func (s *LocalStore) Save(fileName string, r io.Reader) (string, error) {
	key := generateKey(fileName)

	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return key, nil
}

func generateKey(fileName string) string {
	base := filepath.Base(fileName)
	sum := md5.Sum([]byte(fmt.Sprintf("%s-%d", base, time.Now().UnixNano())))
	hash := hex.EncodeToString(sum[:])

	ext := filepath.Ext(base)
	return "posts/" + hash + strings.ToLower(ext)
}
