package service

import (
	"context"
	"fmt"
	"yatube/internal/model"
)

//go:generate mockgen -source=users.go -destination=./user_storage_mock.go -package=service yatube/internal/service UserStorage
type UserStorage interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByID(ctx context.Context, userID int64) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)
}

// UserService resolves identities minted by the external auth system.
// It only mirrors them; registration and credentials live elsewhere.
type UserService struct {
	userStorage UserStorage
}

func NewUserService(userStorage UserStorage) *UserService {
	return &UserService{userStorage: userStorage}
}

func (s *UserService) Create(ctx context.Context, username string) (model.User, error) {
	if username == "" {
		return model.User{}, fmt.Errorf("username must not be empty: %w", ErrInvalidRequest)
	}
	return s.userStorage.CreateUser(ctx, model.User{Username: username})
}

func (s *UserService) GetByID(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, fmt.Errorf("userID must be > 0: %w", ErrInvalidRequest)
	}
	return s.userStorage.GetUserByID(ctx, userID)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (model.User, error) {
	if username == "" {
		return model.User{}, fmt.Errorf("username must not be empty: %w", ErrInvalidRequest)
	}
	return s.userStorage.GetUserByUsername(ctx, username)
}
