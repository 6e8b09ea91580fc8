package service

import (
	"context"
	"fmt"
	"regexp"
	"yatube/internal/model"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

//go:generate mockgen -source=groups.go -destination=./group_storage_mock.go -package=service yatube/internal/service GroupStorage
type GroupStorage interface {
	CreateGroup(ctx context.Context, group model.Group) (model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (model.Group, error)
	GetGroupByID(ctx context.Context, groupID int64) (model.Group, error)
	GetGroups(ctx context.Context) ([]model.Group, error)
}

type GroupService struct {
	groupStorage GroupStorage
}

func NewGroupService(groupStorage GroupStorage) *GroupService {
	return &GroupService{groupStorage: groupStorage}
}

// CreateGroup is an administrative operation; groups are immutable to
// regular users once created.
func (s *GroupService) CreateGroup(ctx context.Context, req CreateGroupRequest) (model.Group, error) {
	if err := validator.New().Struct(req); err != nil {
		return model.Group{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	if !slugPattern.MatchString(req.Slug) {
		return model.Group{}, fmt.Errorf("%w: slug must be URL-safe", ErrInvalidRequest)
	}
	return s.groupStorage.CreateGroup(ctx, model.Group{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
	})
}

func (s *GroupService) GetBySlug(ctx context.Context, slug string) (model.Group, error) {
	if slug == "" {
		return model.Group{}, fmt.Errorf("slug must not be empty: %w", ErrInvalidRequest)
	}
	return s.groupStorage.GetGroupBySlug(ctx, slug)
}

func (s *GroupService) GetByID(ctx context.Context, groupID int64) (model.Group, error) {
	if groupID <= 0 {
		return model.Group{}, fmt.Errorf("groupID must be > 0: %w", ErrInvalidRequest)
	}
	return s.groupStorage.GetGroupByID(ctx, groupID)
}

// List returns every group, used for the post form's group choices.
func (s *GroupService) List(ctx context.Context) ([]model.Group, error) {
	return s.groupStorage.GetGroups(ctx)
}
