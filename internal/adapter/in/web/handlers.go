package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"yatube/internal/adapter/out/filestore"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/logger"
	"yatube/pkg/pagination"
	"yatube/pkg/rendercache"

	"github.com/gin-gonic/gin"
)

type PostService interface {
	CreatePost(ctx context.Context, req service.CreatePostRequest) (model.Post, error)
	EditPost(ctx context.Context, req service.EditPostRequest) (model.Post, error)
	GetPostByID(ctx context.Context, postID int64) (model.Post, error)
	RecentPosts(ctx context.Context, pageNumber int) (pagination.Page[model.Post], error)
	GroupPosts(ctx context.Context, groupID int64, pageNumber int) (pagination.Page[model.Post], error)
	AuthorPosts(ctx context.Context, authorID int64, pageNumber int) (pagination.Page[model.Post], error)
	FollowedPosts(ctx context.Context, userID int64, pageNumber int) (pagination.Page[model.Post], error)
	CountByAuthor(ctx context.Context, authorID int64) (int, error)
}

type GroupService interface {
	GetBySlug(ctx context.Context, slug string) (model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
}

type UserService interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

type CommentService interface {
	AddComment(ctx context.Context, req service.AddCommentRequest) (model.Comment, error)
	CommentsForPost(ctx context.Context, postID int64) ([]model.Comment, error)
}

type FollowService interface {
	Follow(ctx context.Context, userID, authorID int64) error
	Unfollow(ctx context.Context, userID, authorID int64) error
	IsFollowing(ctx context.Context, userID, authorID int64) (bool, error)
}

// Handlers hosts the HTTP handlers for the posts application.
type Handlers struct {
	posts    PostService
	groups   GroupService
	users    UserService
	comments CommentService
	follows  FollowService

	files    filestore.Store
	renderer Renderer
	cache    *rendercache.Cache
}

func NewHandlers(
	posts PostService,
	groups GroupService,
	users UserService,
	comments CommentService,
	follows FollowService,
	files filestore.Store,
	renderer Renderer,
	cache *rendercache.Cache,
) *Handlers {
	return &Handlers{
		posts:    posts,
		groups:   groups,
		users:    users,
		comments: comments,
		follows:  follows,
		files:    files,
		renderer: renderer,
		cache:    cache,
	}
}

// pageNumber reads the ?page= query parameter. Out-of-range values are
// passed through as-is, the paginator clamps them.
func pageNumber(c *gin.Context) int {
	raw := c.Query("page")
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.AbortWithStatus(http.StatusNotFound)
		return 0, false
	}
	return id, true
}

func postDetailPath(postID int64) string {
	return fmt.Sprintf("/posts/%d/", postID)
}

func profilePath(username string) string {
	return "/profile/" + username + "/"
}

func (h *Handlers) render(c *gin.Context, name string, data Context) {
	body, err := h.renderer.Render(name, data)
	if err != nil {
		h.serverError(c, err)
		return
	}
	c.Data(http.StatusOK, h.renderer.ContentType(), body)
}

func (h *Handlers) serverError(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("handler failure",
		"path", c.Request.URL.Path,
		"error", err,
	)
	c.AbortWithStatus(http.StatusInternalServerError)
}

// fail maps a service error onto the HTTP response. Lookups that miss
// come out as 404, anything unexpected as 500.
func (h *Handlers) fail(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrInvalidRequest) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	h.serverError(c, err)
}
