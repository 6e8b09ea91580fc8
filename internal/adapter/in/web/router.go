package web

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter wires the application routes. Paths keep their trailing
// slashes; gin's redirect handles the bare variants.
func NewRouter(h *Handlers, auth Authenticator, log *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), CurrentUser(auth))

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	router.GET("/", h.Index)
	router.GET("/group/:slug/", h.GroupPosts)
	router.GET("/profile/:username/", h.Profile)
	router.GET("/posts/:post_id/", h.PostDetail)

	private := router.Group("/", LoginRequired())
	private.GET("/create/", h.PostCreate)
	private.POST("/create/", h.PostCreate)
	private.GET("/posts/:post_id/edit/", h.PostEdit)
	private.POST("/posts/:post_id/edit/", h.PostEdit)
	private.GET("/posts/:post_id/comment/", h.AddComment)
	private.POST("/posts/:post_id/comment/", h.AddComment)
	private.GET("/follow/", h.FollowIndex)
	private.GET("/profile/:username/follow/", h.ProfileFollow)
	private.POST("/profile/:username/follow/", h.ProfileFollow)
	private.GET("/profile/:username/unfollow/", h.ProfileUnfollow)
	private.POST("/profile/:username/unfollow/", h.ProfileUnfollow)

	return router
}
