package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProfileFollow subscribes the viewer to the author. Repeats and
// self-follows are quietly ignored by the service.
func (h *Handlers) ProfileFollow(c *gin.Context) {
	author, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	user, _ := userFrom(c)
	if err := h.follows.Follow(c.Request.Context(), user.ID, author.ID); err != nil {
		h.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profilePath(author.Username))
}

// ProfileUnfollow removes the subscription, if there is one.
func (h *Handlers) ProfileUnfollow(c *gin.Context) {
	author, err := h.users.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	user, _ := userFrom(c)
	if err := h.follows.Unfollow(c.Request.Context(), user.ID, author.ID); err != nil {
		h.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profilePath(author.Username))
}
