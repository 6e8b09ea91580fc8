package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index serves the global feed. Rendered pages are cached for a short
// window keyed by the full request URI, so each page number caches
// independently and fresh posts only appear once the window lapses.
func (h *Handlers) Index(c *gin.Context) {
	key := c.Request.URL.RequestURI()
	if body, ok := h.cache.Get(key); ok {
		c.Data(http.StatusOK, h.renderer.ContentType(), body)
		return
	}

	page, err := h.posts.RecentPosts(c.Request.Context(), pageNumber(c))
	if err != nil {
		h.serverError(c, err)
		return
	}

	body, err := h.renderer.Render("posts/index.html", Context{"page_obj": page})
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.cache.Set(key, body)
	c.Data(http.StatusOK, h.renderer.ContentType(), body)
}

// GroupPosts serves the feed of a single group.
func (h *Handlers) GroupPosts(c *gin.Context) {
	group, err := h.groups.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}

	page, err := h.posts.GroupPosts(c.Request.Context(), group.ID, pageNumber(c))
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, "posts/group_list.html", Context{
		"group":    group,
		"page_obj": page,
	})
}

// Profile serves an author's page: their posts, total post count, and
// whether the viewer follows them (false for anonymous viewers).
func (h *Handlers) Profile(c *gin.Context) {
	ctx := c.Request.Context()

	author, err := h.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		h.fail(c, err)
		return
	}

	page, err := h.posts.AuthorPosts(ctx, author.ID, pageNumber(c))
	if err != nil {
		h.serverError(c, err)
		return
	}

	count, err := h.posts.CountByAuthor(ctx, author.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	following := false
	if viewer, ok := userFrom(c); ok {
		following, err = h.follows.IsFollowing(ctx, viewer.ID, author.ID)
		if err != nil {
			h.serverError(c, err)
			return
		}
	}

	h.render(c, "posts/profile.html", Context{
		"author":      author,
		"page_obj":    page,
		"posts_count": count,
		"following":   following,
	})
}

// PostDetail serves a single post with its comments and an empty comment
// form.
func (h *Handlers) PostDetail(c *gin.Context) {
	postID, ok := paramID(c, "post_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	post, err := h.posts.GetPostByID(ctx, postID)
	if err != nil {
		h.fail(c, err)
		return
	}

	comments, err := h.comments.CommentsForPost(ctx, post.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	count, err := h.posts.CountByAuthor(ctx, post.AuthorID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, "posts/post_detail.html", Context{
		"post":     post,
		"comments": comments,
		"count":    count,
		"form":     CommentForm{},
	})
}

// FollowIndex serves the personal feed of posts by followed authors.
func (h *Handlers) FollowIndex(c *gin.Context) {
	user, _ := userFrom(c)

	page, err := h.posts.FollowedPosts(c.Request.Context(), user.ID, pageNumber(c))
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, "posts/follow.html", Context{"page_obj": page})
}
