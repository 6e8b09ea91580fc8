package web

import (
	"errors"
	"net/http"
	"yatube/internal/model"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

// PostCreate renders the create form on GET and creates the post on
// POST. Invalid submissions re-render the form with field errors; on
// success the author is redirected to their profile.
func (h *Handlers) PostCreate(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		h.renderPostForm(c, PostForm{}, nil, nil)
		return
	}

	user, _ := userFrom(c)

	var form PostForm
	_ = c.ShouldBind(&form)

	image, err := h.saveUpload(c)
	if err != nil {
		h.serverError(c, err)
		return
	}
	form.Image = image

	if errs := form.Validate(); len(errs) > 0 {
		h.renderPostForm(c, form, errs, nil)
		return
	}

	_, err = h.posts.CreatePost(c.Request.Context(), service.CreatePostRequest{
		AuthorID: user.ID,
		Text:     form.Text,
		GroupID:  form.Group,
		Image:    form.Image,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidRequest) {
			h.renderPostForm(c, form, FieldErrors{"text": "this field is required"}, nil)
			return
		}
		h.serverError(c, err)
		return
	}

	c.Redirect(http.StatusFound, profilePath(user.Username))
}

// PostEdit lets the author change a post's text, group, and image. Other
// users are bounced to the post page. The publication date never changes.
func (h *Handlers) PostEdit(c *gin.Context) {
	postID, ok := paramID(c, "post_id")
	if !ok {
		return
	}

	post, err := h.posts.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		h.fail(c, err)
		return
	}

	user, _ := userFrom(c)
	if post.AuthorID != user.ID {
		c.Redirect(http.StatusFound, postDetailPath(post.ID))
		return
	}

	if c.Request.Method == http.MethodGet {
		h.renderPostForm(c, PostForm{Text: post.Text, Group: post.GroupID}, nil, &post)
		return
	}

	var form PostForm
	_ = c.ShouldBind(&form)

	image, err := h.saveUpload(c)
	if err != nil {
		h.serverError(c, err)
		return
	}
	form.Image = image

	if errs := form.Validate(); len(errs) > 0 {
		h.renderPostForm(c, form, errs, &post)
		return
	}

	_, err = h.posts.EditPost(c.Request.Context(), service.EditPostRequest{
		PostID:   post.ID,
		EditorID: user.ID,
		Text:     form.Text,
		GroupID:  form.Group,
		Image:    form.Image,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrForbidden):
			c.Redirect(http.StatusFound, postDetailPath(post.ID))
		case errors.Is(err, service.ErrInvalidRequest):
			h.renderPostForm(c, form, FieldErrors{"text": "this field is required"}, &post)
		default:
			h.fail(c, err)
		}
		return
	}

	c.Redirect(http.StatusFound, postDetailPath(post.ID))
}

// AddComment attaches a comment to an existing post. An invalid form is
// dropped without feedback; either way the caller lands back on the post
// page.
func (h *Handlers) AddComment(c *gin.Context) {
	postID, ok := paramID(c, "post_id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	if _, err := h.posts.GetPostByID(ctx, postID); err != nil {
		h.fail(c, err)
		return
	}

	user, _ := userFrom(c)

	var form CommentForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); len(errs) == 0 {
		_, err := h.comments.AddComment(ctx, service.AddCommentRequest{
			PostID:   postID,
			AuthorID: user.ID,
			Text:     form.Text,
		})
		if err != nil && !errors.Is(err, service.ErrInvalidRequest) {
			h.fail(c, err)
			return
		}
	}

	c.Redirect(http.StatusFound, postDetailPath(postID))
}

func (h *Handlers) renderPostForm(c *gin.Context, form PostForm, errs FieldErrors, edited *model.Post) {
	groups, err := h.groups.List(c.Request.Context())
	if err != nil {
		h.serverError(c, err)
		return
	}

	data := Context{
		"form":   form,
		"groups": groups,
	}
	if len(errs) > 0 {
		data["errors"] = errs
	}
	if edited != nil {
		data["is_edit"] = true
		data["post"] = *edited
	}
	h.render(c, "posts/create_post.html", data)
}

// saveUpload stores the optional image upload and returns its storage
// key. A request without an image field is fine and yields an empty key.
func (h *Handlers) saveUpload(c *gin.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	return h.files.Save(fh.Filename, f)
}
