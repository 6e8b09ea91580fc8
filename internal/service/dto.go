package service

type CreatePostRequest struct {
	AuthorID int64  `validate:"required,gt=0"`
	Text     string `validate:"required"`
	GroupID  *int64
	Image    string
}

type EditPostRequest struct {
	PostID   int64  `validate:"required,gt=0"`
	EditorID int64  `validate:"required,gt=0"`
	Text     string `validate:"required"`
	GroupID  *int64
	// Image replaces the stored file key when non-empty; an empty value
	// keeps the existing attachment.
	Image string
}

type AddCommentRequest struct {
	PostID   int64  `validate:"required,gt=0"`
	AuthorID int64  `validate:"required,gt=0"`
	Text     string `validate:"required"`
}

type CreateGroupRequest struct {
	Title       string `validate:"required"`
	Slug        string `validate:"required"`
	Description string
}
