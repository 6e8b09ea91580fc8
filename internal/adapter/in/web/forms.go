package web

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field to its validation message, ready to be
// handed back to the template alongside the submitted form.
type FieldErrors map[string]string

// PostForm carries the post create/edit submission. The image arrives as
// a multipart upload and is resolved to a storage key before validation.
type PostForm struct {
	Text  string `form:"text" validate:"required"`
	Group *int64 `form:"group"`
	Image string `form:"-"`
}

func (f PostForm) Validate() FieldErrors {
	return checkStruct(f)
}

// CommentForm carries the comment submission under a post.
type CommentForm struct {
	Text string `form:"text" validate:"required"`
}

func (f CommentForm) Validate() FieldErrors {
	return checkStruct(f)
}

var formValidator = validator.New()

func checkStruct(v any) FieldErrors {
	err := formValidator.Struct(v)
	if err == nil {
		return nil
	}

	out := make(FieldErrors)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["__all__"] = err.Error()
		return out
	}
	for _, fe := range verrs {
		out[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	default:
		return "invalid value"
	}
}
