package web

import (
	"context"
	"errors"
	"net/http"
	"yatube/internal/model"
	"yatube/internal/service"
	"yatube/pkg/logger"

	"github.com/gin-gonic/gin"
)

// LoginPath is where anonymous callers of auth-required routes are sent.
// The login screen itself is outside this service.
const LoginPath = "/auth/login/"

const userKey = "web.currentUser"

// Authenticator resolves the acting user from an inbound request. The
// actual credential check happens upstream (auth proxy, session layer);
// this port only maps its result onto a local User.
type Authenticator interface {
	UserFromRequest(r *http.Request) (model.User, bool, error)
}

// CurrentUser resolves the viewer on every request, including public
// pages (the profile page needs it for the "following" flag). Resolution
// failures are logged and treated as anonymous.
func CurrentUser(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok, err := auth.UserFromRequest(c.Request)
		if err != nil {
			logger.FromContext(c.Request.Context()).Error("resolve user", "error", err)
		}
		if ok {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// LoginRequired redirects anonymous callers to the login entry point,
// carrying the originally requested URI as the next parameter.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := userFrom(c); !ok {
			c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.RequestURI())
			c.Abort()
			return
		}
		c.Next()
	}
}

func userFrom(c *gin.Context) (model.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return model.User{}, false
	}
	user, ok := v.(model.User)
	return user, ok
}

// UserLookup is the slice of the user service the authenticator needs.
type UserLookup interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

const DefaultAuthHeader = "X-Auth-User"

// HeaderAuthenticator trusts the username placed in a request header by
// the upstream auth layer. Unknown usernames are anonymous, not errors.
type HeaderAuthenticator struct {
	users  UserLookup
	header string
}

func NewHeaderAuthenticator(users UserLookup) *HeaderAuthenticator {
	return &HeaderAuthenticator{
		users:  users,
		header: DefaultAuthHeader,
	}
}

func (a *HeaderAuthenticator) UserFromRequest(r *http.Request) (model.User, bool, error) {
	username := r.Header.Get(a.header)
	if username == "" {
		return model.User{}, false, nil
	}

	user, err := a.users.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return model.User{}, false, nil
		}
		return model.User{}, false, err
	}
	return user, true, nil
}
