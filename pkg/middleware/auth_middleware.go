package middleware

import (
	baseHttp "net/http"
	"strings"

	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/middleware/mwguards"
	"github.com/carmegar/blogpage/pkg/portal"
)

// AuthMiddleware validates Authorization Bearer tokens and attaches the
// resolved session to the request context. The account is re-read on every
// request so role changes and deletions take effect immediately, not at
// token expiry.
type AuthMiddleware struct {
	Handler auth.JWTHandler
	Users   *repository.Users
}

func MakeAuthMiddleware(handler auth.JWTHandler, users *repository.Users) AuthMiddleware {
	return AuthMiddleware{
		Handler: handler,
		Users:   users,
	}
}

func (m AuthMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		header := strings.TrimSpace(r.Header.Get("Authorization"))

		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return mwguards.InvalidRequestError("missing or invalid authorization header", "")
		}

		tokenStr := strings.TrimSpace(header[len("bearer "):])

		claims, err := m.Handler.Validate(tokenStr)
		if err != nil {
			return mwguards.UnauthenticatedError("invalid token", "token validation failed: "+err.Error())
		}

		if m.Users == nil {
			return endpoint.InternalError("auth middleware missing users repository")
		}

		user := m.Users.FindByUUID(claims.UserUUID)
		if user == nil {
			return mwguards.UnauthenticatedError("unknown account", "token subject not found: "+claims.UserUUID)
		}

		session := portal.Session{
			UserID:   user.ID,
			UserUUID: user.UUID,
			Email:    user.Email,
			Name:     user.Name,
			Role:     string(user.Role),
		}

		return next(w, r.WithContext(portal.WithSession(r.Context(), session)))
	}
}
