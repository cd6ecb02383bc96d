package handler

import (
	"errors"
	"fmt"
	baseHttp "net/http"
	"time"

	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/handler/payload"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/limiter"
	"github.com/carmegar/blogpage/pkg/portal"
)

// AuthHandler registers accounts and exchanges credentials for signed JWT
// bearer tokens. Failed logins are throttled per ip|email pair.
type AuthHandler struct {
	Users       *repository.Users
	JWT         auth.JWTHandler
	rateLimiter *limiter.MemoryLimiter
}

func MakeAuthHandler(users *repository.Users, jwt auth.JWTHandler) AuthHandler {
	return AuthHandler{
		Users:       users,
		JWT:         jwt,
		rateLimiter: limiter.NewMemoryLimiter(15*time.Minute, 5),
	}
}

func (h *AuthHandler) Register(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	request, closer, err := endpoint.ParseRequestBody[payload.RegisterRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("could not parse the registration payload", err)
	}

	defer closer()

	if apiErr := validate(request); apiErr != nil {
		return apiErr
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		return endpoint.LogInternalError("could not hash the given password", err)
	}

	user, err := h.Users.Create(request.ToAttrs(hash))
	if err != nil {
		return mapRepositoryError(err, "could not create the account")
	}

	token, err := h.JWT.Generate(user.UUID, user.Email, string(user.Role))
	if err != nil {
		return endpoint.LogInternalError("could not generate a token", err)
	}

	return respondJSON(w, baseHttp.StatusCreated, payload.GetAuthResponse(token, *user))
}

func (h *AuthHandler) Login(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	request, closer, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("could not parse the login payload", err)
	}

	defer closer()

	if apiErr := validate(request); apiErr != nil {
		return apiErr
	}

	key := fmt.Sprintf("%s|%s", portal.ParseClientIP(r), request.Email)

	if h.rateLimiter.TooMany(key) {
		return endpoint.TooManyRequestsError("too many failed login attempts, try again later")
	}

	user := h.Users.FindByEmail(request.Email)
	if user == nil {
		h.rateLimiter.Fail(key)

		return invalidCredentials()
	}

	if !auth.CheckPassword(user.PasswordHash, request.Password) {
		h.rateLimiter.Fail(key)

		return invalidCredentials()
	}

	h.rateLimiter.Reset(key)

	token, err := h.JWT.Generate(user.UUID, user.Email, string(user.Role))
	if err != nil {
		return endpoint.LogInternalError("could not generate a token", err)
	}

	return respondJSON(w, baseHttp.StatusOK, payload.GetAuthResponse(token, *user))
}

// Me echoes the authenticated account so clients can restore a session.
func (h *AuthHandler) Me(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	user := h.Users.FindByUUID(session.UserUUID)
	if user == nil {
		return endpoint.LogUnauthorisedError(
			"unknown account",
			errors.New("session subject no longer exists"),
		)
	}

	return respondJSON(w, baseHttp.StatusOK, payload.GetUserResponse(*user))
}

func invalidCredentials() *endpoint.ApiError {
	return &endpoint.ApiError{
		Message: "invalid credentials",
		Status:  baseHttp.StatusUnauthorized,
		Err:     errors.New("invalid credentials"),
	}
}
