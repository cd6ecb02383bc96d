package endpoint

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"

	"github.com/carmegar/blogpage/pkg/portal"
)

// ApiHandler is the shape every route handler takes: a nil return means the
// handler wrote its own response, a non-nil ApiError is rendered centrally.
type ApiHandler func(http.ResponseWriter, *http.Request) *ApiError

type Middleware func(ApiHandler) ApiHandler

type ApiError struct {
	Message string
	Status  int
	Data    map[string]any
	Err     error
}

func (e *ApiError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

type ErrorResponse struct {
	Error  string         `json:"error"`
	Status int            `json:"status"`
	Data   map[string]any `json:"data,omitempty"`
}

// ScopeApiError decorates a Sentry scope with the request and error context
// the dashboards group on.
type ScopeApiError struct {
	scope   *sentry.Scope
	request *http.Request
	apiErr  *ApiError
}

func NewScopeApiError(scope *sentry.Scope, request *http.Request, apiErr *ApiError) *ScopeApiError {
	return &ScopeApiError{
		scope:   scope,
		request: request,
		apiErr:  apiErr,
	}
}

func (s *ScopeApiError) Enrich() {
	if s.scope == nil || s.apiErr == nil {
		return
	}

	level := sentry.LevelError
	if s.apiErr.Status >= 400 && s.apiErr.Status < 500 {
		level = sentry.LevelWarning
	}

	s.scope.SetLevel(level)
	s.scope.SetTag("http.status_code", strconv.Itoa(s.apiErr.Status))

	if s.request != nil {
		s.scope.SetTag("http.method", s.request.Method)
		s.scope.SetTag("http.route", s.request.URL.Path)

		if id := s.RequestID(); id != "" {
			s.scope.SetTag("request.id", id)
		}

		if account := s.accountName(); account != "" {
			s.scope.SetUser(sentry.User{Username: account})
		}
	}

	if chain := s.buildErrorChain(s.apiErr.Err); len(chain) > 0 {
		s.scope.SetExtra("error.chain", chain)
	}
}

// RequestID prefers the value stamped by the middleware over the raw header;
// the header is only trusted when nothing upstream assigned an id.
func (s *ScopeApiError) RequestID() string {
	if s.request == nil {
		return ""
	}

	if id, ok := s.request.Context().Value(portal.RequestIdKey).(string); ok && id != "" {
		return id
	}

	return s.request.Header.Get(portal.RequestIDHeader)
}

func (s *ScopeApiError) accountName() string {
	if s.request == nil {
		return ""
	}

	if session, ok := portal.GetSession(s.request.Context()); ok && session.Email != "" {
		return session.Email
	}

	return ""
}

func (s *ScopeApiError) buildErrorChain(err error) []string {
	var chain []string

	for err != nil {
		chain = append(chain, err.Error())
		err = errors.Unwrap(err)
	}

	return chain
}
