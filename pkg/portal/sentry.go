package portal

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/carmegar/blogpage/metal/env"
)

type Sentry struct {
	Handler *sentryhttp.Handler
	Options *sentryhttp.Options
	Env     *env.Environment
}

// Wrap instruments the given handler so request-scoped hubs reach the error
// capture path.
func (s *Sentry) Wrap(next http.Handler) http.Handler {
	if s == nil || s.Handler == nil {
		return next
	}

	return s.Handler.Handle(next)
}
