package middleware

import (
	"context"
	"fmt"
	baseHttp "net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/limiter"
	"github.com/carmegar/blogpage/pkg/middleware/mwguards"
	"github.com/carmegar/blogpage/pkg/portal"
)

// PublicMiddleware protects anonymous endpoints with an in-memory rate limit
// keyed by client IP and stamps every request with an id for log and error
// correlation.
type PublicMiddleware struct {
	rateLimiter  *limiter.MemoryLimiter
	isProduction bool
}

func MakePublicMiddleware(isProduction bool) PublicMiddleware {
	return PublicMiddleware{
		rateLimiter:  limiter.NewMemoryLimiter(1*time.Minute, 120),
		isProduction: isProduction,
	}
}

func (p PublicMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		if err := p.GuardDependencies(); err != nil {
			return err
		}

		key := portal.ParseClientIP(r)

		if p.rateLimiter.TooMany(key) {
			return mwguards.RateLimitedError("Too many requests", "rate limit reached for: "+key)
		}

		p.rateLimiter.Fail(key)

		requestID := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), portal.RequestIdKey, requestID)
		w.Header().Set(portal.RequestIDHeader, requestID)

		return next(w, r.WithContext(ctx))
	}
}

func (p PublicMiddleware) GuardDependencies() *endpoint.ApiError {
	if p.rateLimiter == nil {
		err := fmt.Errorf("public middleware missing dependencies: rateLimiter")

		return endpoint.LogInternalError("public middleware missing dependencies", err)
	}

	return nil
}
