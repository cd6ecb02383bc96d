package middleware

import (
	baseHttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/carmegar/blogpage/pkg/endpoint"
)

func TestPipelineChainOrder(t *testing.T) {
	var calls []string

	tag := func(name string) endpoint.Middleware {
		return func(next endpoint.ApiHandler) endpoint.ApiHandler {
			return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
				calls = append(calls, name)

				return next(w, r)
			}
		}
	}

	handler := func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		calls = append(calls, "handler")

		return nil
	}

	chained := Pipeline{}.Chain(handler, tag("outer"), tag("inner"))

	if err := chained(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 3 || calls[0] != "outer" || calls[1] != "inner" || calls[2] != "handler" {
		t.Fatalf("unexpected call order: %v", calls)
	}
}
