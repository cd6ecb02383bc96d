package middleware

import (
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/endpoint"
)

type Pipeline struct {
	Env    *env.Environment
	Auth   AuthMiddleware
	Public PublicMiddleware
}

func (m Pipeline) Chain(h endpoint.ApiHandler, handlers ...endpoint.Middleware) endpoint.ApiHandler {
	for i := len(handlers) - 1; i >= 0; i-- {
		h = handlers[i](h)
	}

	return h
}
