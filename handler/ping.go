package handler

import (
	baseHttp "net/http"
	"time"

	"github.com/carmegar/blogpage/handler/payload"
	"github.com/carmegar/blogpage/pkg/endpoint"
)

type PingHandler struct{}

func MakePingHandler() PingHandler {
	return PingHandler{}
}

func (h PingHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	resp := endpoint.NewNoCacheResponse(w, r)
	now := time.Now().UTC()

	data := payload.PingResponse{
		Message: "pong",
		Date:    now.Format("2006-01-02"),
		Time:    now.Format("15:04:05"),
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode ping response", err)
	}

	return nil
}
