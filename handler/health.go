package handler

import (
	baseHttp "net/http"
	"time"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/portal"
)

// HealthHandler reports whether the API can still reach its database.
type HealthHandler struct {
	db *database.Connection
}

func MakeHealthHandler(db *database.Connection) HealthHandler {
	return HealthHandler{db: db}
}

func (h HealthHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	if err := h.db.Ping(); err != nil {
		return endpoint.LogInternalError("database ping failed", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	data := map[string]string{
		"status":   "ok",
		"datetime": time.Now().UTC().Format(portal.DatesLayout),
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode health response", err)
	}

	return nil
}
