package handler

import (
	"encoding/json"
	"log/slog"
	baseHttp "net/http"

	"github.com/carmegar/blogpage/pkg/endpoint"
)

func respondJSON(w baseHttp.ResponseWriter, status int, payload any) *endpoint.ApiError {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "err", err)
	}

	return nil
}
