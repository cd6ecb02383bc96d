package handler_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/carmegar/blogpage/handler"
	"github.com/carmegar/blogpage/handler/payload"
)

func TestPingHandler(t *testing.T) {
	h := handler.MakePingHandler()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/ping", nil)

	if apiErr := h.Handle(recorder, request); apiErr != nil {
		t.Fatalf("unexpected error: %v", apiErr)
	}

	data := decodeBody[payload.PingResponse](t, recorder)
	if data.Message != "pong" {
		t.Fatalf("unexpected message: %s", data.Message)
	}

	if recorder.Header().Get("Cache-Control") != "no-store" {
		t.Fatalf("ping must not be cached: %s", recorder.Header().Get("Cache-Control"))
	}
}

func TestHealthHandler(t *testing.T) {
	conn := newHandlerDB(t)
	h := handler.MakeHealthHandler(conn)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/health", nil)

	if apiErr := h.Handle(recorder, request); apiErr != nil {
		t.Fatalf("unexpected error: %v", apiErr)
	}

	if !strings.Contains(recorder.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}
