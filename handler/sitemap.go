package handler

import (
	"encoding/xml"
	baseHttp "net/http"

	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/sitemap"
)

// SitemapHandler renders the sitemap on demand; the scheduler keeps a copy
// on disk for crawlers that hit the static files instead.
type SitemapHandler struct {
	Generator *sitemap.Generator
}

func NewSitemapHandler(generator *sitemap.Generator) SitemapHandler {
	return SitemapHandler{
		Generator: generator,
	}
}

func (h *SitemapHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	set, err := h.Generator.Build()
	if err != nil {
		return endpoint.LogInternalError("could not build the sitemap", err)
	}

	output, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return endpoint.LogInternalError("could not render the sitemap", err)
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(baseHttp.StatusOK)

	if _, err = w.Write([]byte(xml.Header)); err != nil {
		return nil
	}

	_, _ = w.Write(output)

	return nil
}
