package kernel

import (
	baseHttp "net/http"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/handler"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/auth"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/middleware"
	"github.com/carmegar/blogpage/pkg/sitemap"
	"github.com/carmegar/blogpage/pkg/uploader"
)

type Router struct {
	Env            *env.Environment
	Mux            *baseHttp.ServeMux
	Pipeline       middleware.Pipeline
	Db             *database.Connection
	JWT            auth.JWTHandler
	Users          *repository.Users
	CategoriesRepo *repository.Categories
	TagsRepo       *repository.Tags
	PostsRepo      *repository.Posts
	Uploader       *uploader.Uploader
	SitemapGen     *sitemap.Generator
}

// PublicPipelineFor rate-limits and stamps a request id on anonymous
// endpoints.
func (r *Router) PublicPipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Public.Handle,
		),
	)
}

// PipelineFor guards an endpoint with bearer-token authentication on top of
// the public middleware.
func (r *Router) PipelineFor(apiHandler endpoint.ApiHandler) baseHttp.HandlerFunc {
	return endpoint.NewApiHandler(
		r.Pipeline.Chain(
			apiHandler,
			r.Pipeline.Public.Handle,
			r.Pipeline.Auth.Handle,
		),
	)
}

func (r *Router) Ping() {
	abstract := handler.MakePingHandler()

	r.Mux.HandleFunc("GET /api/ping", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) Health() {
	abstract := handler.MakeHealthHandler(r.Db)

	r.Mux.HandleFunc("GET /api/health", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) Metrics() {
	abstract := handler.NewMetricsHandler()

	r.Mux.Handle("GET /api/metrics", abstract)
}

func (r *Router) Sitemap() {
	abstract := handler.NewSitemapHandler(r.SitemapGen)

	r.Mux.HandleFunc("GET /sitemap.xml", r.PublicPipelineFor(abstract.Handle))
}

func (r *Router) Auth() {
	abstract := handler.MakeAuthHandler(r.Users, r.JWT)

	r.Mux.HandleFunc("POST /api/auth/register", r.PublicPipelineFor(abstract.Register))
	r.Mux.HandleFunc("POST /api/auth/login", r.PublicPipelineFor(abstract.Login))
	r.Mux.HandleFunc("GET /api/auth/me", r.PipelineFor(abstract.Me))
}

func (r *Router) Posts() {
	abstract := handler.NewPostsHandler(r.PostsRepo, r.Env.Site)

	r.Mux.HandleFunc("GET /api/posts", r.PublicPipelineFor(abstract.Index))
	r.Mux.HandleFunc("GET /api/posts/{slug}", r.PublicPipelineFor(abstract.Show))
	r.Mux.HandleFunc("GET /api/posts/{slug}/meta", r.PublicPipelineFor(abstract.Meta))

	r.Mux.HandleFunc("GET /api/admin/posts", r.PipelineFor(abstract.AdminIndex))
	r.Mux.HandleFunc("GET /api/admin/posts/{uuid}", r.PipelineFor(abstract.AdminShow))
	r.Mux.HandleFunc("POST /api/admin/posts", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("PUT /api/admin/posts/{uuid}", r.PipelineFor(abstract.Update))
	r.Mux.HandleFunc("DELETE /api/admin/posts/{uuid}", r.PipelineFor(abstract.Destroy))
}

func (r *Router) Categories() {
	abstract := handler.NewCategoriesHandler(r.CategoriesRepo)

	r.Mux.HandleFunc("GET /api/categories", r.PublicPipelineFor(abstract.Index))

	r.Mux.HandleFunc("POST /api/admin/categories", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("DELETE /api/admin/categories/{uuid}", r.PipelineFor(abstract.Destroy))
}

func (r *Router) Tags() {
	abstract := handler.NewTagsHandler(r.TagsRepo)

	r.Mux.HandleFunc("GET /api/tags", r.PublicPipelineFor(abstract.Index))

	r.Mux.HandleFunc("POST /api/admin/tags", r.PipelineFor(abstract.Store))
}

func (r *Router) Uploads() {
	abstract := handler.NewUploadsHandler(r.Uploader)

	r.Mux.HandleFunc("POST /api/admin/uploads", r.PipelineFor(abstract.Store))
	r.Mux.HandleFunc("DELETE /api/admin/uploads", r.PipelineFor(abstract.Destroy))
}
