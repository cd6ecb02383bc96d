package handler

import (
	"fmt"
	baseHttp "net/http"

	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/database/repository/pagination"
	"github.com/carmegar/blogpage/handler/paginate"
	"github.com/carmegar/blogpage/handler/payload"
	"github.com/carmegar/blogpage/metal/env"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/gate"
	"github.com/carmegar/blogpage/pkg/seo"
)

type PostsHandler struct {
	Posts *repository.Posts
	Seo   seo.Builder
	Site  env.SiteEnvironment
}

func NewPostsHandler(posts *repository.Posts, site env.SiteEnvironment) PostsHandler {
	return PostsHandler{
		Posts: posts,
		Seo:   seo.NewBuilder(site),
		Site:  site,
	}
}

// Index serves the public blog listing. Store failures degrade to an empty
// page so the blog never renders a hard error to readers.
func (h *PostsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	filters := payload.GetPostsFiltersFrom(r.URL.Query())

	result, err := h.Posts.SearchWithFallback(
		&filters,
		paginate.NewFrom(r.URL, pagination.DefaultBlogLimit),
	)

	if err != nil {
		return mapRepositoryError(err, "could not search posts")
	}

	items := pagination.HydratePagination(result, payload.GetPostResponse)

	return respondJSON(w, baseHttp.StatusOK, items)
}

// Show serves a single published post. Drafts and archived posts are
// invisible here regardless of who asks.
func (h *PostsHandler) Show(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	post := h.Posts.FindPublishedBy(slug)
	if post == nil {
		return endpoint.NotFound(fmt.Sprintf("post [%s] not found", slug))
	}

	resp := endpoint.NewResponseFrom(
		fmt.Sprintf("%s:%d", post.UUID, post.UpdatedAt.Unix()), w, r,
	)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(payload.GetPostResponse(*post)); err != nil {
		return endpoint.LogInternalError("could not encode the post response", err)
	}

	return nil
}

// Meta returns the page metadata and JSON-LD graph for a published post, so
// the rendering layer can fill <head> without recomputing any of it.
func (h *PostsHandler) Meta(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	slug := payload.GetSlugFrom(r)

	post := h.Posts.FindPublishedBy(slug)
	if post == nil {
		return endpoint.NotFound(fmt.Sprintf("post [%s] not found", slug))
	}

	data := payload.MetaResponse{
		Meta:   h.Seo.ForPost(*post),
		JsonLD: string(seo.NewArticleLD(h.Site, post).Render()),
	}

	resp := endpoint.NewResponseFrom(
		fmt.Sprintf("meta:%s:%d", post.UUID, post.UpdatedAt.Unix()), w, r,
	)

	if resp.HasCache() {
		resp.RespondWithNotModified()

		return nil
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode the post metadata", err)
	}

	return nil
}

// AdminIndex lists posts in every publication state for the dashboard.
func (h *PostsHandler) AdminIndex(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionViewDrafts, 0); apiErr != nil {
		return apiErr
	}

	filters := payload.GetAdminPostsFiltersFrom(r.URL.Query())

	result, err := h.Posts.Search(
		&filters,
		paginate.NewFrom(r.URL, pagination.DefaultAdminLimit),
	)

	if err != nil {
		return mapRepositoryError(err, "could not search posts")
	}

	items := pagination.HydratePagination(result, payload.GetPostResponse)

	return respondJSON(w, baseHttp.StatusOK, items)
}

// AdminShow loads a single post in any publication state, which the
// dashboard needs to open a draft for editing.
func (h *PostsHandler) AdminShow(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionViewDrafts, 0); apiErr != nil {
		return apiErr
	}

	uuid := payload.GetUUIDFrom(r)

	post := h.Posts.FindByUUID(uuid)
	if post == nil {
		return endpoint.NotFound(fmt.Sprintf("post [%s] not found", uuid))
	}

	return respondJSON(w, baseHttp.StatusOK, payload.GetPostResponse(*post))
}

func (h *PostsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionCreatePost, session.UserID); apiErr != nil {
		return apiErr
	}

	request, closer, err := endpoint.ParseRequestBody[payload.CreatePostRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("could not parse the given post", err)
	}

	defer closer()

	if apiErr = validate(request); apiErr != nil {
		return apiErr
	}

	post, err := h.Posts.Create(request.ToAttrs(session.UserID))
	if err != nil {
		return mapRepositoryError(err, "could not create the post")
	}

	return respondJSON(w, baseHttp.StatusCreated, payload.GetPostResponse(*post))
}

func (h *PostsHandler) Update(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	uuid := payload.GetUUIDFrom(r)

	current := h.Posts.FindByUUID(uuid)
	if current == nil {
		return endpoint.NotFound(fmt.Sprintf("post [%s] not found", uuid))
	}

	if apiErr = authorise(session, gate.ActionUpdatePost, current.AuthorID); apiErr != nil {
		return apiErr
	}

	request, closer, err := endpoint.ParseRequestBody[payload.UpdatePostRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("could not parse the given post", err)
	}

	defer closer()

	if apiErr = validate(request); apiErr != nil {
		return apiErr
	}

	post, err := h.Posts.Update(uuid, request.ToAttrs())
	if err != nil {
		return mapRepositoryError(err, "could not update the post")
	}

	return respondJSON(w, baseHttp.StatusOK, payload.GetPostResponse(*post))
}

func (h *PostsHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	uuid := payload.GetUUIDFrom(r)

	current := h.Posts.FindByUUID(uuid)
	if current == nil {
		return endpoint.NotFound(fmt.Sprintf("post [%s] not found", uuid))
	}

	if apiErr = authorise(session, gate.ActionDeletePost, current.AuthorID); apiErr != nil {
		return apiErr
	}

	if err := h.Posts.Delete(uuid); err != nil {
		return mapRepositoryError(err, "could not delete the post")
	}

	return respondJSON(w, baseHttp.StatusOK, map[string]string{
		"message": "post deleted",
		"uuid":    uuid,
	})
}
