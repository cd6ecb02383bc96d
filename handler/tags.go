package handler

import (
	baseHttp "net/http"

	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/handler/payload"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/gate"
)

type TagsHandler struct {
	Tags *repository.Tags
}

func NewTagsHandler(tags *repository.Tags) TagsHandler {
	return TagsHandler{
		Tags: tags,
	}
}

func (h *TagsHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	tags, err := h.Tags.GetAll()
	if err != nil {
		return mapRepositoryError(err, "could not list tags")
	}

	return respondJSON(w, baseHttp.StatusOK, payload.GetTagsResponse(tags))
}

func (h *TagsHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionManageTaxonomy, 0); apiErr != nil {
		return apiErr
	}

	request, closer, err := endpoint.ParseRequestBody[payload.TagRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("could not parse the given tag", err)
	}

	defer closer()

	if apiErr = validate(request); apiErr != nil {
		return apiErr
	}

	tag, err := h.Tags.Create(request.ToAttrs())
	if err != nil {
		return mapRepositoryError(err, "could not create the tag")
	}

	return respondJSON(w, baseHttp.StatusCreated, payload.GetTagResponse(*tag))
}
