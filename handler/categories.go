package handler

import (
	baseHttp "net/http"

	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/database/repository/pagination"
	"github.com/carmegar/blogpage/handler/paginate"
	"github.com/carmegar/blogpage/handler/payload"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/gate"
)

type CategoriesHandler struct {
	Categories *repository.Categories
}

func NewCategoriesHandler(categories *repository.Categories) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
	}
}

func (h *CategoriesHandler) Index(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	result, err := h.Categories.GetAll(
		paginate.NewFrom(r.URL, pagination.DefaultAdminLimit),
	)

	if err != nil {
		return mapRepositoryError(err, "could not list categories")
	}

	items := pagination.HydratePagination(result, payload.GetCategoryResponse)

	return respondJSON(w, baseHttp.StatusOK, items)
}

func (h *CategoriesHandler) Store(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionManageTaxonomy, 0); apiErr != nil {
		return apiErr
	}

	request, closer, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("could not parse the given category", err)
	}

	defer closer()

	if apiErr = validate(request); apiErr != nil {
		return apiErr
	}

	category, err := h.Categories.Create(request.ToAttrs())
	if err != nil {
		return mapRepositoryError(err, "could not create the category")
	}

	return respondJSON(w, baseHttp.StatusCreated, payload.GetCategoryResponse(*category))
}

// Destroy removes an unused category; the store rejects the call while posts
// still point at it.
func (h *CategoriesHandler) Destroy(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	session, apiErr := requireSession(r)
	if apiErr != nil {
		return apiErr
	}

	if apiErr = authorise(session, gate.ActionManageTaxonomy, 0); apiErr != nil {
		return apiErr
	}

	uuid := payload.GetUUIDFrom(r)

	if err := h.Categories.Delete(uuid); err != nil {
		return mapRepositoryError(err, "could not delete the category")
	}

	return respondJSON(w, baseHttp.StatusOK, map[string]string{
		"message": "category deleted",
		"uuid":    uuid,
	})
}
