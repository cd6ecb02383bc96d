package handler

import (
	"errors"
	"fmt"
	baseHttp "net/http"

	"github.com/carmegar/blogpage/database"
	"github.com/carmegar/blogpage/database/repository"
	"github.com/carmegar/blogpage/database/repository/queries"
	"github.com/carmegar/blogpage/pkg/endpoint"
	"github.com/carmegar/blogpage/pkg/gate"
	"github.com/carmegar/blogpage/pkg/portal"
)

// mapRepositoryError translates store-layer failures into API errors so every
// mutating handler reports conflicts, missing records and bad input the same
// way.
func mapRepositoryError(err error, context string) *endpoint.ApiError {
	var conflict *repository.ConflictError
	var invalid *queries.ValidationError

	switch {
	case errors.As(err, &conflict):
		return endpoint.ConflictError(conflict.Error())
	case errors.As(err, &invalid):
		return endpoint.BadRequestError(invalid.Error())
	case errors.Is(err, repository.ErrNotFound):
		return endpoint.NotFound(err.Error())
	default:
		return endpoint.LogInternalError(context, err)
	}
}

// requireSession pulls the authenticated session out of the request context.
// The auth middleware stores it; a miss here means the route was wired
// without that middleware.
func requireSession(r *baseHttp.Request) (portal.Session, *endpoint.ApiError) {
	session, found := portal.GetSession(r.Context())

	if !found {
		return portal.Session{}, endpoint.LogUnauthorisedError(
			"authentication required",
			errors.New("no session found in the request context"),
		)
	}

	return session, nil
}

// authorise runs the decision gate and converts a denial into the matching
// API error.
func authorise(session portal.Session, action gate.Action, ownerID uint64) *endpoint.ApiError {
	subject := gate.Subject{
		UserID: session.UserID,
		Role:   database.UserRole(session.Role),
	}

	decision := gate.Decide(subject, action, ownerID)

	if decision.Allowed {
		return nil
	}

	if decision.Reason == gate.ReasonUnauthenticated {
		return endpoint.LogUnauthorisedError(
			"authentication required",
			fmt.Errorf("denied %s: %s", action, decision.Reason),
		)
	}

	return endpoint.ForbiddenError(
		fmt.Sprintf("you are not allowed to perform %s", action),
	)
}

// validate runs the default struct validator and reports field errors as an
// unprocessable-entity response.
func validate(request any) *endpoint.ApiError {
	driver := portal.GetDefaultValidator()

	rejected, err := driver.Rejects(request)
	if !rejected {
		return nil
	}

	issues := driver.GetErrors()
	if len(issues) == 0 && err != nil {
		return endpoint.LogInternalError("could not validate the request", err)
	}

	data := make(map[string]any, len(issues))
	for field, issue := range issues {
		data[field] = issue
	}

	return endpoint.UnprocessableEntity("the given data is invalid", data)
}
