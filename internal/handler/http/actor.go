package http

import (
	"net/http"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/payroll-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// requireActor writes 401 and returns false when the route is not behind AuthRequired.
func requireActor(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return user.Actor{}, false
	}
	return actor, true
}

// requireEmployee is requireActor for self-service routes that act on the
// caller's own employee record.
func requireEmployee(w http.ResponseWriter, r *http.Request) (user.Actor, bool) {
	actor, ok := requireActor(w, r)
	if !ok {
		return user.Actor{}, false
	}
	if !actor.HasEmployee() {
		response.HandleError(w, user.ErrEmployeeLinkRequired)
		return user.Actor{}, false
	}
	return actor, true
}

// pathID reads the {id} route param. A value that is not a UUID cannot name
// a row, so it answers with notFound.
func pathID(w http.ResponseWriter, r *http.Request, notFound error) (string, bool) {
	id := chi.URLParam(r, "id")
	if !validator.IsUUID(id) {
		response.HandleError(w, notFound)
		return "", false
	}
	return id, true
}
