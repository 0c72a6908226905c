package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/personregistry/pkg/errhttp"
	appsvcs "github.com/ghuser/personregistry/services/person/application/services"
)

// DeletePersonHandler handles DELETE /person/{id} requests.
type DeletePersonHandler struct {
	svc *appsvcs.Services
}

// NewDeletePersonHandler returns a DeletePersonHandler backed by the given services.
func NewDeletePersonHandler(svc *appsvcs.Services) *DeletePersonHandler {
	return &DeletePersonHandler{svc: svc}
}

// Execute inactivates a person. Records are never hard-deleted; an
// unknown id is a successful no-op with the same 204 response.
//
//	@Summary		Inactivate person
//	@Description	Soft delete: marks the record inactive and refreshes its update timestamp. Responds 204 whether or not the id exists.
//	@Tags			persons
//	@Param			id	path	string	true	"Person id"
//	@Success		204
//	@Failure		500	{object}	httpx.ErrorEnvelope
//	@Router			/person/{id} [delete]
func (h *DeletePersonHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if _, err := h.svc.Person.Inactivate(r.Context(), id); err != nil {
		errhttp.WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
