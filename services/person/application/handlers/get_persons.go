package handlers

import (
	"net/http"

	"github.com/ghuser/personregistry/pkg/errhttp"
	"github.com/ghuser/personregistry/pkg/httpx"
	appsvcs "github.com/ghuser/personregistry/services/person/application/services"
)

// GetPersonsHandler handles GET /person requests.
type GetPersonsHandler struct {
	svc *appsvcs.Services
}

// NewGetPersonsHandler returns a GetPersonsHandler backed by the given services.
func NewGetPersonsHandler(svc *appsvcs.Services) *GetPersonsHandler {
	return &GetPersonsHandler{svc: svc}
}

// Execute lists persons, optionally filtered by one criterion.
//
//	@Summary		List or find persons
//	@Description	Without query parameters returns every record. With parameters, applies exactly one criterion in priority order: document (when checksum-valid), then name, then lastName.
//	@Tags			persons
//	@Produce		json
//	@Param			name		query		string	false	"First name (case-insensitive)"
//	@Param			lastName	query		string	false	"Last name (case-insensitive)"
//	@Param			document	query		string	false	"CPF document"
//	@Success		200			{array}		PersonResponse
//	@Failure		500			{object}	httpx.ErrorEnvelope
//	@Router			/person [get]
func (h *GetPersonsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	lastName := q.Get("lastName")
	document := q.Get("document")

	var err error
	persons := []PersonResponse{}
	if name == "" && lastName == "" && document == "" {
		all, listErr := h.svc.Person.List(r.Context())
		persons, err = newPersonResponses(all), listErr
	} else {
		found, findErr := h.svc.Person.Find(r.Context(), name, lastName, document)
		persons, err = newPersonResponses(found), findErr
	}
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, persons)
}
