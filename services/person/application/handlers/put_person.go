package handlers

import (
	"net/http"

	"github.com/ghuser/personregistry/pkg/errhttp"
	"github.com/ghuser/personregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/personregistry/pkg/validator"
	appsvcs "github.com/ghuser/personregistry/services/person/application/services"
)

// PutPersonHandler handles PUT /person requests.
type PutPersonHandler struct {
	svc *appsvcs.Services
}

// NewPutPersonHandler returns a PutPersonHandler backed by the given services.
func NewPutPersonHandler(svc *appsvcs.Services) *PutPersonHandler {
	return &PutPersonHandler{svc: svc}
}

// Execute updates an existing person.
//
//	@Summary		Update person
//	@Description	Rebuilds the record identified by body id, preserving its active flag and creation timestamp. The record's own document and emails never conflict with themselves.
//	@Tags			persons
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdatePersonRequest	true	"Person update request"
//	@Success		200		{object}	PersonResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope
//	@Failure		404		{object}	httpx.ErrorEnvelope
//	@Failure		409		{object}	httpx.ErrorEnvelope
//	@Router			/person [put]
func (h *PutPersonHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[UpdatePersonRequest](w, r)
	if !ok {
		return
	}

	person, err := h.svc.Person.Update(r.Context(), req.ID, req.fields())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, newPersonResponse(person))
}
