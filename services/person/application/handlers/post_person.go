package handlers

import (
	"net/http"

	"github.com/ghuser/personregistry/pkg/errhttp"
	"github.com/ghuser/personregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/personregistry/pkg/validator"
	appsvcs "github.com/ghuser/personregistry/services/person/application/services"
)

// PostPersonHandler handles POST /person requests.
type PostPersonHandler struct {
	svc *appsvcs.Services
}

// NewPostPersonHandler returns a PostPersonHandler backed by the given services.
func NewPostPersonHandler(svc *appsvcs.Services) *PostPersonHandler {
	return &PostPersonHandler{svc: svc}
}

// Execute creates a new person.
//
//	@Summary		Create person
//	@Description	Validates the request fields in a fixed order, checks document and email uniqueness, and persists the person.
//	@Tags			persons
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PersonRequest	true	"Person creation request"
//	@Success		201		{object}	PersonResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope
//	@Failure		409		{object}	httpx.ErrorEnvelope
//	@Router			/person [post]
func (h *PostPersonHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.DecodeRequest[PersonRequest](w, r)
	if !ok {
		return
	}

	person, err := h.svc.Person.Create(r.Context(), req.fields())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newPersonResponse(person))
}
