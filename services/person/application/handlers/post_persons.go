package handlers

import (
	"net/http"

	"github.com/ghuser/personregistry/pkg/errhttp"
	"github.com/ghuser/personregistry/pkg/httpx"
	pkgvalidator "github.com/ghuser/personregistry/pkg/validator"
	appsvcs "github.com/ghuser/personregistry/services/person/application/services"
	"github.com/ghuser/personregistry/services/person/domain/models"
)

// PostPersonsHandler handles POST /persons batch requests.
type PostPersonsHandler struct {
	svc *appsvcs.Services
}

// NewPostPersonsHandler returns a PostPersonsHandler backed by the given services.
func NewPostPersonsHandler(svc *appsvcs.Services) *PostPersonsHandler {
	return &PostPersonsHandler{svc: svc}
}

// Execute creates persons in bulk with best-effort semantics: items that
// fail validation or uniqueness are silently omitted from the response.
//
//	@Summary		Create persons in bulk
//	@Description	Applies the single-person creation pipeline to each array element independently. A failed element is dropped; the response holds only the persisted persons.
//	@Tags			persons
//	@Accept			json
//	@Produce		json
//	@Param			request	body		[]PersonRequest	true	"Person creation requests"
//	@Success		201		{array}		PersonResponse
//	@Failure		400		{object}	httpx.ErrorEnvelope
//	@Router			/persons [post]
func (h *PostPersonsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	reqs, ok := pkgvalidator.DecodeRequest[[]PersonRequest](w, r)
	if !ok {
		return
	}

	fields := make([]models.Fields, len(*reqs))
	for i, req := range *reqs {
		fields[i] = req.fields()
	}

	created, err := h.svc.Person.CreateMany(r.Context(), fields)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, newPersonResponses(created))
}
