// Package errhttp maps domain errors to the HTTP error envelope.
// Validation, conflict and not-found errors carry their own client-facing
// message; anything unrecognized collapses to a fixed 500 so internals
// never leak.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/personregistry/pkg/httpx"
	persondomain "github.com/ghuser/personregistry/services/person/domain"
)

// WriteError classifies err and writes the matching error envelope.
func WriteError(w http.ResponseWriter, err error) {
	status, code, description := classify(err)
	httpx.JSONError(w, status, code, description)
}

func classify(err error) (status int, code, description string) {
	var (
		validation *persondomain.ValidationError
		conflict   *persondomain.ConflictError
		notFound   *persondomain.NotFoundError
	)
	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest, persondomain.CodeInvalidInput, validation.Message
	case errors.As(err, &conflict):
		return http.StatusConflict, persondomain.CodeConflict, conflict.Message
	case errors.As(err, &notFound):
		return http.StatusNotFound, persondomain.CodeNotFound, notFound.Message
	default:
		return http.StatusInternalServerError, persondomain.CodeInternal, persondomain.MsgInternalError
	}
}
