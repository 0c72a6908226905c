// Package validator wraps go-playground/validator for the two jobs this
// service needs: decoding JSON request bodies and checking email syntax.
// Person field rules live in the domain layer because the API contract
// promises the first violated rule in a fixed order, which struct-tag
// validation (accumulated errors) cannot express.
package validator

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ghuser/personregistry/pkg/httpx"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Email reports whether s is a syntactically valid local@domain address.
func Email(s string) bool {
	return validate.Var(s, "required,email") == nil
}

// DecodeRequest decodes the JSON request body into T. On malformed JSON it
// writes a 400 entrada_invalida envelope and returns (nil, false). Unknown
// fields are ignored rather than rejected.
func DecodeRequest[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "entrada_invalida", "O corpo da requisição não é um JSON válido.")
		return nil, false
	}
	return &req, true
}
