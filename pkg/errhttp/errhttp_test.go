package errhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	persondomain "github.com/ghuser/personregistry/services/person/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			"validation error",
			&persondomain.ValidationError{Message: persondomain.MsgNameBlank},
			http.StatusBadRequest,
			persondomain.CodeInvalidInput,
		},
		{
			"conflict error",
			persondomain.Conflictf(persondomain.MsgDocumentTaken, "42536250881"),
			http.StatusConflict,
			persondomain.CodeConflict,
		},
		{
			"not found error",
			persondomain.NotFoundf(persondomain.MsgPersonNotFound, "id-1"),
			http.StatusNotFound,
			persondomain.CodeNotFound,
		},
		{
			"wrapped validation error",
			fmt.Errorf("create person: %w", &persondomain.ValidationError{Message: persondomain.MsgAddressBlank}),
			http.StatusBadRequest,
			persondomain.CodeInvalidInput,
		},
		{
			"unknown error",
			errors.New("something unexpected"),
			http.StatusInternalServerError,
			persondomain.CodeInternal,
		},
		{
			"repository sentinel collapses to 500",
			persondomain.ErrRecordNotFound,
			http.StatusInternalServerError,
			persondomain.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["error"] != tt.wantCode {
				t.Fatalf("expected error code %q, got %q", tt.wantCode, body["error"])
			}
		})
	}
}

func TestWriteError_InternalMessageNeverLeaks(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("pq: connection refused"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	if body["error_description"] != persondomain.MsgInternalError {
		t.Fatalf("expected generic internal message, got %q", body["error_description"])
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatal("internal error detail leaked into the response")
	}
}

func TestWriteError_ValidationMessagePassesThrough(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, persondomain.Invalidf(persondomain.MsgDocumentInvalid, "123"))

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response body is not valid JSON: %v", err)
	}
	want := fmt.Sprintf(persondomain.MsgDocumentInvalid, "123")
	if body["error_description"] != want {
		t.Fatalf("expected %q, got %q", want, body["error_description"])
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, persondomain.NotFoundf(persondomain.MsgPersonNotFound, "id-1"))

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("expected JSON content type, got %q", ct)
	}
}
