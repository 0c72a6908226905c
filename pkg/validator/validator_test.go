package validator_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgvalidator "github.com/ghuser/personregistry/pkg/validator"
)

func TestEmail(t *testing.T) {
	valid := []string{
		"lucas@gmail.com",
		"a.b+tag@example.co",
	}
	for _, s := range valid {
		if !pkgvalidator.Email(s) {
			t.Errorf("Email(%q) = false, want true", s)
		}
	}

	invalid := []string{
		"",
		"lucasatgmail.com",
		"lucas@",
		"@gmail.com",
		"lucas @gmail.com",
	}
	for _, s := range invalid {
		if pkgvalidator.Email(s) {
			t.Errorf("Email(%q) = true, want false", s)
		}
	}
}

type sampleReq struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
}

func TestDecodeRequest_valid(t *testing.T) {
	body := `{"name":"Lucas","emails":["lucas@gmail.com"]}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.DecodeRequest[sampleReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Lucas" || len(req.Emails) != 1 {
		t.Errorf("unexpected decoded value: %+v", req)
	}
}

func TestDecodeRequest_invalidJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{bad json"))
	w := httptest.NewRecorder()

	_, ok := pkgvalidator.DecodeRequest[sampleReq](w, r)
	if ok {
		t.Fatal("expected ok=false for malformed JSON")
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "entrada_invalida") {
		t.Errorf("expected entrada_invalida envelope, got: %s", w.Body.String())
	}
}

func TestDecodeRequest_slice(t *testing.T) {
	body := `[{"name":"Lucas"},{"name":"Pedro"}]`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	reqs, ok := pkgvalidator.DecodeRequest[[]sampleReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if len(*reqs) != 2 {
		t.Errorf("expected 2 elements, got %d", len(*reqs))
	}
}

func TestDecodeRequest_unknownFieldsTolerated(t *testing.T) {
	body := `{"name":"Lucas","extra":"ignored"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	w := httptest.NewRecorder()

	req, ok := pkgvalidator.DecodeRequest[sampleReq](w, r)
	if !ok {
		t.Fatalf("expected ok=true, got false. Response: %s", w.Body.String())
	}
	if req.Name != "Lucas" {
		t.Errorf("unexpected decoded value: %+v", req)
	}
}
