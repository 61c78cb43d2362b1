package form

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newFormTestHandler() (*Handler, *echo.Echo) {
	h := NewHandler()
	h.now = func() time.Time { return testNow }
	return h, echo.New()
}

func TestHandler_ListDistricts(t *testing.T) {
	h, e := newFormTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.ListDistricts(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	var districts []District
	json.Unmarshal(rec.Body.Bytes(), &districts)
	if len(districts) != 4 {
		t.Errorf("expected 4 districts, got %d", len(districts))
	}
}

func TestHandler_ListMunicipalities(t *testing.T) {
	h, e := newFormTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.ListMunicipalities(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var opts []Option
	json.Unmarshal(rec.Body.Bytes(), &opts)
	if len(opts) != 11 {
		t.Errorf("expected 11 options, got %d", len(opts))
	}
}

func TestHandler_ListMunicipalities_Unknown(t *testing.T) {
	h, e := newFormTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")
	if err := h.ListMunicipalities(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for unknown district, got %d", rec.Code)
	}
	var opts []Option
	json.Unmarshal(rec.Body.Bytes(), &opts)
	if len(opts) != 0 {
		t.Errorf("expected no options, got %d", len(opts))
	}
}

func TestHandler_DeriveAge(t *testing.T) {
	tests := []struct {
		name     string
		dob      string
		wantAge  string
		wantUnit string
	}{
		{"years", "2023/03/10", "2", AgeUnitYears},
		{"days", "2025/05/26", "20", AgeUnitDays},
		{"born today", "2025/06/15", "0", AgeUnitDays},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, e := newFormTestHandler()
			req := httptest.NewRequest(http.MethodGet, "/?dob="+tt.dob, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if err := h.DeriveAge(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var body map[string]string
			json.Unmarshal(rec.Body.Bytes(), &body)
			if body["age"] != tt.wantAge || body["agetype"] != tt.wantUnit {
				t.Errorf("got (%q, %q), want (%q, %q)", body["age"], body["agetype"], tt.wantAge, tt.wantUnit)
			}
		})
	}
}

func TestHandler_DeriveAge_Invalid(t *testing.T) {
	h, e := newFormTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/?dob=nonsense", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	err := h.DeriveAge(c)
	if err == nil {
		t.Fatal("expected error for unparseable date")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
