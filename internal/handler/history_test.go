package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// Validation must reject bad payloads before anything reaches the service,
// so these run against a handler with no service wired at all.
func newHistoryRouter(t *testing.T) *chi.Mux {
	t.Helper()
	h := NewHandler(nil)
	r := chi.NewRouter()
	r.Post("/user/{userID}/history", h.UpdateHistory)
	return r
}

func postHistory(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/user/alice@campus.edu/history", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	newHistoryRouter(t).ServeHTTP(rec, req)
	return rec
}

func TestUpdateHistoryRejectsRatingAboveFive(t *testing.T) {
	rec := postHistory(t, `{"history":[{"nameDoc":"Clean Code","rating":6}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHistoryRejectsNegativeRating(t *testing.T) {
	rec := postHistory(t, `{"history":[{"nameDoc":"Clean Code","rating":-1}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHistoryRejectsEmptyHistory(t *testing.T) {
	rec := postHistory(t, `{"history":[]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHistoryRejectsMissingName(t *testing.T) {
	rec := postHistory(t, `{"history":[{"rating":4}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateHistoryRejectsNonJSONBody(t *testing.T) {
	rec := postHistory(t, `not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
