package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskmatch/internal/models"
)

func TestWriteServiceErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{models.ErrValidation, http.StatusBadRequest},
		{models.ErrInvalidStatus, http.StatusBadRequest},
		{models.ErrInvalidRating, http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{models.ErrRequestNotFound, http.StatusNotFound},
		{models.ErrOfferNotFound, http.StatusNotFound},
		{models.ErrPaymentIntentNotFound, http.StatusNotFound},
		{models.ErrRequestNotOpen, http.StatusConflict},
		{models.ErrOfferDecided, http.StatusConflict},
		{models.ErrInvalidTransition, http.StatusConflict},
		{errors.New("pq: connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		writeServiceError(rec, tc.err)
		if rec.Code != tc.want {
			t.Errorf("%v: status %d, want %d", tc.err, rec.Code, tc.want)
		}

		var body errorResponse
		if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
			t.Fatalf("%v: body is not JSON: %v", tc.err, err)
		}
		if body.Message == "" {
			t.Errorf("%v: empty message", tc.err)
		}
	}
}

func TestWriteListJSONEmptyIsNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	writeListJSON(rec, []models.Request{}, "no active requests for provider")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty list: status %d, want 404", rec.Code)
	}

	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Message != "no active requests for provider" {
		t.Fatalf("unexpected message: %q", body.Message)
	}
}

func TestWriteListJSONNonEmpty(t *testing.T) {
	rec := httptest.NewRecorder()
	writeListJSON(rec, []models.Request{{ID: 1, Title: "Fix sink"}}, "no active requests")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}

	var list []models.Request
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestInternalErrorHidesDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, errors.New("dial tcp 10.0.0.3:5432: connect: connection refused"))

	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Message)
	}
}
