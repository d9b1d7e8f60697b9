package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"taskmatch/internal/models"
)

type errorResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

// writeListJSON responds 200 with the list, or 404 when it is empty. The
// active-request and paired-job list endpoints treat an empty result set as
// not found rather than returning an empty array.
func writeListJSON[T any](w http.ResponseWriter, list []T, emptyMessage string) {
	if len(list) == 0 {
		writeError(w, http.StatusNotFound, emptyMessage)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// writeServiceError maps domain errors onto the HTTP taxonomy. Unknown errors
// are logged and reported as a generic 500 so internals never leak.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidRating):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, models.ErrRequestNotFound),
		errors.Is(err, models.ErrOfferNotFound),
		errors.Is(err, models.ErrServiceNotFound),
		errors.Is(err, models.ErrJobNotFound),
		errors.Is(err, models.ErrProviderNotFound),
		errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrPaymentIntentNotFound),
		errors.Is(err, models.ErrNoRecord):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrRequestNotOpen),
		errors.Is(err, models.ErrOfferDecided),
		errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicatePhone),
		errors.Is(err, models.ErrInsufficientTokens):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
