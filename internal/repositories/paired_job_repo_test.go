package repositories

import (
	"errors"
	"testing"

	"taskmatch/internal/models"
)

func TestMatchParticipants(t *testing.T) {
	params := models.CreatePairedJobRequest{ConsumerID: 1, ProviderID: 7, RequestID: 5, OfferID: 9}

	if err := matchParticipants(params, 1, 7); err != nil {
		t.Fatalf("matching ids rejected: %v", err)
	}
	if err := matchParticipants(params, 2, 7); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("wrong consumer: expected validation error, got %v", err)
	}
	if err := matchParticipants(params, 1, 8); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("wrong provider: expected validation error, got %v", err)
	}
}
