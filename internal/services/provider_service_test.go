package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"taskmatch/internal/models"
)

func TestRateProviderRejectsOutOfRange(t *testing.T) {
	svc := ProviderService{}
	for _, rating := range []float64{0, 0.5, 5.5, -1, 6} {
		_, err := svc.RateProvider(context.Background(), models.ProviderRatingRequest{ProviderID: 1, Rating: rating})
		if !errors.Is(err, models.ErrInvalidRating) {
			t.Fatalf("rating %v: expected ErrInvalidRating, got %v", rating, err)
		}
	}
}

func TestRateProviderRequiresProviderID(t *testing.T) {
	svc := ProviderService{}
	_, err := svc.RateProvider(context.Background(), models.ProviderRatingRequest{Rating: 4})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

type stubProviderStore struct {
	calls []string
}

func (s *stubProviderStore) CreateProvider(ctx context.Context, p models.Provider) (models.Provider, error) {
	s.calls = append(s.calls, "create")
	return p, nil
}

func (s *stubProviderStore) GetProviderByUserID(ctx context.Context, userID int) (models.Provider, error) {
	s.calls = append(s.calls, "get")
	return models.Provider{UserID: userID}, nil
}

func (s *stubProviderStore) SubscribeServices(ctx context.Context, providerID int, serviceIDs []int) error {
	s.calls = append(s.calls, "subscribe")
	return nil
}

func (s *stubProviderStore) UnsubscribeService(ctx context.Context, providerID, serviceID int) error {
	s.calls = append(s.calls, "unsubscribe")
	return nil
}

func (s *stubProviderStore) UnsubscribeAll(ctx context.Context, providerID int) error {
	s.calls = append(s.calls, "unsubscribeAll")
	return nil
}

func (s *stubProviderStore) DeleteProvider(ctx context.Context, providerID int) error {
	s.calls = append(s.calls, "delete")
	return nil
}

func (s *stubProviderStore) AddRating(ctx context.Context, providerID int, rating float64) (models.Provider, error) {
	s.calls = append(s.calls, "rate")
	return models.Provider{UserID: providerID}, nil
}

func (s *stubProviderStore) SetAvailability(ctx context.Context, providerID int, available bool) error {
	s.calls = append(s.calls, "availability")
	return nil
}

// Join rows must be gone before the profile row, so a concurrent broadcast
// never resolves a deleted provider from a stale subscription.
func TestDeleteProviderClearsSubscriptionsFirst(t *testing.T) {
	store := &stubProviderStore{}
	svc := ProviderService{Providers: store}

	if err := svc.DeleteProvider(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.calls) != 2 || store.calls[0] != "unsubscribeAll" || store.calls[1] != "delete" {
		t.Fatalf("expected unsubscribeAll then delete, got %v", store.calls)
	}
}

func TestDeleteProviderRequiresID(t *testing.T) {
	store := &stubProviderStore{}
	svc := ProviderService{Providers: store}

	if err := svc.DeleteProvider(context.Background(), 0); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.calls) != 0 {
		t.Fatal("store must not be touched when validation fails")
	}
}

// The rating UPDATE applies new_avg = (avg*count + r) / (count + 1). The
// recurrence must reproduce the arithmetic mean of the full sequence, with no
// special case for the first rating.
func TestIncrementalAverageMatchesMean(t *testing.T) {
	ratings := []float64{5, 3, 4, 4.5, 1, 2, 5, 3.5}

	avg, count := 0.0, 0
	sum := 0.0
	for _, r := range ratings {
		avg = (avg*float64(count) + r) / float64(count+1)
		count++
		sum += r

		mean := sum / float64(count)
		if math.Abs(avg-mean) > 1e-9 {
			t.Fatalf("after %d ratings: incremental avg %v, true mean %v", count, avg, mean)
		}
	}
}
