package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskmatch/internal/models"
	"taskmatch/internal/notify"
)

type stubJobStore struct {
	job     models.PairedJob
	err     error
	accepts int
}

func (s *stubJobStore) AcceptOffer(ctx context.Context, params models.CreatePairedJobRequest) (models.PairedJob, error) {
	s.accepts++
	if s.err != nil {
		return models.PairedJob{}, s.err
	}
	return s.job, nil
}

func (s *stubJobStore) GetJobByID(ctx context.Context, id int) (models.PairedJob, error) {
	return s.job, nil
}

func (s *stubJobStore) GetJobs(ctx context.Context, consumerID, providerID int) ([]models.PairedJob, error) {
	return []models.PairedJob{s.job}, nil
}

type stubNotifier struct {
	events chan notify.JobPairedEvent
}

func (s *stubNotifier) JobPaired(ctx context.Context, providerID int, event notify.JobPairedEvent) {
	s.events <- event
}

func TestAcceptOfferNotifiesProvider(t *testing.T) {
	store := &stubJobStore{job: models.PairedJob{
		ID: 42, ConsumerID: 1, ProviderID: 7, RequestID: 5, OfferID: 9, Title: "Fix sink", Cost: 90,
	}}
	notifier := &stubNotifier{events: make(chan notify.JobPairedEvent, 1)}
	svc := MatchingService{Jobs: store, Notifier: notifier}

	job, err := svc.AcceptOffer(context.Background(), models.CreatePairedJobRequest{
		ConsumerID: 1, ProviderID: 7, RequestID: 5, OfferID: 9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if job.ID != 42 || job.Cost != 90 {
		t.Fatalf("unexpected job returned: %+v", job)
	}

	select {
	case event := <-notifier.events:
		if event.JobID != 42 || event.ConsumerID != 1 || event.RequestTitle != "Fix sink" || event.Budget != 90 {
			t.Fatalf("unexpected notification payload: %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("provider was never notified")
	}
}

func TestAcceptOfferValidatesInput(t *testing.T) {
	store := &stubJobStore{}
	svc := MatchingService{Jobs: store}

	_, err := svc.AcceptOffer(context.Background(), models.CreatePairedJobRequest{ConsumerID: 1, RequestID: 5})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.accepts != 0 {
		t.Fatal("store must not be touched when validation fails")
	}
}

func TestAcceptOfferConflictSkipsNotification(t *testing.T) {
	store := &stubJobStore{err: models.ErrRequestNotOpen}
	notifier := &stubNotifier{events: make(chan notify.JobPairedEvent, 1)}
	svc := MatchingService{Jobs: store, Notifier: notifier}

	_, err := svc.AcceptOffer(context.Background(), models.CreatePairedJobRequest{
		ConsumerID: 1, ProviderID: 7, RequestID: 5, OfferID: 9,
	})
	if !errors.Is(err, models.ErrRequestNotOpen) {
		t.Fatalf("expected request-not-open conflict, got %v", err)
	}

	select {
	case <-notifier.events:
		t.Fatal("no notification may fire for a failed pairing")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestGetJobsRequiresAFilter(t *testing.T) {
	svc := MatchingService{Jobs: &stubJobStore{}}
	if _, err := svc.GetJobs(context.Background(), 0, 0); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
