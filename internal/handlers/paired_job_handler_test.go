package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"taskmatch/internal/models"
	"taskmatch/internal/services"
)

type stubJobStore struct {
	jobs []models.PairedJob
}

func (s *stubJobStore) AcceptOffer(ctx context.Context, params models.CreatePairedJobRequest) (models.PairedJob, error) {
	return models.PairedJob{}, nil
}

func (s *stubJobStore) GetJobByID(ctx context.Context, id int) (models.PairedJob, error) {
	return models.PairedJob{}, models.ErrJobNotFound
}

func (s *stubJobStore) GetJobs(ctx context.Context, consumerID, providerID int) ([]models.PairedJob, error) {
	return s.jobs, nil
}

func TestGetJobsEmptyResultIsNotFound(t *testing.T) {
	h := PairedJobHandler{Service: &services.MatchingService{Jobs: &stubJobStore{jobs: []models.PairedJob{}}}}

	req := httptest.NewRequest(http.MethodGet, "/pairedJobs?provider_id=7", nil)
	rec := httptest.NewRecorder()
	h.GetJobs(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty result: status %d, want 404", rec.Code)
	}
}

func TestGetJobsRequiresFilter(t *testing.T) {
	h := PairedJobHandler{Service: &services.MatchingService{Jobs: &stubJobStore{}}}

	req := httptest.NewRequest(http.MethodGet, "/pairedJobs", nil)
	rec := httptest.NewRecorder()
	h.GetJobs(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("no filter: status %d, want 400", rec.Code)
	}
}

func TestGetJobsReturnsList(t *testing.T) {
	h := PairedJobHandler{Service: &services.MatchingService{Jobs: &stubJobStore{jobs: []models.PairedJob{
		{ID: 42, ConsumerID: 1, ProviderID: 7, Cost: 90},
	}}}}

	req := httptest.NewRequest(http.MethodGet, "/pairedJobs?consumer_id=1", nil)
	rec := httptest.NewRecorder()
	h.GetJobs(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var list []models.PairedJob
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("body is not a JSON array: %v", err)
	}
	if len(list) != 1 || list[0].ID != 42 {
		t.Fatalf("unexpected list: %+v", list)
	}
}
