package services

import (
	"context"
	"errors"
	"testing"

	"taskmatch/internal/models"
)

type stubRequestStore struct {
	created []models.Request
}

func (s *stubRequestStore) CreateRequest(ctx context.Context, req models.Request) (models.Request, error) {
	req.ID = len(s.created) + 1
	req.Status = "pending"
	s.created = append(s.created, req)
	return req, nil
}

func (s *stubRequestStore) GetRequestByID(ctx context.Context, id int) (models.Request, error) {
	return models.Request{}, models.ErrRequestNotFound
}

func (s *stubRequestStore) UpdateStatus(ctx context.Context, id int, status string) (models.Request, error) {
	return models.Request{}, models.ErrRequestNotFound
}

func (s *stubRequestStore) GetActiveForProvider(ctx context.Context, providerID int) ([]models.Request, error) {
	return nil, nil
}

func (s *stubRequestStore) GetActiveForConsumer(ctx context.Context, consumerID int) ([]models.Request, error) {
	return nil, nil
}

func (s *stubRequestStore) DeleteRequest(ctx context.Context, id int) error { return nil }

type stubCatalog struct {
	services map[string]models.Service
}

func (s *stubCatalog) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	for _, svc := range s.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return models.Service{}, models.ErrServiceNotFound
}

func (s *stubCatalog) GetServiceByName(ctx context.Context, name string) (models.Service, error) {
	svc, ok := s.services[name]
	if !ok {
		return models.Service{}, models.ErrServiceNotFound
	}
	return svc, nil
}

func TestCreateRequestResolvesServiceName(t *testing.T) {
	store := &stubRequestStore{}
	svc := RequestService{
		Requests: store,
		Catalog:  &stubCatalog{services: map[string]models.Service{"plumbing": {ID: 3, Name: "plumbing"}}},
	}

	created, err := svc.CreateRequest(context.Background(), models.Request{
		ConsumerID: 1, ServiceName: "plumbing", Title: "Fix sink", Budget: 90,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ServiceID != 3 {
		t.Fatalf("service name not resolved: got service id %d, want 3", created.ServiceID)
	}
	if created.Status != "pending" {
		t.Fatalf("fresh request status %q, want pending", created.Status)
	}
}

func TestCreateRequestUnknownServiceName(t *testing.T) {
	store := &stubRequestStore{}
	svc := RequestService{
		Requests: store,
		Catalog:  &stubCatalog{services: map[string]models.Service{}},
	}

	_, err := svc.CreateRequest(context.Background(), models.Request{
		ConsumerID: 1, ServiceName: "does-not-exist", Title: "Fix sink", Budget: 90,
	})
	if !errors.Is(err, models.ErrServiceNotFound) {
		t.Fatalf("expected service-not-found, got %v", err)
	}
	if len(store.created) != 0 {
		t.Fatal("no request may be persisted when the category is unknown")
	}
}

func TestCreateRequestRequiresServiceIDOrName(t *testing.T) {
	svc := RequestService{Requests: &stubRequestStore{}, Catalog: &stubCatalog{}}

	_, err := svc.CreateRequest(context.Background(), models.Request{
		ConsumerID: 1, Title: "Fix sink", Budget: 90,
	})
	if !errors.Is(err, models.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
