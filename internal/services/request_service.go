package services

import (
	"context"
	"log"

	"taskmatch/internal/lifecycle"
	"taskmatch/internal/models"
	"taskmatch/internal/notify"
)

// RequestStore is the persistence surface for consumer requests.
type RequestStore interface {
	CreateRequest(ctx context.Context, req models.Request) (models.Request, error)
	GetRequestByID(ctx context.Context, id int) (models.Request, error)
	UpdateStatus(ctx context.Context, id int, status string) (models.Request, error)
	GetActiveForProvider(ctx context.Context, providerID int) ([]models.Request, error)
	GetActiveForConsumer(ctx context.Context, consumerID int) ([]models.Request, error)
	DeleteRequest(ctx context.Context, id int) error
}

// ServiceCatalog resolves service categories by id or by legacy name.
type ServiceCatalog interface {
	GetServiceByID(ctx context.Context, id int) (models.Service, error)
	GetServiceByName(ctx context.Context, name string) (models.Service, error)
}

type RequestService struct {
	Requests   RequestStore
	Catalog    ServiceCatalog
	Dispatcher *notify.Dispatcher
}

// CreateRequest persists a consumer request and broadcasts it to providers
// subscribed to the service category. The broadcast is fire-and-forget: it
// runs concurrently with the response and its failure is only logged.
// Legacy clients send a service name instead of an id; the name resolves
// against the catalog before validation.
func (s *RequestService) CreateRequest(ctx context.Context, req models.Request) (models.Request, error) {
	if req.ServiceID == 0 && req.ServiceName != "" && s.Catalog != nil {
		svc, err := s.Catalog.GetServiceByName(ctx, req.ServiceName)
		if err != nil {
			return models.Request{}, err
		}
		req.ServiceID = svc.ID
	}
	if req.ConsumerID == 0 || req.ServiceID == 0 || req.Title == "" || req.Budget <= 0 {
		return models.Request{}, models.ErrValidation
	}

	created, err := s.Requests.CreateRequest(ctx, req)
	if err != nil {
		return models.Request{}, err
	}

	if s.Dispatcher != nil && s.Catalog != nil {
		go s.broadcastToProviders(created)
	}
	return created, nil
}

func (s *RequestService) broadcastToProviders(req models.Request) {
	ctx := context.Background()
	svc, err := s.Catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		log.Printf("broadcast request %d: resolve service %d: %v", req.ID, req.ServiceID, err)
		return
	}
	s.Dispatcher.RequestPosted(ctx, svc.ProviderIDs, notify.RequestPostedEvent{
		RequestID: req.ID,
		ServiceID: req.ServiceID,
		Title:     req.Title,
		Budget:    req.Budget,
		Location:  req.Location,
	})
}

func (s *RequestService) GetRequestByID(ctx context.Context, id int) (models.Request, error) {
	return s.Requests.GetRequestByID(ctx, id)
}

func (s *RequestService) UpdateStatus(ctx context.Context, id int, status string) (models.Request, error) {
	if !lifecycle.ValidRequestStatus(status) {
		return models.Request{}, models.ErrInvalidStatus
	}
	return s.Requests.UpdateStatus(ctx, id, status)
}

func (s *RequestService) GetActiveForProvider(ctx context.Context, providerID int) ([]models.Request, error) {
	return s.Requests.GetActiveForProvider(ctx, providerID)
}

func (s *RequestService) GetActiveForConsumer(ctx context.Context, consumerID int) ([]models.Request, error) {
	return s.Requests.GetActiveForConsumer(ctx, consumerID)
}

func (s *RequestService) DeleteRequest(ctx context.Context, id int) error {
	return s.Requests.DeleteRequest(ctx, id)
}
