package services

import (
	"context"

	"taskmatch/internal/models"
)

// ProviderStore is the persistence surface for provider profiles and their
// category subscriptions.
type ProviderStore interface {
	CreateProvider(ctx context.Context, p models.Provider) (models.Provider, error)
	GetProviderByUserID(ctx context.Context, userID int) (models.Provider, error)
	SubscribeServices(ctx context.Context, providerID int, serviceIDs []int) error
	UnsubscribeService(ctx context.Context, providerID, serviceID int) error
	UnsubscribeAll(ctx context.Context, providerID int) error
	DeleteProvider(ctx context.Context, providerID int) error
	AddRating(ctx context.Context, providerID int, rating float64) (models.Provider, error)
	SetAvailability(ctx context.Context, providerID int, available bool) error
}

// ReviewStore attaches a rating's review text to the paired job it came from.
type ReviewStore interface {
	SetReview(ctx context.Context, jobID int, rating float64, review *string) error
}

type ProviderService struct {
	Providers ProviderStore
	Jobs      ReviewStore
}

func (s *ProviderService) CreateProvider(ctx context.Context, p models.Provider) (models.Provider, error) {
	if p.UserID == 0 {
		return models.Provider{}, models.ErrValidation
	}
	return s.Providers.CreateProvider(ctx, p)
}

func (s *ProviderService) GetProviderByUserID(ctx context.Context, userID int) (models.Provider, error) {
	return s.Providers.GetProviderByUserID(ctx, userID)
}

// SubscribeServices is idempotent: subscribing to the same category twice
// leaves a single join row.
func (s *ProviderService) SubscribeServices(ctx context.Context, providerID int, serviceIDs []int) (models.Provider, error) {
	if providerID == 0 || len(serviceIDs) == 0 {
		return models.Provider{}, models.ErrValidation
	}
	if err := s.Providers.SubscribeServices(ctx, providerID, serviceIDs); err != nil {
		return models.Provider{}, err
	}
	return s.Providers.GetProviderByUserID(ctx, providerID)
}

func (s *ProviderService) UnsubscribeService(ctx context.Context, providerID, serviceID int) (models.Provider, error) {
	if err := s.Providers.UnsubscribeService(ctx, providerID, serviceID); err != nil {
		return models.Provider{}, err
	}
	return s.Providers.GetProviderByUserID(ctx, providerID)
}

// DeleteProvider clears the provider's category subscriptions before removing
// the profile row, so no join rows ever point at a deleted provider.
func (s *ProviderService) DeleteProvider(ctx context.Context, providerID int) error {
	if providerID == 0 {
		return models.ErrValidation
	}
	if err := s.Providers.UnsubscribeAll(ctx, providerID); err != nil {
		return err
	}
	return s.Providers.DeleteProvider(ctx, providerID)
}

// RateProvider validates the rating bounds, folds it into the provider's
// incremental average and, when a job is named, stores the review snapshot on
// the paired job.
func (s *ProviderService) RateProvider(ctx context.Context, req models.ProviderRatingRequest) (models.Provider, error) {
	if req.ProviderID == 0 {
		return models.Provider{}, models.ErrValidation
	}
	if req.Rating < 1 || req.Rating > 5 {
		return models.Provider{}, models.ErrInvalidRating
	}

	provider, err := s.Providers.AddRating(ctx, req.ProviderID, req.Rating)
	if err != nil {
		return models.Provider{}, err
	}

	if req.JobID != 0 && s.Jobs != nil {
		if err := s.Jobs.SetReview(ctx, req.JobID, req.Rating, req.Review); err != nil {
			return models.Provider{}, err
		}
	}
	return provider, nil
}

func (s *ProviderService) SetAvailability(ctx context.Context, providerID int, available bool) error {
	return s.Providers.SetAvailability(ctx, providerID, available)
}
