package services

import (
	"context"

	"taskmatch/internal/models"
	"taskmatch/internal/notify"
)

// PairedJobStore is the persistence surface the orchestrator needs.
type PairedJobStore interface {
	AcceptOffer(ctx context.Context, params models.CreatePairedJobRequest) (models.PairedJob, error)
	GetJobByID(ctx context.Context, id int) (models.PairedJob, error)
	GetJobs(ctx context.Context, consumerID, providerID int) ([]models.PairedJob, error)
}

// JobNotifier delivers the pairing event to the winning provider.
type JobNotifier interface {
	JobPaired(ctx context.Context, providerID int, event notify.JobPairedEvent)
}

// MatchingService coordinates the accept-offer transition: the compound
// persistence step runs as one transaction inside the store, and the provider
// notification fires only after it commits.
type MatchingService struct {
	Jobs     PairedJobStore
	Notifier JobNotifier
}

func (s *MatchingService) AcceptOffer(ctx context.Context, params models.CreatePairedJobRequest) (models.PairedJob, error) {
	if params.ConsumerID == 0 || params.ProviderID == 0 || params.RequestID == 0 || params.OfferID == 0 {
		return models.PairedJob{}, models.ErrValidation
	}

	job, err := s.Jobs.AcceptOffer(ctx, params)
	if err != nil {
		return models.PairedJob{}, err
	}

	if s.Notifier != nil {
		// Best effort: delivery failure never undoes the pairing.
		go s.Notifier.JobPaired(context.Background(), job.ProviderID, notify.JobPairedEvent{
			JobID:        job.ID,
			ConsumerID:   job.ConsumerID,
			RequestTitle: job.Title,
			Budget:       job.Cost,
			Message:      "Your offer was accepted",
		})
	}
	return job, nil
}

func (s *MatchingService) GetJobByID(ctx context.Context, id int) (models.PairedJob, error) {
	return s.Jobs.GetJobByID(ctx, id)
}

func (s *MatchingService) GetJobs(ctx context.Context, consumerID, providerID int) ([]models.PairedJob, error) {
	if consumerID == 0 && providerID == 0 {
		return nil, models.ErrValidation
	}
	return s.Jobs.GetJobs(ctx, consumerID, providerID)
}
