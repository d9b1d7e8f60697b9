package repositories

import (
	"context"
	"database/sql"
	"errors"

	"taskmatch/internal/lifecycle"
	"taskmatch/internal/models"
)

type PairedJobRepository struct {
	DB *sql.DB
}

// AcceptOffer performs the compound matching transition in one transaction:
// the request row is locked, the chosen offer becomes accepted, sibling
// pending offers become rejected, the request becomes assigned and the job
// snapshot is inserted. A crash before commit leaves no partial state.
func (r *PairedJobRepository) AcceptOffer(ctx context.Context, params models.CreatePairedJobRequest) (models.PairedJob, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.PairedJob{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var req models.Request
	err = tx.QueryRowContext(ctx, `
		SELECT id, consumer_id, service_id, title, description, budget, status
		FROM requests
		WHERE id = $1
		FOR UPDATE
	`, params.RequestID).Scan(&req.ID, &req.ConsumerID, &req.ServiceID, &req.Title, &req.Description, &req.Budget, &req.Status)
	if errors.Is(err, sql.ErrNoRows) {
		err = models.ErrRequestNotFound
		return models.PairedJob{}, err
	}
	if err != nil {
		return models.PairedJob{}, err
	}

	// A second accept on an already-assigned request fails here instead of
	// silently creating a duplicate job.
	if req.Status != lifecycle.RequestPending {
		err = models.ErrRequestNotOpen
		return models.PairedJob{}, err
	}

	var offerStatus string
	var offerBudget float64
	var offerProviderID int
	err = tx.QueryRowContext(ctx, `
		SELECT status, budget, provider_id FROM offers WHERE id = $1 AND request_id = $2 FOR UPDATE
	`, params.OfferID, params.RequestID).Scan(&offerStatus, &offerBudget, &offerProviderID)
	if errors.Is(err, sql.ErrNoRows) {
		err = models.ErrOfferNotFound
		return models.PairedJob{}, err
	}
	if err != nil {
		return models.PairedJob{}, err
	}
	if offerStatus != lifecycle.OfferPending {
		err = models.ErrOfferDecided
		return models.PairedJob{}, err
	}

	// The locked rows name the real participants. A body naming anyone else
	// must not create a job, let alone notify the wrong provider.
	if err = matchParticipants(params, req.ConsumerID, offerProviderID); err != nil {
		return models.PairedJob{}, err
	}

	if err = lifecycle.ApplyOffer(ctx, tx, params.OfferID, offerStatus, lifecycle.OfferAccepted); err != nil {
		return models.PairedJob{}, err
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE offers SET status = $1 WHERE request_id = $2 AND id <> $3 AND status = $4
	`, lifecycle.OfferRejected, params.RequestID, params.OfferID, lifecycle.OfferPending); err != nil {
		return models.PairedJob{}, err
	}

	if err = lifecycle.ApplyRequest(ctx, tx, params.RequestID, req.Status, lifecycle.RequestAssigned); err != nil {
		return models.PairedJob{}, err
	}

	cost := req.Budget
	if offerBudget > 0 {
		cost = offerBudget
	}
	if params.Budget != nil {
		cost = *params.Budget
	}

	job := models.PairedJob{
		ConsumerID:  req.ConsumerID,
		ProviderID:  offerProviderID,
		RequestID:   params.RequestID,
		OfferID:     params.OfferID,
		ServiceID:   req.ServiceID,
		Title:       req.Title,
		Description: req.Description,
		Cost:        cost,
	}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO paired_jobs (consumer_id, provider_id, request_id, offer_id, service_id, title, description, cost, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`, job.ConsumerID, job.ProviderID, job.RequestID, job.OfferID, job.ServiceID, job.Title, job.Description, job.Cost).Scan(&job.ID, &job.CreatedAt)
	if err != nil {
		return models.PairedJob{}, err
	}

	if err = tx.Commit(); err != nil {
		return models.PairedJob{}, err
	}
	return job, nil
}

func (r *PairedJobRepository) GetJobByID(ctx context.Context, id int) (models.PairedJob, error) {
	var job models.PairedJob
	query := `
		SELECT id, consumer_id, provider_id, request_id, offer_id, service_id, title, description, cost, rating, review, created_at
		FROM paired_jobs
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&job.ID, &job.ConsumerID, &job.ProviderID, &job.RequestID, &job.OfferID, &job.ServiceID,
		&job.Title, &job.Description, &job.Cost, &job.Rating, &job.Review, &job.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PairedJob{}, models.ErrJobNotFound
	}
	if err != nil {
		return models.PairedJob{}, err
	}
	return job, nil
}

// GetJobs filters by consumer and/or provider; zero means no filter.
func (r *PairedJobRepository) GetJobs(ctx context.Context, consumerID, providerID int) ([]models.PairedJob, error) {
	query := `
		SELECT id, consumer_id, provider_id, request_id, offer_id, service_id, title, description, cost, rating, review, created_at
		FROM paired_jobs
		WHERE ($1 = 0 OR consumer_id = $1) AND ($2 = 0 OR provider_id = $2)
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, consumerID, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []models.PairedJob{}
	for rows.Next() {
		var job models.PairedJob
		if err := rows.Scan(&job.ID, &job.ConsumerID, &job.ProviderID, &job.RequestID, &job.OfferID, &job.ServiceID,
			&job.Title, &job.Description, &job.Cost, &job.Rating, &job.Review, &job.CreatedAt); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// matchParticipants checks the caller-supplied ids against the request's
// consumer and the offer's provider.
func matchParticipants(params models.CreatePairedJobRequest, consumerID, providerID int) error {
	if params.ConsumerID != consumerID || params.ProviderID != providerID {
		return models.ErrValidation
	}
	return nil
}

// SetReview stores a completed job's rating and review text.
func (r *PairedJobRepository) SetReview(ctx context.Context, jobID int, rating float64, review *string) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE paired_jobs SET rating = $1, review = $2 WHERE id = $3`, rating, review, jobID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrJobNotFound
	}
	return nil
}
