package repositories

import (
	"context"
	"database/sql"
	"errors"

	"taskmatch/internal/lifecycle"
	"taskmatch/internal/models"
)

type OfferRepository struct {
	DB *sql.DB
}

// CreateOffer inserts a pending offer. The insert only succeeds while the
// target request is still pending, so the guard holds under concurrency.
func (r *OfferRepository) CreateOffer(ctx context.Context, offer models.Offer) (models.Offer, error) {
	query := `
		INSERT INTO offers (request_id, provider_id, budget, timeframe, status, created_at)
		SELECT $1, $2, $3, $4, $5, NOW()
		WHERE EXISTS (SELECT 1 FROM requests WHERE id = $1 AND status = $6)
		RETURNING id, status, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		offer.RequestID, offer.ProviderID, offer.Budget, offer.Timeframe, lifecycle.OfferPending, lifecycle.RequestPending,
	).Scan(&offer.ID, &offer.Status, &offer.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Either the request does not exist or it is no longer open.
		var exists bool
		if checkErr := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM requests WHERE id = $1)`, offer.RequestID).Scan(&exists); checkErr != nil {
			return models.Offer{}, checkErr
		}
		if !exists {
			return models.Offer{}, models.ErrRequestNotFound
		}
		return models.Offer{}, models.ErrRequestNotOpen
	}
	if err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

func (r *OfferRepository) GetOfferByID(ctx context.Context, id int) (models.Offer, error) {
	var offer models.Offer
	query := `
		SELECT id, request_id, provider_id, budget, timeframe, status, created_at
		FROM offers
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&offer.ID, &offer.RequestID, &offer.ProviderID, &offer.Budget, &offer.Timeframe, &offer.Status, &offer.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Offer{}, models.ErrOfferNotFound
	}
	if err != nil {
		return models.Offer{}, err
	}
	return offer, nil
}

// GetOffers filters by request and/or provider; zero means no filter.
func (r *OfferRepository) GetOffers(ctx context.Context, requestID, providerID int) ([]models.Offer, error) {
	query := `
		SELECT id, request_id, provider_id, budget, timeframe, status, created_at
		FROM offers
		WHERE ($1 = 0 OR request_id = $1) AND ($2 = 0 OR provider_id = $2)
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, requestID, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []models.Offer{}
	for rows.Next() {
		var offer models.Offer
		if err := rows.Scan(&offer.ID, &offer.RequestID, &offer.ProviderID, &offer.Budget, &offer.Timeframe, &offer.Status, &offer.CreatedAt); err != nil {
			return nil, err
		}
		offers = append(offers, offer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return offers, nil
}

// UpdateStatus moves an offer along its lifecycle. Accepted and rejected
// offers are final.
func (r *OfferRepository) UpdateStatus(ctx context.Context, id int, nextStatus string) (models.Offer, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Offer{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	if err = tx.QueryRowContext(ctx, `SELECT status FROM offers WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = models.ErrOfferNotFound
		}
		return models.Offer{}, err
	}

	if current != nextStatus {
		if current != lifecycle.OfferPending {
			err = models.ErrOfferDecided
			return models.Offer{}, err
		}
		if err = lifecycle.ApplyOffer(ctx, tx, id, current, nextStatus); err != nil {
			return models.Offer{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Offer{}, err
	}
	return r.GetOfferByID(ctx, id)
}

func (r *OfferRepository) DeleteOffer(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrOfferNotFound
	}
	return nil
}
