package repositories

import (
	"context"
	"database/sql"
	"errors"

	"taskmatch/internal/models"
)

type ProviderRepository struct {
	DB *sql.DB
}

func (r *ProviderRepository) CreateProvider(ctx context.Context, p models.Provider) (models.Provider, error) {
	query := `
		INSERT INTO providers (user_id, available, rating, reviews_count, bio, created_at)
		VALUES ($1, $2, 0, 0, $3, NOW())
		RETURNING created_at
	`
	if err := r.DB.QueryRowContext(ctx, query, p.UserID, p.Available, p.Bio).Scan(&p.CreatedAt); err != nil {
		return models.Provider{}, err
	}
	p.Rating = 0
	p.ReviewsCount = 0
	if len(p.ServiceIDs) > 0 {
		if err := r.SubscribeServices(ctx, p.UserID, p.ServiceIDs); err != nil {
			return models.Provider{}, err
		}
	}
	return p, nil
}

func (r *ProviderRepository) GetProviderByUserID(ctx context.Context, userID int) (models.Provider, error) {
	var p models.Provider
	query := `
		SELECT user_id, available, rating, reviews_count, bio, created_at, updated_at
		FROM providers
		WHERE user_id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&p.UserID, &p.Available, &p.Rating, &p.ReviewsCount, &p.Bio, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Provider{}, models.ErrProviderNotFound
	}
	if err != nil {
		return models.Provider{}, err
	}

	p.ServiceIDs, err = r.serviceIDs(ctx, userID)
	if err != nil {
		return models.Provider{}, err
	}
	return p, nil
}

// SubscribeServices adds the provider to each service category. ON CONFLICT
// keeps the call idempotent and removes the read-modify-write race a
// denormalized id array would have.
func (r *ProviderRepository) SubscribeServices(ctx context.Context, providerID int, serviceIDs []int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO provider_services (provider_id, service_id)
		VALUES ($1, $2)
		ON CONFLICT (provider_id, service_id) DO NOTHING
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, serviceID := range serviceIDs {
		if _, err = stmt.ExecContext(ctx, providerID, serviceID); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *ProviderRepository) UnsubscribeService(ctx context.Context, providerID, serviceID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM provider_services WHERE provider_id = $1 AND service_id = $2`, providerID, serviceID)
	return err
}

// UnsubscribeAll removes the provider from every service category, used on
// provider deletion.
func (r *ProviderRepository) UnsubscribeAll(ctx context.Context, providerID int) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM provider_services WHERE provider_id = $1`, providerID)
	return err
}

// DeleteProvider removes the profile row. Category subscriptions are cleared
// separately via UnsubscribeAll before this runs.
func (r *ProviderRepository) DeleteProvider(ctx context.Context, providerID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM providers WHERE user_id = $1`, providerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrProviderNotFound
	}
	return nil
}

// AddRating applies the incremental average in a single statement, so two
// concurrent ratings cannot lose each other's update. With reviews_count = 0
// the formula reduces to the new rating itself.
func (r *ProviderRepository) AddRating(ctx context.Context, providerID int, rating float64) (models.Provider, error) {
	query := `
		UPDATE providers
		SET rating = (rating * reviews_count + $1) / (reviews_count + 1),
		    reviews_count = reviews_count + 1,
		    updated_at = NOW()
		WHERE user_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, rating, providerID)
	if err != nil {
		return models.Provider{}, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return models.Provider{}, err
	}
	if affected == 0 {
		return models.Provider{}, models.ErrProviderNotFound
	}
	return r.GetProviderByUserID(ctx, providerID)
}

func (r *ProviderRepository) SetAvailability(ctx context.Context, providerID int, available bool) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE providers SET available = $1, updated_at = NOW() WHERE user_id = $2`, available, providerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrProviderNotFound
	}
	return nil
}

func (r *ProviderRepository) serviceIDs(ctx context.Context, providerID int) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT service_id FROM provider_services WHERE provider_id = $1 ORDER BY service_id`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []int{}
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
