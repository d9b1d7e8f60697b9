package repositories

import (
	"context"
	"database/sql"
	"errors"

	"taskmatch/internal/lifecycle"
	"taskmatch/internal/models"
)

type RequestRepository struct {
	DB *sql.DB
}

func (r *RequestRepository) CreateRequest(ctx context.Context, req models.Request) (models.Request, error) {
	query := `
		INSERT INTO requests (consumer_id, service_id, title, description, location, budget, timeframe, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, status, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		req.ConsumerID, req.ServiceID, req.Title, req.Description, req.Location, req.Budget, req.Timeframe, lifecycle.RequestPending,
	).Scan(&req.ID, &req.Status, &req.CreatedAt)
	if err != nil {
		return models.Request{}, err
	}
	return req, nil
}

func (r *RequestRepository) GetRequestByID(ctx context.Context, id int) (models.Request, error) {
	var req models.Request
	query := `
		SELECT id, consumer_id, service_id, title, description, location, budget, timeframe, status, created_at
		FROM requests
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.ConsumerID, &req.ServiceID, &req.Title, &req.Description, &req.Location, &req.Budget, &req.Timeframe, &req.Status, &req.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Request{}, models.ErrRequestNotFound
	}
	if err != nil {
		return models.Request{}, err
	}
	return req, nil
}

// UpdateStatus moves a request along its lifecycle. The row is locked so a
// concurrent accept cannot interleave with a cancellation.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id int, nextStatus string) (models.Request, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Request{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var current string
	if err = tx.QueryRowContext(ctx, `SELECT status FROM requests WHERE id = $1 FOR UPDATE`, id).Scan(&current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = models.ErrRequestNotFound
		}
		return models.Request{}, err
	}

	if current != nextStatus {
		if err = lifecycle.ApplyRequest(ctx, tx, id, current, nextStatus); err != nil {
			return models.Request{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return models.Request{}, err
	}
	return r.GetRequestByID(ctx, id)
}

// GetActiveForProvider returns pending requests in the provider's subscribed
// service categories.
func (r *RequestRepository) GetActiveForProvider(ctx context.Context, providerID int) ([]models.Request, error) {
	query := `
		SELECT r.id, r.consumer_id, r.service_id, r.title, r.description, r.location, r.budget, r.timeframe, r.status, r.created_at
		FROM requests r
		JOIN provider_services ps ON ps.service_id = r.service_id
		WHERE ps.provider_id = $1 AND r.status = $2
		ORDER BY r.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, providerID, lifecycle.RequestPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *RequestRepository) GetActiveForConsumer(ctx context.Context, consumerID int) ([]models.Request, error) {
	query := `
		SELECT id, consumer_id, service_id, title, description, location, budget, timeframe, status, created_at
		FROM requests
		WHERE consumer_id = $1 AND status = $2
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, consumerID, lifecycle.RequestPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *RequestRepository) DeleteRequest(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrRequestNotFound
	}
	return nil
}

func scanRequests(rows *sql.Rows) ([]models.Request, error) {
	requests := []models.Request{}
	for rows.Next() {
		var req models.Request
		if err := rows.Scan(&req.ID, &req.ConsumerID, &req.ServiceID, &req.Title, &req.Description, &req.Location, &req.Budget, &req.Timeframe, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}
