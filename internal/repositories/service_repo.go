package repositories

import (
	"context"
	"database/sql"
	"errors"

	"taskmatch/internal/models"
)

type ServiceRepository struct {
	DB *sql.DB
}

func (r *ServiceRepository) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	query := `
		INSERT INTO services (name, description, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	if err := r.DB.QueryRowContext(ctx, query, svc.Name, svc.Description).Scan(&svc.ID, &svc.CreatedAt); err != nil {
		return models.Service{}, err
	}
	svc.ProviderIDs = []int{}
	return svc, nil
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	var svc models.Service
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM services
		WHERE id = $1
	`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&svc.ID, &svc.Name, &svc.Description, &svc.CreatedAt, &svc.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, models.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}

	svc.ProviderIDs, err = r.providerIDs(ctx, id)
	if err != nil {
		return models.Service{}, err
	}
	return svc, nil
}

// GetServiceByName resolves a service by its catalog name. Legacy clients send
// service names instead of ids on some paths.
func (r *ServiceRepository) GetServiceByName(ctx context.Context, name string) (models.Service, error) {
	var id int
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM services WHERE LOWER(name) = LOWER($1)`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Service{}, models.ErrServiceNotFound
	}
	if err != nil {
		return models.Service{}, err
	}
	return r.GetServiceByID(ctx, id)
}

func (r *ServiceRepository) GetAllServices(ctx context.Context) ([]models.Service, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, description, created_at, updated_at FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range services {
		services[i].ProviderIDs, err = r.providerIDs(ctx, services[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return services, nil
}

func (r *ServiceRepository) UpdateService(ctx context.Context, svc models.Service) error {
	res, err := r.DB.ExecContext(ctx, `UPDATE services SET name = $1, description = $2, updated_at = NOW() WHERE id = $3`, svc.Name, svc.Description, svc.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return models.ErrServiceNotFound
	}
	return nil
}

func (r *ServiceRepository) providerIDs(ctx context.Context, serviceID int) ([]int, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT provider_id FROM provider_services WHERE service_id = $1 ORDER BY provider_id`, serviceID)
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
