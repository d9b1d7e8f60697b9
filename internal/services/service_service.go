package services

import (
	"context"

	"taskmatch/internal/models"
	"taskmatch/internal/repositories"
)

type ServiceService struct {
	ServiceRepo *repositories.ServiceRepository
}

func (s *ServiceService) CreateService(ctx context.Context, svc models.Service) (models.Service, error) {
	if svc.Name == "" {
		return models.Service{}, models.ErrValidation
	}
	return s.ServiceRepo.CreateService(ctx, svc)
}

func (s *ServiceService) GetServiceByID(ctx context.Context, id int) (models.Service, error) {
	return s.ServiceRepo.GetServiceByID(ctx, id)
}

func (s *ServiceService) GetAllServices(ctx context.Context) ([]models.Service, error) {
	return s.ServiceRepo.GetAllServices(ctx)
}

func (s *ServiceService) UpdateService(ctx context.Context, svc models.Service) error {
	return s.ServiceRepo.UpdateService(ctx, svc)
}

func (s *ServiceService) DeleteService(ctx context.Context, id int) error {
	return s.ServiceRepo.DeleteService(ctx, id)
}
