package application

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stayfront/hms_backend/internal/domain"
)

// CatalogService manages the hotel's add-on service catalog.
type CatalogService struct {
	repo domain.HotelServiceRepository
}

func NewCatalogService(repo domain.HotelServiceRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

func (s *CatalogService) GetAllServices() ([]domain.HotelService, error) {
	return s.repo.GetAll()
}

func (s *CatalogService) GetService(id int) (*domain.HotelService, error) {
	return s.repo.GetByID(id)
}

func (s *CatalogService) CreateService(service *domain.HotelService) error {
	if err := validateCatalogService(service); err != nil {
		return err
	}
	service.Active = true
	return s.repo.Create(service)
}

func (s *CatalogService) UpdateService(service *domain.HotelService) error {
	if err := validateCatalogService(service); err != nil {
		return err
	}
	return s.repo.Update(service)
}

// DeleteService deactivates a service; existing lines keep their snapshot.
func (s *CatalogService) DeleteService(id int) error {
	return s.repo.Delete(id)
}

func validateCatalogService(service *domain.HotelService) error {
	if service.Name == "" {
		return fmt.Errorf("service name is required")
	}
	if service.Price.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("service price must be greater than 0")
	}
	return nil
}
