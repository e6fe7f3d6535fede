package services

import (
	"context"
	"strings"
	"time"

	"github.com/yleroy/coffeehouse-be/internal/models"
)

// CoffeeServiceProvider defines the interface for coffee catalog services.
type CoffeeServiceProvider interface {
	GetAllCoffees(ctx context.Context) ([]models.Coffee, error)
	GetCoffeeByID(ctx context.Context, id string) (models.Coffee, error)
	CreateCoffee(ctx context.Context, coffee models.Coffee) (models.Coffee, error)
	UpdateCoffee(ctx context.Context, id string, fields map[string]any) (models.Coffee, error)
	DeleteCoffee(ctx context.Context, id string) error
}

// CoffeeService provides business logic for the coffee catalog.
type CoffeeService struct {
	coffees models.CoffeeStore
	loc     *time.Location
}

// NewCoffeeService creates a new CoffeeService.
func NewCoffeeService(coffees models.CoffeeStore, loc *time.Location) *CoffeeService {
	return &CoffeeService{coffees: coffees, loc: loc}
}

// GetAllCoffees returns the full catalog.
func (s *CoffeeService) GetAllCoffees(ctx context.Context) ([]models.Coffee, error) {
	return s.coffees.FindAll(ctx)
}

// GetCoffeeByID retrieves a single coffee by its ID.
func (s *CoffeeService) GetCoffeeByID(ctx context.Context, id string) (models.Coffee, error) {
	return s.coffees.FindByID(ctx, id)
}

// CreateCoffee persists a new catalog entry.
func (s *CoffeeService) CreateCoffee(ctx context.Context, coffee models.Coffee) (models.Coffee, error) {
	coffee.CreatedAt = time.Now().In(s.loc)
	return s.coffees.Insert(ctx, coffee)
}

// UpdateCoffee applies a partial merge to one catalog entry and returns
// the updated record.
func (s *CoffeeService) UpdateCoffee(ctx context.Context, id string, fields map[string]any) (models.Coffee, error) {
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		if k == "_id" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			continue
		}
		merged[k] = v
	}
	merged["updatedAt"] = time.Now().In(s.loc)

	if err := s.coffees.UpdateByID(ctx, id, merged); err != nil {
		return models.Coffee{}, err
	}
	return s.coffees.FindByID(ctx, id)
}

// DeleteCoffee removes one entry from the catalog.
func (s *CoffeeService) DeleteCoffee(ctx context.Context, id string) error {
	return s.coffees.DeleteByID(ctx, id)
}
