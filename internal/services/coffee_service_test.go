package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/yleroy/coffeehouse-be/internal/models"
)

// fakeCoffeeStore is an in-memory models.CoffeeStore.
type fakeCoffeeStore struct {
	mu      sync.Mutex
	coffees map[string]models.Coffee
}

func newFakeCoffeeStore() *fakeCoffeeStore {
	return &fakeCoffeeStore{coffees: make(map[string]models.Coffee)}
}

func (f *fakeCoffeeStore) FindAll(_ context.Context) ([]models.Coffee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := []models.Coffee{}
	for _, c := range f.coffees {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeCoffeeStore) FindByID(_ context.Context, id string) (models.Coffee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.coffees[id]
	if !ok {
		return models.Coffee{}, models.ErrCoffeeNotFound
	}
	return c, nil
}

func (f *fakeCoffeeStore) Insert(_ context.Context, coffee models.Coffee) (models.Coffee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	coffee.ID = bson.NewObjectID()
	f.coffees[coffee.ID.Hex()] = coffee
	return coffee, nil
}

func (f *fakeCoffeeStore) UpdateByID(_ context.Context, id string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.coffees[id]
	if !ok {
		return models.ErrCoffeeNotFound
	}
	for k, v := range fields {
		switch k {
		case "name":
			c.Name = v.(string)
		case "price":
			c.Price = v.(float64)
		case "updatedAt":
			c.UpdatedAt = v.(time.Time)
		}
	}
	f.coffees[id] = c
	return nil
}

func (f *fakeCoffeeStore) DeleteByID(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.coffees, id)
	return nil
}

func TestCoffeeService_CRUD(t *testing.T) {
	ctx := context.Background()
	store := newFakeCoffeeStore()
	svc := NewCoffeeService(store, time.UTC)

	created, err := svc.CreateCoffee(ctx, models.Coffee{Name: "Yirgacheffe", Origin: "Ethiopia", Price: 12.5})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())

	all, err := svc.GetAllCoffees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := svc.GetCoffeeByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Yirgacheffe", got.Name)

	updated, err := svc.UpdateCoffee(ctx, created.ID.Hex(), map[string]any{
		"price": 13.0,
		"$inc":  map[string]any{"price": 100},
	})
	require.NoError(t, err)
	assert.Equal(t, 13.0, updated.Price)
	assert.False(t, updated.UpdatedAt.IsZero())

	require.NoError(t, svc.DeleteCoffee(ctx, created.ID.Hex()))
	_, err = svc.GetCoffeeByID(ctx, created.ID.Hex())
	assert.ErrorIs(t, err, models.ErrCoffeeNotFound)
}
