package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/yleroy/coffeehouse-be/internal/models"
)

// CoffeeStore is the MongoDB-backed implementation of models.CoffeeStore.
type CoffeeStore struct {
	coll *mongo.Collection
}

// NewCoffeeStore creates a CoffeeStore bound to the coffees collection.
func NewCoffeeStore(db *mongo.Database) *CoffeeStore {
	return &CoffeeStore{coll: db.Collection("coffees")}
}

// FindAll returns the full catalog.
func (s *CoffeeStore) FindAll(ctx context.Context) ([]models.Coffee, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	coffees := []models.Coffee{}
	if err := cur.All(ctx, &coffees); err != nil {
		return nil, err
	}
	return coffees, nil
}

// FindByID retrieves a single coffee by its ID.
func (s *CoffeeStore) FindByID(ctx context.Context, id string) (models.Coffee, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.Coffee{}, fmt.Errorf("parse coffee id %q: %w", id, err)
	}

	var coffee models.Coffee
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&coffee)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Coffee{}, models.ErrCoffeeNotFound
	}
	if err != nil {
		return models.Coffee{}, err
	}
	return coffee, nil
}

// Insert persists a new coffee and returns it with its assigned ID.
func (s *CoffeeStore) Insert(ctx context.Context, coffee models.Coffee) (models.Coffee, error) {
	res, err := s.coll.InsertOne(ctx, coffee)
	if err != nil {
		return models.Coffee{}, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		coffee.ID = oid
	}
	return coffee, nil
}

// UpdateByID applies a $set merge of the given fields to one coffee.
func (s *CoffeeStore) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse coffee id %q: %w", id, err)
	}

	res, err := s.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return models.ErrCoffeeNotFound
	}
	return nil
}

// DeleteByID removes one coffee from the catalog.
func (s *CoffeeStore) DeleteByID(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse coffee id %q: %w", id, err)
	}
	_, err = s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
