package database

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/yleroy/coffeehouse-be/internal/models"
)

// UserStore is the MongoDB-backed implementation of models.UserStore.
//
// The users collection carries no unique index on email; duplicate
// prevention is an application-level pre-check in the auth service.
type UserStore struct {
	coll *mongo.Collection
}

// NewUserStore creates a UserStore bound to the users collection.
func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{coll: db.Collection("users")}
}

// FindByEmail retrieves a single user by email, including the password hash.
func (s *UserStore) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// FindByID retrieves a single user by their ID.
func (s *UserStore) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, fmt.Errorf("parse user id %q: %w", id, err)
	}

	var user models.User
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Insert persists a new user record and returns it with its assigned ID.
func (s *UserStore) Insert(ctx context.Context, user models.User) (models.User, error) {
	res, err := s.coll.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = oid
	}
	return user, nil
}

// UpdateByID applies a $set merge of the given fields to one user record.
func (s *UserStore) UpdateByID(ctx context.Context, id string, fields map[string]any) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("parse user id %q: %w", id, err)
	}
	_, err = s.coll.UpdateByID(ctx, oid, bson.M{"$set": fields})
	return err
}
