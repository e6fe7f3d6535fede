package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Coffee represents a single entry in the coffee catalog.
type Coffee struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	Origin      string        `bson:"origin" json:"origin"`
	Roast       string        `bson:"roast" json:"roast"`
	Price       float64       `bson:"price" json:"price"`
	Image       string        `bson:"image" json:"image"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// CoffeeStore defines persistence operations for the coffee catalog.
type CoffeeStore interface {
	FindAll(ctx context.Context) ([]Coffee, error)
	FindByID(ctx context.Context, id string) (Coffee, error)
	Insert(ctx context.Context, coffee Coffee) (Coffee, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
}
