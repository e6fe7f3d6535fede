package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a user account in the system.
type User struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email          string        `bson:"email" json:"email"`
	Username       string        `bson:"username" json:"username"`
	PasswordHash   string        `bson:"password" json:"-"` // Never expose this to the client
	Phone          string        `bson:"phone,omitempty" json:"phone,omitempty"`
	ProfilePicture string        `bson:"profilepic" json:"profilepic"`
	DeviceID       string        `bson:"deviceId,omitempty" json:"deviceId,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time     `bson:"updatedAt,omitempty" json:"updatedAt"`
	LastModified   time.Time     `bson:"lastModified,omitempty" json:"lastModified"`
}

// UserStore defines persistence operations for user records.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Insert(ctx context.Context, user User) (User, error)
	// UpdateByID applies a partial merge: only the given fields are
	// written, everything else on the record is left untouched.
	UpdateByID(ctx context.Context, id string, fields map[string]any) error
}
