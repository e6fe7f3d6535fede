// Package session provides the server-side session state keyed by the
// opaque identifier carried in the client's session cookie.
package session

import (
	"context"

	"github.com/yleroy/coffeehouse-be/internal/models"
)

// Session holds the state for one authenticated client: a snapshot of
// the user taken at the last login or profile update, and the last
// issued token string.
type Session struct {
	User  models.User
	Token string
}

// Store defines how sessions are stored and retrieved. Implementations
// must be safe for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (Session, bool)
	Set(ctx context.Context, id string, s Session)
	Destroy(ctx context.Context, id string)
}
