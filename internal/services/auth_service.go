package services

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yleroy/coffeehouse-be/internal/auth"
	"github.com/yleroy/coffeehouse-be/internal/models"
	"github.com/yleroy/coffeehouse-be/internal/session"
)

// AuthServiceProvider defines the interface for authentication services.
type AuthServiceProvider interface {
	Register(ctx context.Context, email, username, password, phone string) error
	Login(ctx context.Context, sessionID, email, password string) (models.User, string, error)
	AutoLogin(ctx context.Context, sessionID string) (models.User, bool)
	Update(ctx context.Context, sessionID, userID string, fields map[string]any) (models.User, error)
	Logout(ctx context.Context, sessionID string)
	GetUserByID(ctx context.Context, id string) (models.User, error)
}

// AuthService orchestrates registration, login, auto-login, profile
// updates and logout over the credential store, the session store and
// the token issuer.
type AuthService struct {
	users    models.UserStore
	sessions session.Store
	tokens   *auth.TokenIssuer
	loc      *time.Location
}

// NewAuthService creates a new AuthService. Timestamps on created and
// updated records are normalized to loc.
func NewAuthService(users models.UserStore, sessions session.Store, tokens *auth.TokenIssuer, loc *time.Location) *AuthService {
	return &AuthService{users: users, sessions: sessions, tokens: tokens, loc: loc}
}

// Register creates a new user account. The email pre-check and the
// insert are not atomic: two concurrent registrations with the same
// email can both pass the check. Registration does not log the user in.
func (s *AuthService) Register(ctx context.Context, email, username, password, phone string) error {
	email = strings.TrimSpace(email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return models.ErrDuplicateUser
	}
	if !errors.Is(err, models.ErrUserNotFound) {
		return fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrPasswordHash, err)
	}

	user := models.User{
		Email:        html.EscapeString(email),
		Username:     html.EscapeString(username),
		Phone:        html.EscapeString(phone),
		PasswordHash: string(hash),
		CreatedAt:    time.Now().In(s.loc),
	}
	if _, err := s.users.Insert(ctx, user); err != nil {
		return fmt.Errorf("%w: %v", models.ErrUserSave, err)
	}
	return nil
}

// Login verifies the credentials, stores a user snapshot and a freshly
// issued token in the session, and returns both.
func (s *AuthService) Login(ctx context.Context, sessionID, email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, "", models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, "", fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, "", models.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("sign token: %w", err)
	}

	s.sessions.Set(ctx, sessionID, session.Session{User: user, Token: token})
	return user, token, nil
}

// AutoLogin re-authenticates a client from its session-cached token. A
// missing, invalid or expired token yields ok == false; an invalid token
// additionally destroys the session. The returned user is the cached
// snapshot, not a fresh read from the credential store.
func (s *AuthService) AutoLogin(ctx context.Context, sessionID string) (models.User, bool) {
	sess, ok := s.sessions.Get(ctx, sessionID)
	if !ok || sess.Token == "" {
		return models.User{}, false
	}

	if _, err := s.tokens.Verify(sess.Token); err != nil {
		s.sessions.Destroy(ctx, sessionID)
		return models.User{}, false
	}
	return sess.User, true
}

// Update applies a partial merge to the user record. The password can
// never be changed through this operation; updatedAt and lastModified
// are bumped on every call. The session's cached user is refreshed with
// the updated record. Last write wins.
func (s *AuthService) Update(ctx context.Context, sessionID, userID string, fields map[string]any) (models.User, error) {
	now := time.Now().In(s.loc)

	merged := make(map[string]any, len(fields)+2)
	for k, v := range fields {
		// Drop the password unconditionally, along with keys a client
		// could use to smuggle operators into the merge.
		if k == "password" || k == "_id" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			continue
		}
		merged[k] = v
	}
	merged["updatedAt"] = now
	merged["lastModified"] = now

	if err := s.users.UpdateByID(ctx, userID, merged); err != nil {
		return models.User{}, fmt.Errorf("update user: %w", err)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("reload user: %w", err)
	}

	if sess, ok := s.sessions.Get(ctx, sessionID); ok {
		sess.User = user
		s.sessions.Set(ctx, sessionID, sess)
	}
	return user, nil
}

// Logout destroys the session. Destroying an absent session is not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	s.sessions.Destroy(ctx, sessionID)
}

// GetUserByID retrieves a single user by their ID.
func (s *AuthService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.users.FindByID(ctx, id)
}
