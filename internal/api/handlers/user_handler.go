package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/yleroy/coffeehouse-be/internal/config"
	"github.com/yleroy/coffeehouse-be/internal/models"
	"github.com/yleroy/coffeehouse-be/internal/services"
)

// UserHandler handles HTTP requests for registration, authentication and
// profile management.
type UserHandler struct {
	service services.AuthServiceProvider
	cookies config.Session
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.AuthServiceProvider, cookies config.Session) *UserHandler {
	return &UserHandler{service: service, cookies: cookies}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Username string `json:"username" validate:"required,min=1,max=50"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"omitempty,max=20"`
}

// AuthPayload defines the structure for login requests.
type AuthPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionID returns the client's session identifier, minting a new one
// and setting the session cookie when the client has none yet.
func (h *UserHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(h.cookies.CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookies.CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: h.cookies.HTTPOnly,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSiteMode(),
	})
	return id
}

// Register handles new user registration. Registration does not log the
// user in.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !checkPayload(w, &payload) {
		return
	}

	err := h.service.Register(r.Context(), payload.Email, payload.Username, payload.Password, payload.Phone)
	switch {
	case err == nil:
		respondMessage(w, http.StatusCreated, "User created")
	case errors.Is(err, models.ErrDuplicateUser):
		respondError(w, http.StatusNonAuthoritativeInfo, "The user already exist")
	case errors.Is(err, models.ErrPasswordHash):
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to hash password")
		respondError(w, http.StatusNonAuthoritativeInfo, "Problem with password")
	case errors.Is(err, models.ErrUserSave):
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to save user")
		respondError(w, http.StatusNonAuthoritativeInfo, "error hash")
	default:
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondServerError(w)
	}
}

// Login handles user authentication. On success the session cookie keys
// the server-side session, and the token is returned in the body and
// mirrored in the token cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload AuthPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !checkPayload(w, &payload) {
		return
	}

	sid := h.sessionID(w, r)
	user, token, err := h.service.Login(r.Context(), sid, payload.Email, payload.Password)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		respondError(w, http.StatusNonAuthoritativeInfo, "User not found")
		return
	case errors.Is(err, models.ErrInvalidCredentials):
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		respondError(w, http.StatusNonAuthoritativeInfo, "Password incorrect")
		return
	case err != nil:
		log.Error().Err(err).Str("email", payload.Email).Msg("Login failed")
		respondServerError(w)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		Path:     "/",
		HttpOnly: h.cookies.HTTPOnly,
		Secure:   h.cookies.Secure,
		SameSite: h.cookies.SameSiteMode(),
	})

	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Auth successful",
		"user":    user,
		"token":   token,
	})
}

// Get handles retrieving a user by their ID. The body is a list: one
// element when the user exists, empty when not.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user_id")

	user, err := h.service.GetUserByID(r.Context(), id)
	if errors.Is(err, models.ErrUserNotFound) {
		respondJSON(w, http.StatusOK, []models.User{})
		return
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to get user")
		respondServerError(w)
		return
	}
	respondJSON(w, http.StatusOK, []models.User{user})
}

// Update handles a partial profile update. The password field is never
// applied; the session's cached user is refreshed with the result.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "user_id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"errors": []FieldError{{Field: "body", Rule: "json", Msg: "Invalid value"}},
		})
		return
	}

	sid := h.sessionID(w, r)
	user, err := h.service.Update(r.Context(), sid, id, fields)
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("Failed to update user")
		respondServerError(w)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// AutoLogin re-authenticates the client from the session-cached token.
// All outcomes are 200; a missing or stale token is a normal miss, not
// an error.
func (h *UserHandler) AutoLogin(w http.ResponseWriter, r *http.Request) {
	sid := h.sessionID(w, r)

	user, ok := h.service.AutoLogin(r.Context(), sid)
	if !ok {
		respondMessage(w, http.StatusOK, "No token provided !")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"message": "Auto Login success",
		"user":    user,
	})
}

// Logout destroys the session and clears the token cookie. Logging out
// without a session succeeds all the same.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(h.cookies.CookieName); err == nil && c.Value != "" {
		h.service.Logout(r.Context(), c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	respondMessage(w, http.StatusOK, "Disconnect success")
}
