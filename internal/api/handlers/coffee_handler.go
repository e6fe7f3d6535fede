package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/yleroy/coffeehouse-be/internal/models"
	"github.com/yleroy/coffeehouse-be/internal/services"
)

// CoffeeHandler handles HTTP requests for the coffee catalog.
type CoffeeHandler struct {
	service services.CoffeeServiceProvider
}

// NewCoffeeHandler creates a new CoffeeHandler.
func NewCoffeeHandler(service services.CoffeeServiceProvider) *CoffeeHandler {
	return &CoffeeHandler{service: service}
}

// CoffeePayload defines the structure for catalog create requests.
type CoffeePayload struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"max=1000"`
	Origin      string  `json:"origin" validate:"max=100"`
	Roast       string  `json:"roast" validate:"max=50"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image" validate:"omitempty,url"`
}

// GetAll handles the request to list the catalog.
func (h *CoffeeHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	coffees, err := h.service.GetAllCoffees(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list coffees")
		respondServerError(w)
		return
	}
	respondJSON(w, http.StatusOK, coffees)
}

// Get handles the request to get a single coffee by its ID.
func (h *CoffeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	coffee, err := h.service.GetCoffeeByID(r.Context(), id)
	if errors.Is(err, models.ErrCoffeeNotFound) {
		respondError(w, http.StatusNotFound, "Coffee not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("coffee_id", id).Msg("Failed to get coffee")
		respondServerError(w)
		return
	}
	respondJSON(w, http.StatusOK, coffee)
}

// Create handles the request to add a catalog entry.
func (h *CoffeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload CoffeePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !checkPayload(w, &payload) {
		return
	}

	coffee, err := h.service.CreateCoffee(r.Context(), models.Coffee{
		Name:        payload.Name,
		Description: payload.Description,
		Origin:      payload.Origin,
		Roast:       payload.Roast,
		Price:       payload.Price,
		Image:       payload.Image,
	})
	if err != nil {
		log.Error().Err(err).Str("name", payload.Name).Msg("Failed to create coffee")
		respondServerError(w)
		return
	}
	respondJSON(w, http.StatusCreated, coffee)
}

// Update handles a partial update of one catalog entry.
func (h *CoffeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	coffee, err := h.service.UpdateCoffee(r.Context(), id, fields)
	if errors.Is(err, models.ErrCoffeeNotFound) {
		respondError(w, http.StatusNotFound, "Coffee not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("coffee_id", id).Msg("Failed to update coffee")
		respondServerError(w)
		return
	}
	respondJSON(w, http.StatusOK, coffee)
}

// Delete handles the removal of one catalog entry.
func (h *CoffeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteCoffee(r.Context(), id); err != nil {
		log.Error().Err(err).Str("coffee_id", id).Msg("Failed to delete coffee")
		respondServerError(w)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
