package handlers

import (
	"encoding/json"
	"net/http"
)

// respondJSON writes v as the JSON response body with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondMessage writes a {"message": ...} body.
func respondMessage(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"message": msg})
}

// respondError writes an {"error": ...} body. Auth failures use this
// with StatusNonAuthoritativeInfo; callers are expected to branch on the
// error field rather than the transport status.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// respondServerError writes a generic 500 body. The concrete error is
// logged by the caller, never transmitted.
func respondServerError(w http.ResponseWriter) {
	respondError(w, http.StatusInternalServerError, "internal server error")
}
