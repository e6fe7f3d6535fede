package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError describes one violated constraint on a request payload.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Msg   string `json:"msg"`
}

// checkPayload validates v and, on failure, writes the 422 response with
// the list of violated fields. Returns true when the payload is valid.
func checkPayload(w http.ResponseWriter, v any) bool {
	err := validate.Struct(v)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondServerError(w)
		return false
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Msg:   "Invalid value",
		})
	}
	respondJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": fields})
	return false
}
