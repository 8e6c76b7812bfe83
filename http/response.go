package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"payoff-engine/domain"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string
	Kind  string
	Field string `json:",omitempty"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		log.Printf("Error decoding request body: %v", err)
		writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "invalid_input"})
		return false
	}
	return true
}

// writeJSON codifica en buffer primero para evitar escribir header si falla
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, body errorResponse) {
	writeJSON(w, status, body)
}

// writeCalculationError maps engine errors to status codes:
// invalid input is 400, a plan that never pays off is 422.
func writeCalculationError(w http.ResponseWriter, err error) {
	body := errorResponse{Error: err.Error()}
	var calcErr *domain.CalculationError
	if errors.As(err, &calcErr) {
		body.Field = calcErr.Field
	}

	switch {
	case domain.IsInvalidInput(err):
		body.Kind = "invalid_input"
		writeError(w, http.StatusBadRequest, body)
	case domain.IsNonConverging(err):
		body.Kind = "non_converging"
		writeError(w, http.StatusUnprocessableEntity, body)
	default:
		log.Printf("Error in calculation: %v", err)
		writeError(w, http.StatusInternalServerError, errorResponse{Error: "internal server error", Kind: "internal"})
	}
}
