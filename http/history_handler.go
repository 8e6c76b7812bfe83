package http

import (
	"net/http"
	"strconv"

	"payoff-engine/domain"
)

const defaultHistoryLimit = 50

// HistorySource lists recent calculations; both services satisfy it.
type HistorySource interface {
	History(limit int) ([]domain.CalculationRecord, error)
}

type HistoryHandler struct {
	source HistorySource
}

func NewHistoryHandler(source HistorySource) *HistoryHandler {
	return &HistoryHandler{source: source}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid limit", Kind: "invalid_input", Field: "limit"})
			return
		}
		limit = n
	}

	records, err := h.source.History(limit)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}
