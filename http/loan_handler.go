package http

import (
	"net/http"

	"payoff-engine/domain"
	"payoff-engine/service"
)

type LoanHandler struct {
	service *service.LoanService
}

func NewLoanHandler(service *service.LoanService) *LoanHandler {
	return &LoanHandler{service: service}
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanTerms
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateLoan(input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) Amortization(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanTerms
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.Amortization(input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *LoanHandler) RemainingBalance(w http.ResponseWriter, r *http.Request) {
	var input domain.RemainingBalanceInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.RemainingBalance(input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
