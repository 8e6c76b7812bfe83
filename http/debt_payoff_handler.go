package http

import (
	"net/http"

	"payoff-engine/domain"
	"payoff-engine/service"
)

type DebtPayoffHandler struct {
	service *service.DebtPayoffService
}

func NewDebtPayoffHandler(service *service.DebtPayoffService) *DebtPayoffHandler {
	return &DebtPayoffHandler{service: service}
}

func (h *DebtPayoffHandler) CalculateDebtPayoff(w http.ResponseWriter, r *http.Request) {
	var input domain.DebtPayoffInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CalculateDebtPayoff(input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *DebtPayoffHandler) CompareStrategies(w http.ResponseWriter, r *http.Request) {
	var input domain.ComparisonInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CompareStrategies(input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *DebtPayoffHandler) CreditCardPayoff(w http.ResponseWriter, r *http.Request) {
	var input domain.CreditCardInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.CreditCardPayoff(input)
	if err != nil {
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
