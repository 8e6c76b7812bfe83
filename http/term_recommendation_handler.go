package http

import (
	"log"
	"net/http"

	"payoff-engine/domain"
	"payoff-engine/service"
)

type TermRecommendationHandler struct {
	service *service.TermRecommendationService
}

func NewTermRecommendationHandler(service *service.TermRecommendationService) *TermRecommendationHandler {
	return &TermRecommendationHandler{service: service}
}

func (h *TermRecommendationHandler) RecommendTerm(w http.ResponseWriter, r *http.Request) {
	var input domain.TermRecommendationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	result, err := h.service.RecommendTerm(input)
	if err != nil {
		log.Printf("Error recommending term: %v", err)
		writeCalculationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
