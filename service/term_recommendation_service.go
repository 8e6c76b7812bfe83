package service

import (
	"sort"

	"payoff-engine/domain"
)

type TermRecommendationService struct {
	loanService *LoanService
}

func NewTermRecommendationService(loanService *LoanService) *TermRecommendationService {
	return &TermRecommendationService{
		loanService: loanService,
	}
}

// RecommendTerm analiza diferentes plazos y recomienda el óptimo
func (s *TermRecommendationService) RecommendTerm(
	input domain.TermRecommendationInput,
) (domain.TermRecommendationResult, error) {

	// Validaciones
	if err := checkAmount("amount", input.Amount); err != nil {
		return domain.TermRecommendationResult{}, err
	}
	if input.Amount == 0 {
		return domain.TermRecommendationResult{}, domain.InvalidInput("amount", "must be positive")
	}
	if err := checkAmount("interestRate", input.InterestRate); err != nil {
		return domain.TermRecommendationResult{}, err
	}
	if input.MinTermMonths <= 0 || input.MaxTermMonths <= 0 {
		return domain.TermRecommendationResult{}, domain.InvalidInput("termMonths", "term bounds must be positive")
	}
	if input.MinTermMonths > input.MaxTermMonths {
		return domain.TermRecommendationResult{}, domain.InvalidInput("minTermMonths", "greater than maxTermMonths")
	}
	if input.MaxTermMonths > MaxTermMonths {
		return domain.TermRecommendationResult{}, domain.InvalidInput("maxTermMonths", "exceeds the maximum of %d months", MaxTermMonths)
	}
	// Validar que el rango no sea demasiado grande para evitar cálculos costosos
	if input.MaxTermMonths-input.MinTermMonths > MaxTermRangeMonths {
		return domain.TermRecommendationResult{}, domain.InvalidInput("maxTermMonths", "term range exceeds %d months", MaxTermRangeMonths)
	}
	if input.MaxMonthlyPayment <= 0 {
		return domain.TermRecommendationResult{}, domain.InvalidInput("maxMonthlyPayment", "must be positive")
	}

	switch input.Preference {
	case domain.MinimizeInterest, domain.MinimizePayment, domain.Balanced:
	default:
		return domain.TermRecommendationResult{}, domain.InvalidInput("preference", "unknown preference %q", input.Preference)
	}

	recommendations := []domain.TermRecommendation{}

	// Calcular escenarios para cada plazo
	for term := input.MinTermMonths; term <= input.MaxTermMonths; term++ {
		result, err := paymentSummary(domain.LoanTerms{
			Principal:          input.Amount,
			AnnualInterestRate: input.InterestRate,
			TermMonths:         term,
		})
		if err != nil {
			return domain.TermRecommendationResult{}, err
		}

		// Filtrar por pago mensual máximo
		if result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		recommendations = append(recommendations, domain.TermRecommendation{
			TermMonths:     term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Score:          s.calculateScore(result, input, term),
			Reason:         s.generateReason(input.Preference),
		})
	}

	if len(recommendations) == 0 {
		return domain.TermRecommendationResult{}, domain.NonConverging("maxMonthlyPayment",
			"no term between %d and %d months fits a payment of %.2f", input.MinTermMonths, input.MaxTermMonths, input.MaxMonthlyPayment)
	}

	// Ordenar por score descendente; a igual score, el plazo más corto
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	s.loanService.record(domain.KindTermRecommend, recommendations[0].TermMonths, recommendations[0].TotalInterest)
	return domain.TermRecommendationResult{
		RecommendedTerm: recommendations[0].TermMonths,
		Recommendations: recommendations,
	}, nil
}

func (s *TermRecommendationService) calculateScore(
	result domain.PaymentResult,
	input domain.TermRecommendationInput,
	term int,
) float64 {
	// Normalizar valores para scoring (0-10)
	maxPossibleInterest := input.Amount * (input.InterestRate / 100) * float64(input.MaxTermMonths) / 12
	minPossibleInterest := input.Amount * (input.InterestRate / 100) * float64(input.MinTermMonths) / 12

	interestRange := maxPossibleInterest - minPossibleInterest
	minPayment := input.Amount / float64(input.MaxTermMonths)
	paymentRange := input.MaxMonthlyPayment - minPayment

	interestScore := 0.0
	paymentScore := 0.0
	termScore := 10.0

	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-minPayment)/paymentRange)
	}
	if input.MaxTermMonths > input.MinTermMonths {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermMonths)/float64(input.MaxTermMonths-input.MinTermMonths))
	}

	var score float64
	switch input.Preference {
	case domain.MinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case domain.MinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case domain.Balanced:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return roundTo2Decimals(score)
}

func (s *TermRecommendationService) generateReason(preference domain.TermPreference) string {
	switch preference {
	case domain.MinimizeInterest:
		return "Term chosen to minimize total interest paid"
	case domain.MinimizePayment:
		return "Term chosen to minimize the monthly payment"
	case domain.Balanced:
		return "Best balance between monthly payment and total cost"
	}
	return "Recommendation based on the supplied parameters"
}
