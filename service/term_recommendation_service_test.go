package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payoff-engine/domain"
)

func TestRecommendTerm(t *testing.T) {
	history := &MockHistoryRepository{}
	service := NewTermRecommendationService(NewLoanService(nil, history))

	input := domain.TermRecommendationInput{
		Amount:            20000,
		InterestRate:      5,
		MinTermMonths:     36,
		MaxTermMonths:     72,
		MaxMonthlyPayment: 500,
		Preference:        domain.MinimizeInterest,
	}
	result, err := service.RecommendTerm(input)
	require.NoError(t, err)

	require.NotEmpty(t, result.Recommendations)
	assert.Equal(t, result.Recommendations[0].TermMonths, result.RecommendedTerm)
	for i, rec := range result.Recommendations {
		assert.LessOrEqual(t, rec.MonthlyPayment, 500.0)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Recommendations[i-1].Score, rec.Score)
		}
	}
	// Con 500 al mes el plazo más corto posible es 44 meses
	assert.Equal(t, 44, result.Recommendations[0].TermMonths)
	assert.Equal(t, 44, result.RecommendedTerm)
	require.Len(t, history.Saved, 1)
	assert.Equal(t, domain.KindTermRecommend, history.Saved[0].Kind)
}

func TestRecommendTerm_ShortestTermWinsWithoutPaymentPressure(t *testing.T) {
	service := NewTermRecommendationService(NewLoanService(nil, nil))

	result, err := service.RecommendTerm(domain.TermRecommendationInput{
		Amount:            20000,
		InterestRate:      5,
		MinTermMonths:     36,
		MaxTermMonths:     72,
		MaxMonthlyPayment: 1000,
		Preference:        domain.MinimizeInterest,
	})
	require.NoError(t, err)
	assert.Equal(t, 36, result.RecommendedTerm)
	assert.Len(t, result.Recommendations, 37)
}

func TestRecommendTerm_SingleTerm(t *testing.T) {
	service := NewTermRecommendationService(NewLoanService(nil, nil))

	result, err := service.RecommendTerm(domain.TermRecommendationInput{
		Amount:            20000,
		InterestRate:      5,
		MinTermMonths:     60,
		MaxTermMonths:     60,
		MaxMonthlyPayment: 400,
		Preference:        domain.Balanced,
	})
	require.NoError(t, err)
	assert.Equal(t, 60, result.RecommendedTerm)
	assert.Equal(t, 377.42, result.Recommendations[0].MonthlyPayment)
}

func TestRecommendTerm_Validation(t *testing.T) {
	service := NewTermRecommendationService(NewLoanService(nil, nil))
	valid := domain.TermRecommendationInput{
		Amount:            10000,
		InterestRate:      8,
		MinTermMonths:     12,
		MaxTermMonths:     48,
		MaxMonthlyPayment: 1000,
		Preference:        domain.Balanced,
	}

	tests := []struct {
		name   string
		mutate func(*domain.TermRecommendationInput)
	}{
		{"zero amount", func(in *domain.TermRecommendationInput) { in.Amount = 0 }},
		{"negative rate", func(in *domain.TermRecommendationInput) { in.InterestRate = -1 }},
		{"inverted range", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 60 }},
		{"range too wide", func(in *domain.TermRecommendationInput) { in.MinTermMonths = 1; in.MaxTermMonths = 200 }},
		{"unknown preference", func(in *domain.TermRecommendationInput) { in.Preference = "cheapest" }},
		{"no payment cap", func(in *domain.TermRecommendationInput) { in.MaxMonthlyPayment = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := service.RecommendTerm(input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestRecommendTerm_NoTermFits(t *testing.T) {
	service := NewTermRecommendationService(NewLoanService(nil, nil))

	_, err := service.RecommendTerm(domain.TermRecommendationInput{
		Amount:            20000,
		InterestRate:      5,
		MinTermMonths:     12,
		MaxTermMonths:     24,
		MaxMonthlyPayment: 100,
		Preference:        domain.Balanced,
	})
	assert.ErrorIs(t, err, domain.ErrNonConverging)
}
