package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payoff-engine/domain"
	"payoff-engine/repository"
)

type MockHistoryRepository struct {
	Saved      []domain.CalculationRecord
	ForceError bool
}

func (m *MockHistoryRepository) Save(record domain.CalculationRecord) error {
	if m.ForceError {
		return errors.New("save error")
	}
	m.Saved = append(m.Saved, record)
	return nil
}

func (m *MockHistoryRepository) List(limit int) ([]domain.CalculationRecord, error) {
	return m.Saved, nil
}

type failingCache struct{}

func (failingCache) Get(string) (string, bool) { return "", false }
func (failingCache) Set(string, string) error { return errors.New("cache down") }

func TestCalculateLoan_WithInterest(t *testing.T) {
	history := &MockHistoryRepository{}
	service := NewLoanService(repository.NewMemoryCache(), history)

	result, err := service.CalculateLoan(baselineLoan())
	require.NoError(t, err)

	assert.Equal(t, 377.42, result.MonthlyPayment)
	assert.Equal(t, 22645.48, result.TotalPayment)
	assert.Equal(t, 2645.48, result.TotalInterest)

	require.Len(t, history.Saved, 1)
	assert.Equal(t, domain.KindLoanPayment, history.Saved[0].Kind)
	assert.NotEmpty(t, history.Saved[0].ID)
}

func TestCalculateLoan_ZeroInterest(t *testing.T) {
	service := NewLoanService(nil, nil)

	result, err := service.CalculateLoan(domain.LoanTerms{Principal: 1200, TermMonths: 12})
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.MonthlyPayment)
	assert.Equal(t, 0.0, result.TotalInterest)
}

func TestCalculateLoan_InvalidTermNotRecorded(t *testing.T) {
	history := &MockHistoryRepository{}
	service := NewLoanService(nil, history)

	_, err := service.CalculateLoan(domain.LoanTerms{Principal: 1000, AnnualInterestRate: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, history.Saved, "failed calculations are not recorded")
}

func TestCalculateLoan_Limits(t *testing.T) {
	service := NewLoanService(nil, nil)

	_, err := service.CalculateLoan(domain.LoanTerms{Principal: MaxLoanAmount + 1, AnnualInterestRate: 5, TermMonths: 12})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.Amortization(domain.LoanTerms{Principal: 1000, AnnualInterestRate: MaxInterestRate + 1, TermMonths: 12})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = service.RemainingBalance(domain.RemainingBalanceInput{
		Loan: domain.LoanTerms{Principal: 1000, AnnualInterestRate: 5, TermMonths: MaxTermMonths + 1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAmortization_UsesCache(t *testing.T) {
	cache := repository.NewMemoryCache()
	history := &MockHistoryRepository{}
	service := NewLoanService(cache, history)

	first, err := service.Amortization(baselineLoan())
	require.NoError(t, err)
	assert.Len(t, cache.Data, 1)

	second, err := service.Amortization(baselineLoan())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, cache.Data, 1)
	assert.Len(t, history.Saved, 2)

	other := baselineLoan()
	other.ExtraPayment = 50
	_, err = service.Amortization(other)
	require.NoError(t, err)
	assert.Len(t, cache.Data, 2)
}

func TestAmortization_CorruptCacheEntryIsRecomputed(t *testing.T) {
	cache := repository.NewMemoryCache()
	key, err := cacheKey(domain.KindAmortization, baselineLoan())
	require.NoError(t, err)
	cache.Data[key] = "{not json"

	service := NewLoanService(cache, nil)
	result, err := service.Amortization(baselineLoan())
	require.NoError(t, err)
	assert.Equal(t, 60, result.TotalMonths)
	assert.NotEqual(t, "{not json", cache.Data[key])
}

func TestAmortization_CacheAndHistoryFailuresAreNotFatal(t *testing.T) {
	service := NewLoanService(failingCache{}, &MockHistoryRepository{ForceError: true})

	result, err := service.Amortization(baselineLoan())
	require.NoError(t, err)
	assert.Equal(t, 2645.48, result.TotalInterestPaid)
}

func TestRemainingBalance(t *testing.T) {
	history := &MockHistoryRepository{}
	service := NewLoanService(nil, history)

	schedule, err := CalculateLoanAmortization(baselineLoan())
	require.NoError(t, err)

	result, err := service.RemainingBalance(domain.RemainingBalanceInput{Loan: baselineLoan(), MonthsElapsed: 24})
	require.NoError(t, err)
	assert.Equal(t, 24, result.MonthsElapsed)
	assert.Equal(t, schedule.Schedule[23].EndingBalance, result.Balance)

	records, err := service.History(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.KindRemainingBalance, records[0].Kind)
}

func TestHistory_WithoutRepository(t *testing.T) {
	records, err := NewLoanService(nil, nil).History(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
