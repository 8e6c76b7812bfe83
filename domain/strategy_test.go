package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("Snowball")
	require.NoError(t, err)
	assert.Equal(t, Snowball, s)

	s, err = ParseStrategy(" avalanche ")
	require.NoError(t, err)
	assert.Equal(t, Avalanche, s)

	_, err = ParseStrategy("compare")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStrategyJSON(t *testing.T) {
	raw, err := json.Marshal(DebtPayoffInput{Strategy: Snowball})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Strategy":"snowball"`)

	var in DebtPayoffInput
	require.NoError(t, json.Unmarshal([]byte(`{"strategy":"avalanche","extraPayment":100}`), &in))
	assert.Equal(t, Avalanche, in.Strategy)
	assert.Equal(t, 100.0, in.ExtraPayment)

	assert.Error(t, json.Unmarshal([]byte(`{"strategy":"fastest"}`), &in))
	_, err = json.Marshal(PayoffResult{Strategy: Strategy(9)})
	assert.Error(t, err)
}

func TestCalculationError(t *testing.T) {
	err := NonConverging("payment", "payment %.2f too low", 12.5)

	assert.True(t, IsNonConverging(err))
	assert.False(t, IsInvalidInput(err))
	assert.Equal(t, "payment plan does not converge: payment: payment 12.50 too low", err.Error())

	var calcErr *CalculationError
	require.ErrorAs(t, err, &calcErr)
	assert.Equal(t, "payment", calcErr.Field)

	noField := &CalculationError{Kind: ErrInvalidInput, Message: "bad"}
	assert.Equal(t, "invalid input: bad", noField.Error())
}
