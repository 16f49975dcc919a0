package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputePayment_ZeroInterest(t *testing.T) {
	payment, err := ComputePayment(0, 1, 12000)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, payment)

	payment, err = ComputePayment(0, 2.5, 9000)
	require.NoError(t, err)
	assert.InDelta(t, 9000.0/30, payment, 1e-9)
}

func TestComputePayment_ThirtyYearMortgage(t *testing.T) {
	payment, err := ComputePayment(5, 30, 200000)
	require.NoError(t, err)
	assert.InDelta(t, 1073.64, payment, 0.01)
}

func TestComputePayment_FractionalInputs(t *testing.T) {
	payment, err := ComputePayment(3.75, 2.5, 15000.5)
	require.NoError(t, err)
	assert.Greater(t, payment, 15000.5/30)
	assert.Less(t, payment, 15000.5)
}

func TestComputePayment_TinyRateTakesAnnuityBranch(t *testing.T) {
	payment, err := ComputePayment(1e-6, 10, 12000)
	require.NoError(t, err)
	assert.NotEqual(t, 100.0, payment)
	assert.InDelta(t, 100.0, payment, 1e-3)

	payment, err = ComputePayment(1e-3, 10, 12000)
	require.NoError(t, err)
	assert.Greater(t, payment, 100.0)
	assert.InDelta(t, 100.0, payment, 0.01)
}

func TestComputePayment_NonFiniteResult(t *testing.T) {
	tests := []struct {
		name         string
		interest     float64
		term         float64
		presentValue float64
	}{
		{name: "growth overflows", interest: 1000, term: 1000, presentValue: 1000},
		{name: "rate rounds away", interest: 1e-14, term: 10, presentValue: 1000},
		{name: "straight-line overflow", interest: 0, term: 1e-310, presentValue: 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := ComputePayment(tt.interest, tt.term, tt.presentValue)
			require.Error(t, err)
			assert.Zero(t, payment)
			assert.ErrorIs(t, err, ErrNonFinitePayment)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, NonFinitePayment, verr.Kind)
		})
	}
}

func TestComputePayment_Validation(t *testing.T) {
	tests := []struct {
		name         string
		interest     float64
		term         float64
		presentValue float64
		wantErr      error
		wantKind     ErrorKind
		wantMsg      string
	}{
		{
			name:         "negative interest",
			interest:     -1,
			term:         10,
			presentValue: 1000,
			wantErr:      ErrNegativeInterest,
			wantKind:     NegativeInterest,
			wantMsg:      "interest rate cannot be negative",
		},
		{
			name:         "zero term",
			interest:     5,
			term:         0,
			presentValue: 1000,
			wantErr:      ErrNonPositiveTerm,
			wantKind:     NonPositiveTerm,
			wantMsg:      "loan term must be greater than zero",
		},
		{
			name:         "negative term",
			interest:     5,
			term:         -5,
			presentValue: 1000,
			wantErr:      ErrNonPositiveTerm,
			wantKind:     NonPositiveTerm,
			wantMsg:      "loan term must be greater than zero",
		},
		{
			name:         "zero present value",
			interest:     5,
			term:         10,
			presentValue: 0,
			wantErr:      ErrNonPositivePrincipal,
			wantKind:     NonPositivePrincipal,
			wantMsg:      "present value must be greater than zero",
		},
		{
			name:         "negative present value",
			interest:     5,
			term:         10,
			presentValue: -100,
			wantErr:      ErrNonPositivePrincipal,
			wantKind:     NonPositivePrincipal,
			wantMsg:      "present value must be greater than zero",
		},
		{
			name:         "first violation wins",
			interest:     -1,
			term:         0,
			presentValue: 0,
			wantErr:      ErrNegativeInterest,
			wantKind:     NegativeInterest,
			wantMsg:      "interest rate cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := ComputePayment(tt.interest, tt.term, tt.presentValue)
			require.Error(t, err)
			assert.Zero(t, payment)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantMsg)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantKind, verr.Kind)
		})
	}
}

func TestComputePayment_IncreasesWithInterest(t *testing.T) {
	prev, err := ComputePayment(0.5, 15, 100000)
	require.NoError(t, err)

	for _, rate := range []float64{1, 2.25, 5, 8, 12.5, 25} {
		payment, err := ComputePayment(rate, 15, 100000)
		require.NoError(t, err)
		assert.Greater(t, payment, prev, "rate %.2f", rate)
		prev = payment
	}
}

func TestComputePayment_DecreasesWithTerm(t *testing.T) {
	prev, err := ComputePayment(6, 1, 100000)
	require.NoError(t, err)

	for _, term := range []float64{1.5, 5, 10, 20, 30, 40} {
		payment, err := ComputePayment(6, term, 100000)
		require.NoError(t, err)
		assert.Less(t, payment, prev, "term %.1f", term)
		prev = payment
	}
}

func TestComputePayment_ScalesWithPrincipal(t *testing.T) {
	base, err := ComputePayment(4.5, 20, 150000)
	require.NoError(t, err)

	doubled, err := ComputePayment(4.5, 20, 300000)
	require.NoError(t, err)

	assert.InDelta(t, 2*base, doubled, 1e-9)
}
