package service

import "math"

// ComputePayment returns the monthly payment that fully amortizes
// presentValue over term years at an annual nominal rate of interest
// percent, compounded monthly.
//
// The result is not rounded. A rate of exactly zero divides the principal
// evenly across the payments; any other rate, however small, uses the
// annuity formula. Inputs whose payment overflows or is undefined in
// float64 fail with ErrNonFinitePayment.
func ComputePayment(interest, term, presentValue float64) (float64, error) {
	if err := validate(interest, term, presentValue); err != nil {
		return 0, err
	}

	monthlyRate := (interest / percent) / MonthsPerYear
	numberOfPayments := term * MonthsPerYear

	var payment float64
	if monthlyRate == 0 {
		payment = presentValue / numberOfPayments
	} else {
		growth := math.Pow(1+monthlyRate, numberOfPayments)
		payment = presentValue * (monthlyRate * growth) / (growth - 1)
	}

	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return 0, newValidationError(NonFinitePayment, "payment", payment, ErrNonFinitePayment)
	}
	return payment, nil
}

func validate(interest, term, presentValue float64) error {
	if interest < 0 {
		return newValidationError(NegativeInterest, "interest", interest, ErrNegativeInterest)
	}
	if term <= 0 {
		return newValidationError(NonPositiveTerm, "term", term, ErrNonPositiveTerm)
	}
	if presentValue <= 0 {
		return newValidationError(NonPositivePrincipal, "present_value", presentValue, ErrNonPositivePrincipal)
	}
	return nil
}
