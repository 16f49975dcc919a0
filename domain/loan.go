package domain

import "time"

type LoanInput struct {
	InterestRate float64 `json:"interest"`
	TermYears    float64 `json:"term"`
	PresentValue float64 `json:"present_value"`
}

// LoanResult holds the unrounded payment and the totals derived from it.
// Display rounding is left to the caller.
type LoanResult struct {
	MonthlyPayment   float64 `json:"monthly_payment"`
	NumberOfPayments float64 `json:"number_of_payments"`
	TotalPayment     float64 `json:"total_payment"`
	TotalInterest    float64 `json:"total_interest"`
}

// LoanRecord is one entry of the calculation log.
type LoanRecord struct {
	ID        string     `json:"id"`
	Input     LoanInput  `json:"input"`
	Result    LoanResult `json:"result"`
	CreatedAt time.Time  `json:"created_at"`
}
