package repository

import (
	"context"

	"loan-payment/domain"
)

type LoanRepository interface {
	Save(ctx context.Context, input domain.LoanInput, result domain.LoanResult) (domain.LoanRecord, error)
}
