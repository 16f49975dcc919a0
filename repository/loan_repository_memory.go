package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"loan-payment/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu   sync.RWMutex
	data []domain.LoanRecord
	now  func() time.Time
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: []domain.LoanRecord{},
		now:  time.Now,
	}
}

// Save appends the calculation to the log under a fresh ID.
func (r *LoanRepositoryMemory) Save(
	ctx context.Context,
	input domain.LoanInput,
	result domain.LoanResult,
) (domain.LoanRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.LoanRecord{}, err
	}

	record := domain.LoanRecord{
		ID:        uuid.NewString(),
		Input:     input,
		Result:    result,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	r.data = append(r.data, record)
	r.mu.Unlock()

	return record, nil
}

// List returns a copy of every saved record, oldest first.
func (r *LoanRepositoryMemory) List() []domain.LoanRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LoanRecord, len(r.data))
	copy(out, r.data)
	return out
}
