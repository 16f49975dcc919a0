package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"loan-payment/domain"
	"loan-payment/repository"
)

type LoanService struct {
	repo     repository.LoanRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *slog.Logger
}

// NewLoanService creates a new LoanService with the given repository and cache.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewLoanService(repo repository.LoanRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *LoanService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoanService{repo: repo, cache: cache, cacheTTL: cacheTTL, logger: logger}
}

// CalculateLoan computes the monthly payment and totals for input.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {

	payment, err := ComputePayment(input.InterestRate, input.TermYears, input.PresentValue)
	if err != nil {
		return domain.LoanResult{}, err
	}

	key := cacheKey(input)
	if result, ok := s.lookup(ctx, key); ok {
		s.logger.Debug("loan payment served from cache", "key", key)
		return result, nil
	}

	numberOfPayments := input.TermYears * MonthsPerYear
	total := payment * numberOfPayments

	result := domain.LoanResult{
		MonthlyPayment:   payment,
		NumberOfPayments: numberOfPayments,
		TotalPayment:     total,
		TotalInterest:    total - input.PresentValue,
	}

	s.store(ctx, key, result)

	// Not critical if the log write fails.
	if _, err := s.repo.Save(ctx, input, result); err != nil {
		s.logger.Warn("failed to save loan calculation", "error", err)
	}

	return result, nil
}

func (s *LoanService) lookup(ctx context.Context, key string) (domain.LoanResult, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, repository.ErrCacheMiss) {
			s.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return domain.LoanResult{}, false
	}

	var result domain.LoanResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("discarding undecodable cache entry", "key", key, "error", err)
		return domain.LoanResult{}, false
	}
	return result, true
}

func (s *LoanService) store(ctx context.Context, key string, result domain.LoanResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode loan result", "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed", "key", key, "error", err)
	}
}

func cacheKey(input domain.LoanInput) string {
	return fmt.Sprintf("%s:%g:%g:%g", cacheKeyPrefix, input.InterestRate, input.TermYears, input.PresentValue)
}
