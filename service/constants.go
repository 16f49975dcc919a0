package service

import "time"

const (
	MonthsPerYear = 12
	percent       = 100.0

	DefaultCacheTTL = 10 * time.Minute
	cacheKeyPrefix  = "loan:payment"
)
