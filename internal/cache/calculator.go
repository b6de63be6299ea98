package cache

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-calc/internal/loan"
	"github.com/iwvelando/mortgage-calc/internal/schedule"
)

// Calculator is the engine contract the memoizer wraps.
type Calculator interface {
	Calculate(input *loan.Input) (*schedule.CalculationResult, error)
}

// CachedCalculator memoizes calculation results keyed by the input hash.
// Cache failures are never fatal; the wrapped calculator is the source of
// truth and always answers.
type CachedCalculator struct {
	calc   Calculator
	store  Store
	logger *zap.Logger
}

// NewCachedCalculator wraps calc with the given store.
func NewCachedCalculator(calc Calculator, store Store, logger *zap.Logger) *CachedCalculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCalculator{calc: calc, store: store, logger: logger}
}

// Calculate returns the memoized result when available, otherwise
// delegates and stores the outcome.
func (c *CachedCalculator) Calculate(input *loan.Input) (*schedule.CalculationResult, error) {
	key, err := Key(input)
	if err != nil {
		c.logger.Warn("failed to derive cache key, bypassing cache",
			zap.String("op", "cache.Calculate"),
			zap.Error(err),
		)
		return c.calc.Calculate(input)
	}

	if raw, ok := c.store.Get(key); ok {
		var result schedule.CalculationResult
		if err := json.Unmarshal([]byte(raw), &result); err == nil {
			c.logger.Debug("cache hit",
				zap.String("op", "cache.Calculate"),
				zap.String("key", key),
			)
			return &result, nil
		}
		c.logger.Warn("discarding undecodable cache entry",
			zap.String("op", "cache.Calculate"),
			zap.String("key", key),
		)
	}

	result, err := c.calc.Calculate(input)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.store.Set(key, string(raw)); err != nil {
			c.logger.Warn("failed to store cache entry",
				zap.String("op", "cache.Calculate"),
				zap.Error(err),
			)
		}
	}
	return result, nil
}
