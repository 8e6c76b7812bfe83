package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"payoff-engine/domain"
	"payoff-engine/repository"
)

// calculator holds what every service shares: the result cache and the
// calculation history. Both are optional.
type calculator struct {
	cache   repository.CacheRepository
	history repository.HistoryRepository
	now     func() time.Time
}

func newCalculator(cache repository.CacheRepository, history repository.HistoryRepository) calculator {
	return calculator{cache: cache, history: history, now: time.Now}
}

// cacheKey hashes the JSON form of input; equal inputs share an entry.
func cacheKey(kind domain.CalculationKind, input any) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%016x", kind, xxhash.Sum64(raw)), nil
}

// cached returns the stored result for input or computes and stores it.
// Cache failures are logged and never fail the calculation.
func cached[T any](c calculator, kind domain.CalculationKind, input any, compute func() (T, error)) (T, error) {
	var key string
	if c.cache != nil {
		k, err := cacheKey(kind, input)
		if err != nil {
			log.Printf("Warning: failed to build cache key for %s: %v", kind, err)
		}
		key = k
	}

	if key != "" {
		if raw, ok := c.cache.Get(key); ok {
			var result T
			err := json.Unmarshal([]byte(raw), &result)
			if err == nil {
				return result, nil
			}
			log.Printf("Warning: discarding corrupt cache entry %s: %v", key, err)
		}
	}

	result, err := compute()
	if err != nil {
		return result, err
	}

	if key != "" {
		raw, err := json.Marshal(result)
		if err != nil {
			log.Printf("Warning: failed to encode %s result: %v", kind, err)
		} else if err := c.cache.Set(key, string(raw)); err != nil {
			log.Printf("Warning: failed to cache %s result: %v", kind, err)
		}
	}
	return result, nil
}

// record saves a history entry for a served calculation (no crítico si falla).
func (c calculator) record(kind domain.CalculationKind, months int, interest float64) {
	if c.history == nil {
		return
	}
	rec := domain.CalculationRecord{
		ID:            uuid.NewString(),
		Kind:          kind,
		CreatedAt:     c.now().UTC(),
		TotalMonths:   months,
		TotalInterest: interest,
	}
	if err := c.history.Save(rec); err != nil {
		log.Printf("Warning: failed to save %s calculation: %v", kind, err)
	}
}

// History returns the most recent calculation records.
func (c calculator) History(limit int) ([]domain.CalculationRecord, error) {
	if c.history == nil {
		return []domain.CalculationRecord{}, nil
	}
	return c.history.List(limit)
}
