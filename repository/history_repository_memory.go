package repository

import (
	"sync"

	"payoff-engine/domain"
)

const defaultHistoryCapacity = 1000

// HistoryRepositoryMemory keeps the most recent calculation records in memory.
type HistoryRepositoryMemory struct {
	mu       sync.Mutex
	data     []domain.CalculationRecord
	capacity int
}

// NewHistoryRepositoryMemory creates a history holding at most capacity
// records; older ones are dropped first.
func NewHistoryRepositoryMemory(capacity int) *HistoryRepositoryMemory {
	if capacity <= 0 {
		capacity = defaultHistoryCapacity
	}
	return &HistoryRepositoryMemory{
		data:     []domain.CalculationRecord{},
		capacity: capacity,
	}
}

// Save stores the record in memory.
func (r *HistoryRepositoryMemory) Save(record domain.CalculationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if len(r.data) > r.capacity {
		r.data = r.data[len(r.data)-r.capacity:]
	}
	return nil
}

func (r *HistoryRepositoryMemory) List(limit int) ([]domain.CalculationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
