package repository

import "payoff-engine/domain"

type HistoryRepository interface {
	Save(record domain.CalculationRecord) error
	// List returns up to limit records, newest first.
	List(limit int) ([]domain.CalculationRecord, error)
}
