package repository

import (
	"sync"

	"github.com/google/uuid"

	"rental-budget/domain"
)

// BudgetRepositoryMemory is an in-memory implementation of BudgetRepository.
// Results are stored by value, so readers never observe a partially
// written budget.
type BudgetRepositoryMemory struct {
	mu     sync.RWMutex
	data   map[uuid.UUID]domain.BudgetResult
	latest uuid.UUID
}

// NewBudgetRepositoryMemory creates a new in-memory budget repository.
func NewBudgetRepositoryMemory() *BudgetRepositoryMemory {
	return &BudgetRepositoryMemory{
		data: make(map[uuid.UUID]domain.BudgetResult),
	}
}

// Save stores the budget and makes it the latest one.
func (r *BudgetRepositoryMemory) Save(result domain.BudgetResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[result.ID] = result
	r.latest = result.ID
	return nil
}

func (r *BudgetRepositoryMemory) FindByID(id uuid.UUID) (domain.BudgetResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.data[id]
	return result, ok
}

func (r *BudgetRepositoryMemory) Latest() (domain.BudgetResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.latest == uuid.Nil {
		return domain.BudgetResult{}, false
	}
	result, ok := r.data[r.latest]
	return result, ok
}
