package repository

import (
	"github.com/google/uuid"

	"rental-budget/domain"
)

type BudgetRepository interface {
	Save(result domain.BudgetResult) error
	FindByID(id uuid.UUID) (domain.BudgetResult, bool)
	// Latest returns the most recently saved budget.
	Latest() (domain.BudgetResult, bool)
}
