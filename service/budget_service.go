package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"rental-budget/domain"
	"rental-budget/repository"
)

type BudgetService struct {
	repo   repository.BudgetRepository
	cache  repository.CacheRepository
	terms  ContractTerms
	now    func() time.Time
	logger *slog.Logger
}

// NewBudgetService creates a BudgetService. Invalid contract terms are a
// deployment defect and are reported here rather than on every request.
func NewBudgetService(
	repo repository.BudgetRepository,
	cache repository.CacheRepository,
	terms ContractTerms,
) (*BudgetService, error) {
	if err := ValidateContractTerms(terms); err != nil {
		return nil, err
	}
	return &BudgetService{
		repo:   repo,
		cache:  cache,
		terms:  terms,
		now:    time.Now,
		logger: slog.Default(),
	}, nil
}

func (s *BudgetService) Terms() ContractTerms {
	return s.terms
}

// Calculate prices the requested property and builds its schedule. On
// error nothing is stored and the previous latest budget is kept.
func (s *BudgetService) Calculate(
	ctx context.Context,
	req domain.BudgetRequest,
) (domain.BudgetResult, error) {

	category, err := BuildCategory(req)
	if err != nil {
		return domain.BudgetResult{}, err
	}

	pricing, err := s.price(ctx, category)
	if err != nil {
		return domain.BudgetResult{}, err
	}

	schedule, err := GenerateSchedule(pricing.MonthlyRent, s.terms.Fee, s.terms.AmortizationWindow)
	if err != nil {
		return domain.BudgetResult{}, fmt.Errorf("generate schedule: %w", err)
	}
	first, _ := schedule.Entry(1)

	result := domain.BudgetResult{
		ID:              uuid.New(),
		CreatedAt:       s.now().UTC(),
		Pricing:         pricing,
		Schedule:        schedule,
		FirstMonthTotal: first.TotalPortion,
	}

	// saving is not critical; the caller still gets the result
	if err := s.repo.Save(result); err != nil {
		s.logger.Warn("failed to save budget", "id", result.ID, "error", err)
	}

	s.logger.Info("budget calculated",
		"id", result.ID,
		"kind", pricing.Kind,
		"monthly_rent", pricing.MonthlyRent.StringFixed(2),
	)
	return result, nil
}

func (s *BudgetService) Get(id uuid.UUID) (domain.BudgetResult, error) {
	result, ok := s.repo.FindByID(id)
	if !ok {
		return domain.BudgetResult{}, ErrBudgetNotFound
	}
	return result, nil
}

func (s *BudgetService) Latest() (domain.BudgetResult, error) {
	result, ok := s.repo.Latest()
	if !ok {
		return domain.BudgetResult{}, ErrBudgetNotFound
	}
	return result, nil
}

// price consults the cache before running the rule engine. Cache problems
// only cost a recomputation.
func (s *BudgetService) price(
	ctx context.Context,
	category domain.PropertyCategory,
) (domain.PricingResult, error) {

	key, err := pricingCacheKey(category)
	if err != nil {
		return domain.PricingResult{}, err
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var pricing domain.PricingResult
		if err := json.Unmarshal([]byte(cached), &pricing); err != nil {
			s.logger.Warn("discarding unreadable cached pricing", "key", key, "error", err)
		} else if !consistentPricing(pricing, category) {
			s.logger.Warn("discarding inconsistent cached pricing", "key", key, "kind", pricing.Kind)
		} else {
			return pricing, nil
		}
	}

	pricing, err := ComputeMonthlyRent(category)
	if err != nil {
		return domain.PricingResult{}, err
	}

	if payload, err := json.Marshal(pricing); err == nil {
		if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			s.logger.Warn("failed to cache pricing", "key", key, "error", err)
		}
	}
	return pricing, nil
}

// consistentPricing checks a cached result against the category it was
// looked up for and against MonthlyRent = BasePrice + Surcharge - Discount.
func consistentPricing(pricing domain.PricingResult, category domain.PropertyCategory) bool {
	if pricing.Kind != category.Kind() || pricing.MonthlyRent.IsNegative() {
		return false
	}
	expected := pricing.BasePrice.Add(pricing.Surcharge).Sub(pricing.Discount)
	return pricing.MonthlyRent.Equal(roundToCents(expected))
}

func pricingCacheKey(category domain.PropertyCategory) (string, error) {
	switch c := category.(type) {
	case domain.Apartment:
		return fmt.Sprintf("pricing:%s:%d:%t:%t", c.Kind(), c.Bedrooms, c.HasParking, c.NoChildren), nil
	case domain.House:
		return fmt.Sprintf("pricing:%s:%d:%t", c.Kind(), c.Bedrooms, c.HasParking), nil
	case domain.Studio:
		return fmt.Sprintf("pricing:%s:%d", c.Kind(), c.ParkingSpots), nil
	default:
		// let the rule engine produce the error
		_, err := ComputeMonthlyRent(category)
		return "", err
	}
}
