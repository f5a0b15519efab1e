package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthsPerSchedule is the length of every payment schedule.
const MonthsPerSchedule = 12

type PricingResult struct {
	Kind        PropertyKind    `json:"kind"`
	BasePrice   decimal.Decimal `json:"base_price"`
	Surcharge   decimal.Decimal `json:"surcharge"`
	Discount    decimal.Decimal `json:"discount"`
	MonthlyRent decimal.Decimal `json:"monthly_rent"`
}

type ScheduleEntry struct {
	Month           int             `json:"month"`
	RentPortion     decimal.Decimal `json:"rent_portion"`
	ContractPortion decimal.Decimal `json:"contract_portion"`
	TotalPortion    decimal.Decimal `json:"total_portion"`
}

// Schedule is a value type; copies never share entries.
type Schedule struct {
	ContractFee        decimal.Decimal                  `json:"contract_fee"`
	AmortizationWindow int                              `json:"amortization_window"`
	Entries            [MonthsPerSchedule]ScheduleEntry `json:"entries"`
}

// Entry returns the entry for month (1-based).
func (s Schedule) Entry(month int) (ScheduleEntry, bool) {
	if month < 1 || month > MonthsPerSchedule {
		return ScheduleEntry{}, false
	}
	return s.Entries[month-1], true
}

// BudgetRequest is what the form collects.
type BudgetRequest struct {
	Category     string `json:"category"`
	Bedrooms     int    `json:"bedrooms"`
	Parking      bool   `json:"parking"`
	NoChildren   bool   `json:"no_children"`
	ParkingSpots int    `json:"parking_spots"`
}

type BudgetResult struct {
	ID              uuid.UUID       `json:"id"`
	CreatedAt       time.Time       `json:"created_at"`
	Pricing         PricingResult   `json:"pricing"`
	Schedule        Schedule        `json:"schedule"`
	FirstMonthTotal decimal.Decimal `json:"first_month_total"`
}
