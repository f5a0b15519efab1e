package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"rental-budget/domain"
)

const scheduleDelimiter = ';'

var scheduleHeader = []string{"Month", "Rent Portion", "Contract Portion", "Total Portion"}

// ContractTerms describes how the one-time contract fee is spread.
type ContractTerms struct {
	Fee                decimal.Decimal `json:"fee"`
	AmortizationWindow int             `json:"amortization_window"`
}

func DefaultContractTerms() ContractTerms {
	return ContractTerms{Fee: DefaultContractFee, AmortizationWindow: DefaultAmortizationWindow}
}

// Installment is the contract portion charged in each month of the window.
func (t ContractTerms) Installment() decimal.Decimal {
	return t.Fee.Div(decimal.NewFromInt(int64(t.AmortizationWindow)))
}

// ValidateContractTerms rejects terms that would divide by zero or fall
// outside the schedule. Call it once at startup.
func ValidateContractTerms(terms ContractTerms) error {
	if terms.AmortizationWindow <= 0 {
		return &ConfigurationError{Setting: "amortization window", Reason: "must be at least 1 month"}
	}
	if terms.AmortizationWindow > domain.MonthsPerSchedule {
		return &ConfigurationError{
			Setting: "amortization window",
			Reason:  fmt.Sprintf("must not exceed %d months", domain.MonthsPerSchedule),
		}
	}
	if terms.Fee.IsNegative() {
		return &ConfigurationError{Setting: "contract fee", Reason: "must not be negative"}
	}
	return nil
}

// GenerateSchedule builds the 12-month payment table. The rent is the same
// every month; the contract fee is split evenly over the first
// amortizationWindow months.
func GenerateSchedule(
	monthlyRent decimal.Decimal,
	contractFee decimal.Decimal,
	amortizationWindow int,
) (domain.Schedule, error) {

	terms := ContractTerms{Fee: contractFee, AmortizationWindow: amortizationWindow}
	if err := ValidateContractTerms(terms); err != nil {
		return domain.Schedule{}, err
	}
	if monthlyRent.IsNegative() {
		return domain.Schedule{}, &ConfigurationError{Setting: "monthly rent", Reason: "must not be negative"}
	}

	installment := terms.Installment()
	schedule := domain.Schedule{
		ContractFee:        contractFee,
		AmortizationWindow: amortizationWindow,
	}
	for month := 1; month <= domain.MonthsPerSchedule; month++ {
		contract := decimal.Zero
		if month <= amortizationWindow {
			contract = installment
		}
		schedule.Entries[month-1] = domain.ScheduleEntry{
			Month:           month,
			RentPortion:     monthlyRent,
			ContractPortion: contract,
			TotalPortion:    monthlyRent.Add(contract),
		}
	}
	return schedule, nil
}

// DefaultSchedule uses the standard 2000.00 fee over 5 months.
func DefaultSchedule(monthlyRent decimal.Decimal) (domain.Schedule, error) {
	terms := DefaultContractTerms()
	return GenerateSchedule(monthlyRent, terms.Fee, terms.AmortizationWindow)
}

// WriteSchedule writes the schedule as a semicolon separated table, one
// row per month, amounts with exactly two decimals. Rows end in CRLF so
// spreadsheet imports read them the same on every platform.
func WriteSchedule(w io.Writer, schedule domain.Schedule) error {
	cw := csv.NewWriter(w)
	cw.Comma = scheduleDelimiter
	cw.UseCRLF = true

	if err := cw.Write(scheduleHeader); err != nil {
		return fmt.Errorf("write schedule header: %w", err)
	}
	for _, e := range schedule.Entries {
		row := []string{
			strconv.Itoa(e.Month),
			e.RentPortion.StringFixed(2),
			e.ContractPortion.StringFixed(2),
			e.TotalPortion.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write schedule month %d: %w", e.Month, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SerializeSchedule returns the table produced by WriteSchedule.
func SerializeSchedule(schedule domain.Schedule) string {
	var sb strings.Builder
	// strings.Builder never returns a write error
	_ = WriteSchedule(&sb, schedule)
	return sb.String()
}

// ParseSchedule reads back a table produced by WriteSchedule. The table
// must hold exactly one row per month, months in ascending order.
func ParseSchedule(r io.Reader) ([]domain.ScheduleEntry, error) {
	cr := csv.NewReader(r)
	cr.Comma = scheduleDelimiter
	cr.FieldsPerRecord = len(scheduleHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read schedule header: %w", err)
	}
	for i, name := range scheduleHeader {
		if header[i] != name {
			return nil, fmt.Errorf("unexpected schedule column %q, want %q", header[i], name)
		}
	}

	var entries []domain.ScheduleEntry
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read schedule row: %w", err)
		}
		entry, err := parseScheduleRow(record)
		if err != nil {
			return nil, err
		}
		if want := len(entries) + 1; entry.Month != want {
			return nil, fmt.Errorf("schedule row %d has month %d, want %d", want, entry.Month, want)
		}
		entries = append(entries, entry)
	}
	if len(entries) != domain.MonthsPerSchedule {
		return nil, fmt.Errorf("schedule has %d rows, want %d", len(entries), domain.MonthsPerSchedule)
	}
	return entries, nil
}

func parseScheduleRow(record []string) (domain.ScheduleEntry, error) {
	month, err := strconv.Atoi(record[0])
	if err != nil {
		return domain.ScheduleEntry{}, fmt.Errorf("parse month %q: %w", record[0], err)
	}

	amounts := make([]decimal.Decimal, 3)
	for i, field := range record[1:] {
		amounts[i], err = decimal.NewFromString(field)
		if err != nil {
			return domain.ScheduleEntry{}, fmt.Errorf("parse %s of month %d: %w", scheduleHeader[i+1], month, err)
		}
	}

	return domain.ScheduleEntry{
		Month:           month,
		RentPortion:     amounts[0],
		ContractPortion: amounts[1],
		TotalPortion:    amounts[2],
	}, nil
}
