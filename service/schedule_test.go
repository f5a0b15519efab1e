package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-budget/domain"
)

func TestGenerateSchedule_DefaultTerms(t *testing.T) {
	schedule, err := DefaultSchedule(dec("1140.00"))
	require.NoError(t, err)

	assert.Equal(t, 5, schedule.AmortizationWindow)
	assertDecimal(t, "2000", schedule.ContractFee)

	for i, e := range schedule.Entries {
		assert.Equal(t, i+1, e.Month)
		assertDecimal(t, "1140", e.RentPortion)
		assertDecimal(t, e.RentPortion.Add(e.ContractPortion).String(), e.TotalPortion)
		if e.Month <= 5 {
			assertDecimal(t, "400", e.ContractPortion)
		} else {
			assert.True(t, e.ContractPortion.IsZero(), "month %d", e.Month)
		}
	}

	first, ok := schedule.Entry(1)
	require.True(t, ok)
	assertDecimal(t, "1540.00", first.TotalPortion)

	sixth, ok := schedule.Entry(6)
	require.True(t, ok)
	assertDecimal(t, "1140.00", sixth.TotalPortion)

	_, ok = schedule.Entry(13)
	assert.False(t, ok)
}

func TestGenerateSchedule_InstallmentsSumToFee(t *testing.T) {
	tolerance := dec("0.01")
	fees := []string{"2000", "1000", "999.99", "0"}

	for _, fee := range fees {
		for window := 1; window <= domain.MonthsPerSchedule; window++ {
			schedule, err := GenerateSchedule(dec("900"), dec(fee), window)
			require.NoError(t, err)

			sum := decimal.Zero
			for _, e := range schedule.Entries {
				if e.Month > window {
					assert.True(t, e.ContractPortion.IsZero())
				}
				sum = sum.Add(e.ContractPortion)
			}
			assert.Truef(t, sum.Sub(dec(fee)).Abs().LessThan(tolerance),
				"fee %s window %d summed to %s", fee, window, sum)
		}
	}
}

func TestGenerateSchedule_Idempotent(t *testing.T) {
	a, err := GenerateSchedule(dec("1570"), DefaultContractFee, DefaultAmortizationWindow)
	require.NoError(t, err)
	b, err := GenerateSchedule(dec("1570"), DefaultContractFee, DefaultAmortizationWindow)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, SerializeSchedule(a), SerializeSchedule(b))
}

func TestGenerateSchedule_RejectsInvalidTerms(t *testing.T) {
	tests := []struct {
		name   string
		rent   string
		fee    string
		window int
	}{
		{"zero window", "700", "2000", 0},
		{"negative window", "700", "2000", -5},
		{"window longer than schedule", "700", "2000", 13},
		{"negative fee", "700", "-1", 5},
		{"negative rent", "-700", "2000", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSchedule(dec(tt.rent), dec(tt.fee), tt.window)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration))
			assert.False(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestValidateContractTerms_Defaults(t *testing.T) {
	assert.NoError(t, ValidateContractTerms(DefaultContractTerms()))
	assertDecimal(t, "400", DefaultContractTerms().Installment())
}

func TestSerializeSchedule_Format(t *testing.T) {
	schedule, err := DefaultSchedule(dec("1140"))
	require.NoError(t, err)

	text := SerializeSchedule(schedule)
	assert.True(t, strings.HasSuffix(text, "\r\n"))

	lines := strings.Split(strings.TrimSuffix(text, "\r\n"), "\r\n")
	require.Len(t, lines, 13)

	assert.Equal(t, "Month;Rent Portion;Contract Portion;Total Portion", lines[0])
	assert.Equal(t, "1;1140.00;400.00;1540.00", lines[1])
	assert.Equal(t, "5;1140.00;400.00;1540.00", lines[5])
	assert.Equal(t, "6;1140.00;0.00;1140.00", lines[6])
	assert.Equal(t, "12;1140.00;0.00;1140.00", lines[12])
}

func TestSerializeSchedule_RoundsToTwoDecimals(t *testing.T) {
	schedule, err := GenerateSchedule(dec("665"), dec("2000"), 3)
	require.NoError(t, err)

	lines := strings.Split(SerializeSchedule(schedule), "\r\n")
	assert.Equal(t, "1;665.00;666.67;1331.67", lines[1])
	assert.Equal(t, "4;665.00;0.00;665.00", lines[4])
}

func TestParseSchedule_RoundTrip(t *testing.T) {
	schedule, err := DefaultSchedule(dec("1570"))
	require.NoError(t, err)

	entries, err := ParseSchedule(strings.NewReader(SerializeSchedule(schedule)))
	require.NoError(t, err)
	require.Len(t, entries, domain.MonthsPerSchedule)

	for i, got := range entries {
		want := schedule.Entries[i]
		assert.Equal(t, want.Month, got.Month)
		assertDecimal(t, want.RentPortion.StringFixed(2), got.RentPortion)
		assertDecimal(t, want.ContractPortion.StringFixed(2), got.ContractPortion)
		assertDecimal(t, want.TotalPortion.StringFixed(2), got.TotalPortion)
	}
}

func TestParseSchedule_Errors(t *testing.T) {
	schedule, err := DefaultSchedule(dec("900"))
	require.NoError(t, err)
	valid := SerializeSchedule(schedule)
	rows := strings.SplitAfter(valid, "\r\n")

	tests := map[string]string{
		"header only":     rows[0],
		"eleven months":   strings.Join(rows[:12], ""),
		"thirteen months": valid + "13;900.00;0.00;900.00\r\n",
		"swapped months":  rows[0] + rows[2] + rows[1] + strings.Join(rows[3:], ""),
		"empty":           "",
		"wrong header":    "Mes;Aluguel;Contrato;Total\n",
		"missing column":  "Month;Rent Portion;Contract Portion;Total Portion\n1;700.00;400.00\n",
		"bad month":       "Month;Rent Portion;Contract Portion;Total Portion\nx;700.00;400.00;1100.00\n",
		"bad amount":      "Month;Rent Portion;Contract Portion;Total Portion\n1;seven;400.00;1100.00\n",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSchedule(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
