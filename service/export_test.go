package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestScheduleWorkbook(t *testing.T) {
	schedule, err := DefaultSchedule(dec("1140"))
	require.NoError(t, err)

	f, err := ScheduleWorkbook(schedule)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{ScheduleSheetName}, f.GetSheetList())

	rows, err := f.GetRows(ScheduleSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 13)
	assert.Equal(t, []string{"Month", "Rent Portion", "Contract Portion", "Total Portion"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "12", rows[12][0])

	raw := excelize.Options{RawCellValue: true}
	first, err := f.GetCellValue(ScheduleSheetName, "D2", raw)
	require.NoError(t, err)
	assertDecimal(t, "1540", dec(first))

	sixthContract, err := f.GetCellValue(ScheduleSheetName, "C7", raw)
	require.NoError(t, err)
	assertDecimal(t, "0", dec(sixthContract))
}
