package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"rental-budget/domain"
)

const (
	ScheduleSheetName = "Schedule"
	twoDecimalsNumFmt = 2 // built-in "0.00"
)

// ScheduleWorkbook renders the schedule as a spreadsheet with the same
// columns as SerializeSchedule. Callers must Close the returned file.
func ScheduleWorkbook(schedule domain.Schedule) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), ScheduleSheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(scheduleHeader))
	for i, name := range scheduleHeader {
		header[i] = name
	}
	if err := f.SetSheetRow(ScheduleSheetName, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, e := range schedule.Entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{
			e.Month,
			e.RentPortion.Round(2).InexactFloat64(),
			e.ContractPortion.Round(2).InexactFloat64(),
			e.TotalPortion.Round(2).InexactFloat64(),
		}
		if err := f.SetSheetRow(ScheduleSheetName, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("write month %d: %w", e.Month, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: twoDecimalsNumFmt})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create number style: %w", err)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(scheduleHeader), domain.MonthsPerSchedule+1)
	if err := f.SetCellStyle(ScheduleSheetName, "B2", lastCell, style); err != nil {
		f.Close()
		return nil, fmt.Errorf("apply number style: %w", err)
	}

	return f, nil
}
