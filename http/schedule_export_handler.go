package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"rental-budget/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportSchedule serves the schedule of a stored budget as a semicolon
// separated table (default) or, with ?format=xlsx, as a spreadsheet.
func (h *BudgetHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format := r.URL.Query().Get("format")
	if format != "" && format != "csv" && format != "xlsx" {
		http.Error(w, "format must be csv or xlsx", http.StatusBadRequest)
		return
	}

	result, ok := h.lookup(w, r)
	if !ok {
		return
	}

	if format == "xlsx" {
		f, err := service.ScheduleWorkbook(result.Schedule)
		if err != nil {
			slog.Error("building schedule workbook", "id", result.ID, "error", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		defer f.Close()

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=schedule_%s.xlsx", result.ID))
		if err := f.Write(w); err != nil {
			slog.Error("writing schedule workbook", "id", result.ID, "error", err)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	if err := service.WriteSchedule(w, result.Schedule); err != nil {
		slog.Error("writing schedule", "id", result.ID, "error", err)
	}
}
