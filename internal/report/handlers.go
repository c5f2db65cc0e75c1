package report

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

// isValidDate проверяет дату фильтра в формате списка (YYYY-MM-DD)
func isValidDate(s string) bool {
	_, err := time.Parse(indicator.DateFormat, s)
	return err == nil
}

// ParseFilters разбирает query-параметры панели фильтров.
// Невалидные даты отбрасываются как ошибка ввода.
func ParseFilters(get func(string) string) (Filters, bool) {
	f := Filters{
		SalesRep: get("sales_rep"),
		FromDate: get("from_date"),
		ToDate:   get("to_date"),
	}

	if f.FromDate != "" && !isValidDate(f.FromDate) {
		return f, false
	}
	if f.ToDate != "" && !isValidDate(f.ToDate) {
		return f, false
	}

	switch days := get("days"); days {
	case "", "All":
		f.Days = 0
	default:
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return f, false
		}
		f.Days = n
	}
	return f, true
}

// HandleExpiringContracts — GET /api/report/expiring-contracts.
// Отдает объявление фильтров, колонки, строки (action-колонка уже
// отформатирована кнопкой) и диаграмму.
func HandleExpiringContracts(pbApp *pocketbase.PocketBase, e *core.RequestEvent) error {
	filters, ok := ParseFilters(e.Request.URL.Query().Get)
	if !ok {
		log.Printf("[WARN] HandleExpiringContracts: invalid filter values")
		return e.BadRequestError("Invalid report filters", nil)
	}

	today := time.Now()
	rows, err := Execute(pbApp, filters, today)
	if err != nil {
		log.Printf("[ERROR] HandleExpiringContracts: query failed: %v", err)
		return e.InternalServerError("Failed to build report", err)
	}

	chart, err := BuildChart(pbApp, today)
	if err != nil {
		log.Printf("[ERROR] HandleExpiringContracts: chart failed: %v", err)
		return e.InternalServerError("Failed to build chart", err)
	}

	actions := make([]interface{}, 0, len(rows))
	for i := range rows {
		actions = append(actions, FormatCell("action", &rows[i], nil))
	}

	return e.JSON(http.StatusOK, map[string]interface{}{
		"filters": FilterFields(today),
		"columns": Columns(),
		"rows":    rows,
		"actions": actions,
		"chart":   chart,
	})
}
