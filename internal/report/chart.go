package report

import (
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

// Chart — данные столбчатой диаграммы отчета
type Chart struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
	Type   string   `json:"type"`
	Colors []string `json:"colors"`
}

var (
	chartPeriods = []string{"0-30 Days", "31-60 Days", "61-90 Days", "91-180 Days"}
	chartColors  = []string{"#fc4f51", "#ff7846", "#ffc107", "#5e64ff"}
)

// bucketIndex — индекс корзины диаграммы по дням до окончания, -1 вне диапазона
func bucketIndex(days int) int {
	switch {
	case days < 0:
		return -1
	case days <= 30:
		return 0
	case days <= 60:
		return 1
	case days <= 90:
		return 2
	case days <= 180:
		return 3
	default:
		return -1
	}
}

// BuildChart считает контракты, истекающие в ближайшие 180 дней, по корзинам.
// Пустые корзины присутствуют с нулем.
func BuildChart(app core.App, today time.Time) (Chart, error) {
	chart := Chart{
		Labels: chartPeriods,
		Values: make([]int, len(chartPeriods)),
		Type:   "bar",
		Colors: chartColors,
	}

	records, err := app.FindRecordsByFilter(
		"aspire_contracts",
		"end_date != '' && end_date >= {:from} && end_date <= {:to}",
		"+end_date",
		maxReportRows,
		0,
		map[string]interface{}{
			"from": today.Format(indicator.DateFormat),
			"to":   endOfDay(today.AddDate(0, 0, 180).Format(indicator.DateFormat)),
		},
	)
	if err != nil {
		return chart, err
	}

	for _, r := range records {
		endDate := r.GetDateTime("end_date")
		if endDate.IsZero() {
			continue
		}
		if i := bucketIndex(indicator.DaysBetween(today, endDate.Time())); i >= 0 {
			chart.Values[i]++
		}
	}
	return chart, nil
}
