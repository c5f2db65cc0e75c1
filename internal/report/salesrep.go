package report

import (
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Сводные отчеты по менеджерам. Окна 30/60/90 здесь кумулятивные
// (0..N дней от сегодня), в отличие от корзин диаграммы истекающих.

// SummaryRow — строка сводки по менеджеру
type SummaryRow struct {
	SalesRep       string  `json:"sales_rep"`
	TotalContracts int     `json:"total_contracts"`
	Expiring30d    int     `json:"expiring_30d"`
	Expiring60d    int     `json:"expiring_60d"`
	Expiring90d    int     `json:"expiring_90d"`
	TotalValue     float64 `json:"total_value"`
}

// ExpirationRow — строка отчета по истечениям в разрезе менеджера
type ExpirationRow struct {
	SalesRep      string `json:"sales_rep"`
	Expires30Days int    `json:"expires_30_days"`
	Expires60Days int    `json:"expires_60_days"`
	Expires90Days int    `json:"expires_90_days"`
}

// Dataset — один ряд групповой диаграммы
type Dataset struct {
	Name   string `json:"name"`
	Values []int  `json:"values"`
}

// GroupedChart — столбчатая диаграмма с несколькими рядами.
// При пустых данных отдается nil, фронт диаграмму не рисует.
type GroupedChart struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Type     string    `json:"type"`
	Colors   []string  `json:"colors"`
	Stacked  bool      `json:"stacked"`
}

func SummaryColumns() []Column {
	return []Column{
		{Fieldname: "sales_rep", Label: "Sales Rep", Fieldtype: "Data", Width: 200},
		{Fieldname: "total_contracts", Label: "Total Contracts", Fieldtype: "Int", Width: 140},
		{Fieldname: "expiring_30d", Label: "Expiring 30d", Fieldtype: "Int", Width: 120},
		{Fieldname: "expiring_60d", Label: "Expiring 60d", Fieldtype: "Int", Width: 120},
		{Fieldname: "expiring_90d", Label: "Expiring 90d", Fieldtype: "Int", Width: 120},
		{Fieldname: "total_value", Label: "Total Value", Fieldtype: "Currency", Width: 150},
	}
}

func ExpirationColumns() []Column {
	return []Column{
		{Fieldname: "sales_rep", Label: "Sales Rep", Fieldtype: "Data", Width: 300},
		{Fieldname: "expires_30_days", Label: "Expiring in 30 Days", Fieldtype: "Int", Width: 200},
		{Fieldname: "expires_60_days", Label: "Expiring in 60 Days", Fieldtype: "Int", Width: 200},
		{Fieldname: "expires_90_days", Label: "Expiring in 90 Days", Fieldtype: "Int", Width: 200},
	}
}

// summarize сворачивает контракты по менеджерам: всего, в окнах
// 30/60/90 и суммарная стоимость. Контракты без даты окончания и
// истекшие сюда не попадают — Execute их уже отсек.
func summarize(rows []Row) []SummaryRow {
	byRep := map[string]*SummaryRow{}
	for _, r := range rows {
		s := byRep[r.SalesRep]
		if s == nil {
			s = &SummaryRow{SalesRep: r.SalesRep}
			byRep[r.SalesRep] = s
		}
		s.TotalContracts++
		s.TotalValue += r.EstimatedValue
		if r.DaysUntilExpiry <= 30 {
			s.Expiring30d++
		}
		if r.DaysUntilExpiry <= 60 {
			s.Expiring60d++
		}
		if r.DaysUntilExpiry <= 90 {
			s.Expiring90d++
		}
	}

	out := make([]SummaryRow, 0, len(byRep))
	for _, s := range byRep {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalContracts != out[j].TotalContracts {
			return out[i].TotalContracts > out[j].TotalContracts
		}
		return out[i].SalesRep < out[j].SalesRep
	})
	return out
}

// expirationByRep оставляет только менеджеров, у которых хоть что-то
// истекает в ближайшие 90 дней
func expirationByRep(rows []Row) []ExpirationRow {
	out := make([]ExpirationRow, 0, len(rows))
	for _, s := range summarize(rows) {
		if s.Expiring90d == 0 {
			continue
		}
		out = append(out, ExpirationRow{
			SalesRep:      s.SalesRep,
			Expires30Days: s.Expiring30d,
			Expires60Days: s.Expiring60d,
			Expires90Days: s.Expiring90d,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Expires30Days != out[j].Expires30Days {
			return out[i].Expires30Days > out[j].Expires30Days
		}
		if out[i].Expires60Days != out[j].Expires60Days {
			return out[i].Expires60Days > out[j].Expires60Days
		}
		return out[i].SalesRep < out[j].SalesRep
	})
	return out
}

func summaryChart(rows []SummaryRow) *GroupedChart {
	if len(rows) == 0 {
		return nil
	}
	chart := &GroupedChart{
		Type:   "bar",
		Colors: []string{"#4299E1", "#ff5858", "#ff9f43", "#ffc107"},
		Datasets: []Dataset{
			{Name: "Total Contracts"},
			{Name: "Expiring 30d"},
			{Name: "Expiring 60d"},
			{Name: "Expiring 90d"},
		},
	}
	for _, r := range rows {
		chart.Labels = append(chart.Labels, r.SalesRep)
		chart.Datasets[0].Values = append(chart.Datasets[0].Values, r.TotalContracts)
		chart.Datasets[1].Values = append(chart.Datasets[1].Values, r.Expiring30d)
		chart.Datasets[2].Values = append(chart.Datasets[2].Values, r.Expiring60d)
		chart.Datasets[3].Values = append(chart.Datasets[3].Values, r.Expiring90d)
	}
	return chart
}

func expirationChart(rows []ExpirationRow) *GroupedChart {
	if len(rows) == 0 {
		return nil
	}
	chart := &GroupedChart{
		Type:   "bar",
		Colors: []string{"#ff5858", "#ff9f43", "#ffc107"},
		Datasets: []Dataset{
			{Name: "30 Days"},
			{Name: "60 Days"},
			{Name: "90 Days"},
		},
	}
	for _, r := range rows {
		chart.Labels = append(chart.Labels, r.SalesRep)
		chart.Datasets[0].Values = append(chart.Datasets[0].Values, r.Expires30Days)
		chart.Datasets[1].Values = append(chart.Datasets[1].Values, r.Expires60Days)
		chart.Datasets[2].Values = append(chart.Datasets[2].Values, r.Expires90Days)
	}
	return chart
}

// HandleSalesRepSummary — GET /api/report/sales-rep-summary
func HandleSalesRepSummary(pbApp *pocketbase.PocketBase, e *core.RequestEvent) error {
	today := time.Now()
	contracts, err := Execute(pbApp, Filters{}, today)
	if err != nil {
		log.Printf("[ERROR] HandleSalesRepSummary: query failed: %v", err)
		return e.InternalServerError("Failed to build report", err)
	}

	rows := summarize(contracts)
	return e.JSON(http.StatusOK, map[string]interface{}{
		"columns": SummaryColumns(),
		"rows":    rows,
		"chart":   summaryChart(rows),
	})
}

// HandleExpirationBySalesRep — GET /api/report/expiration-by-sales-rep
func HandleExpirationBySalesRep(pbApp *pocketbase.PocketBase, e *core.RequestEvent) error {
	today := time.Now()
	contracts, err := Execute(pbApp, Filters{}, today)
	if err != nil {
		log.Printf("[ERROR] HandleExpirationBySalesRep: query failed: %v", err)
		return e.InternalServerError("Failed to build report", err)
	}

	rows := expirationByRep(contracts)
	return e.JSON(http.StatusOK, map[string]interface{}{
		"columns": ExpirationColumns(),
		"rows":    rows,
		"chart":   expirationChart(rows),
	})
}
