package report

import (
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
	"github.com/ArkangelLabs/kraken-crystal-clean/internal/rpc"
)

const maxReportRows = 5000

// FilterField — объявление поля панели фильтров для фронта
type FilterField struct {
	Fieldname string   `json:"fieldname"`
	Label     string   `json:"label"`
	Fieldtype string   `json:"fieldtype"`
	Options   []string `json:"options,omitempty"`
	Default   string   `json:"default,omitempty"`
}

// Filters — разобранные значения фильтров отчета
type Filters struct {
	SalesRep string
	FromDate string
	ToDate   string
	Days     int // 0 — «All»
}

// Column — колонка отчета
type Column struct {
	Fieldname string `json:"fieldname"`
	Label     string `json:"label"`
	Fieldtype string `json:"fieldtype"`
	Width     int    `json:"width"`
}

// Row — строка отчета по истекающим контрактам
type Row struct {
	Name            string  `json:"name"`
	SalesRep        string  `json:"sales_rep"`
	PartyName       string  `json:"party_name"`
	Property        string  `json:"property"`
	EndDate         string  `json:"end_date"`
	EstimatedValue  float64 `json:"estimated_value"`
	DaysUntilExpiry int     `json:"days_until_expiry"`
	Status          string  `json:"status"`
}

// Button — кнопка в колонке action. Клик вызывает удаленную процедуру;
// при успехе фронт показывает уведомление с именем созданной записи
// и переходит на нее.
type Button struct {
	Label   string            `json:"label"`
	Method  string            `json:"method"`
	Payload map[string]string `json:"payload"`
}

// FilterFields объявляет панель фильтров отчета.
// Валидация сверх типов полей не делается — этим занимается фронт.
func FilterFields(today time.Time) []FilterField {
	return []FilterField{
		{Fieldname: "sales_rep", Label: "Sales Rep", Fieldtype: "Data"},
		{Fieldname: "from_date", Label: "From Date", Fieldtype: "Date", Default: today.Format(indicator.DateFormat)},
		{Fieldname: "to_date", Label: "To Date", Fieldtype: "Date"},
		{Fieldname: "days", Label: "Days", Fieldtype: "Select", Options: []string{"All", "30", "60", "90"}, Default: "All"},
	}
}

func Columns() []Column {
	return []Column{
		{Fieldname: "sales_rep", Label: "Sales Rep", Fieldtype: "Data", Width: 180},
		{Fieldname: "party_name", Label: "Company", Fieldtype: "Link", Width: 200},
		{Fieldname: "property", Label: "Property", Fieldtype: "Data", Width: 200},
		{Fieldname: "end_date", Label: "Renewal Date", Fieldtype: "Date", Width: 120},
		{Fieldname: "estimated_value", Label: "Value", Fieldtype: "Currency", Width: 120},
		{Fieldname: "days_until_expiry", Label: "Days Until Expiry", Fieldtype: "Int", Width: 140},
		{Fieldname: "status", Label: "Status", Fieldtype: "Data", Width: 100},
		{Fieldname: "name", Label: "Contract", Fieldtype: "Link", Width: 150},
		{Fieldname: "action", Label: "Action", Fieldtype: "Data", Width: 120},
	}
}

// endOfDay дополняет дату до конца суток в формате хранения DateField
// ("2006-01-02 15:04:05.000Z"). Голая дата YYYY-MM-DD в верхней границе
// лексикографически МЕНЬШЕ хранимого "YYYY-MM-DD 00:00:00.000Z" и
// выкидывает контракты, истекающие ровно в граничный день.
func endOfDay(date string) string {
	return date + " 23:59:59.999Z"
}

// buildFilter собирает условия выборки контрактов по фильтрам отчета.
// Базовое условие: дата окончания есть и не в прошлом.
// Верхние границы дат включительные (как DATE_ADD(CURDATE(), INTERVAL N DAY)).
func buildFilter(f Filters, today time.Time) (string, map[string]interface{}) {
	filter := "end_date != '' && end_date >= {:from}"
	params := map[string]interface{}{
		"from": today.Format(indicator.DateFormat),
	}

	if f.FromDate != "" {
		params["from"] = f.FromDate
	}
	if f.SalesRep != "" {
		filter += " && custom_sales_rep = {:rep}"
		params["rep"] = f.SalesRep
	}
	if f.ToDate != "" {
		filter += " && end_date <= {:to}"
		params["to"] = endOfDay(f.ToDate)
	}
	if f.Days > 0 {
		filter += " && end_date <= {:horizon}"
		params["horizon"] = endOfDay(today.AddDate(0, 0, f.Days).Format(indicator.DateFormat))
	}
	return filter, params
}

// Execute выбирает контракты под фильтры, сортировка по дате окончания
func Execute(app core.App, f Filters, today time.Time) ([]Row, error) {
	filter, params := buildFilter(f, today)
	records, err := app.FindRecordsByFilter("aspire_contracts", filter, "+end_date", maxReportRows, 0, params)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, rowFromRecord(r, today))
	}
	return rows, nil
}

func rowFromRecord(r *core.Record, today time.Time) Row {
	salesRep := r.GetString("custom_sales_rep")
	if salesRep == "" {
		salesRep = "Unassigned"
	}

	days := 0
	endDate := r.GetDateTime("end_date")
	if !endDate.IsZero() {
		days = indicator.DaysBetween(today, endDate.Time())
	}

	return Row{
		Name:            r.Id,
		SalesRep:        salesRep,
		PartyName:       r.GetString("party_name"),
		Property:        r.GetString("property"),
		EndDate:         r.GetString("end_date"),
		EstimatedValue:  r.GetFloat("estimated_value"),
		DaysUntilExpiry: days,
		Status:          r.GetString("status"),
	}
}

// FormatCell — переопределение рендера ячеек: в колонке action при наличии
// строки рисуется кнопка создания Issue, остальные колонки проходят
// через стандартный форматтер без изменений.
func FormatCell(column string, row *Row, value interface{}) interface{} {
	if column == "action" && row != nil {
		return Button{
			Label:   "Create Issue",
			Method:  rpc.MethodCreateIssueFromContract,
			Payload: map[string]string{"contract_name": row.Name},
		}
	}
	return value
}
