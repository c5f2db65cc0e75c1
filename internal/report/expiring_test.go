package report

import (
	"testing"
	"time"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func TestBuildFilterDefaults(t *testing.T) {
	filter, params := buildFilter(Filters{}, today)
	if filter != "end_date != '' && end_date >= {:from}" {
		t.Errorf("default filter == %q", filter)
	}
	if params["from"] != "2025-06-15" {
		t.Errorf("default from == %v, want today", params["from"])
	}
}

func TestBuildFilterAllFields(t *testing.T) {
	f := Filters{
		SalesRep: "John Doe",
		FromDate: "2025-07-01",
		ToDate:   "2025-09-01",
		Days:     60,
	}
	filter, params := buildFilter(f, today)

	want := "end_date != '' && end_date >= {:from} && custom_sales_rep = {:rep} && end_date <= {:to} && end_date <= {:horizon}"
	if filter != want {
		t.Errorf("filter == %q, want %q", filter, want)
	}
	if params["from"] != "2025-07-01" {
		t.Errorf("from_date filter should override today, got %v", params["from"])
	}
	if params["rep"] != "John Doe" {
		t.Errorf("rep == %v", params["rep"])
	}
	if params["to"] != "2025-09-01 23:59:59.999Z" {
		t.Errorf("to == %v", params["to"])
	}
	// days=60 — окончание не дальше today+60 включительно
	if params["horizon"] != "2025-08-14 23:59:59.999Z" {
		t.Errorf("horizon == %v, want end of 2025-08-14", params["horizon"])
	}
}

func TestBuildFilterUpperBoundIncludesBoundaryDay(t *testing.T) {
	// DateField хранится текстом "YYYY-MM-DD 00:00:00.000Z"; сравнение
	// в фильтре лексикографическое. Контракт, истекающий ровно на
	// горизонте (today+60), обязан попасть в выборку.
	stored := "2025-08-14 00:00:00.000Z"

	_, params := buildFilter(Filters{Days: 60}, today)
	horizon, ok := params["horizon"].(string)
	if !ok {
		t.Fatalf("horizon param missing: %v", params)
	}
	if !(stored <= horizon) {
		t.Errorf("stored %q must compare <= horizon %q", stored, horizon)
	}
	// Следующий день уже за горизонтом
	if next := "2025-08-15 00:00:00.000Z"; next <= horizon {
		t.Errorf("stored %q must compare > horizon %q", next, horizon)
	}

	// Нижняя граница остается голой датой: она меньше любого
	// хранимого значения этого дня, сегодняшние контракты проходят
	from, _ := params["from"].(string)
	if from != "2025-06-15" {
		t.Errorf("from == %q, want bare date", from)
	}
	if !("2025-06-15 00:00:00.000Z" >= from) {
		t.Errorf("contract ending today must pass the lower bound %q", from)
	}

	// Та же граница для to_date из панели фильтров
	_, params = buildFilter(Filters{ToDate: "2025-08-14"}, today)
	to, _ := params["to"].(string)
	if !(stored <= to) {
		t.Errorf("stored %q must compare <= to %q", stored, to)
	}
}

func TestParseFilters(t *testing.T) {
	query := map[string]string{
		"sales_rep": "Jane",
		"from_date": "2025-06-20",
		"days":      "30",
	}
	f, ok := ParseFilters(func(k string) string { return query[k] })
	if !ok {
		t.Fatal("valid filters rejected")
	}
	if f.SalesRep != "Jane" || f.FromDate != "2025-06-20" || f.Days != 30 {
		t.Errorf("parsed == %+v", f)
	}

	bad := []map[string]string{
		{"from_date": "20.06.2025"},
		{"to_date": "not-a-date"},
		{"days": "soon"},
		{"days": "-5"},
	}
	for _, q := range bad {
		q := q
		if _, ok := ParseFilters(func(k string) string { return q[k] }); ok {
			t.Errorf("filters %v should be rejected", q)
		}
	}

	// «All» и пустое значение — без ограничения по дням
	f, ok = ParseFilters(func(k string) string {
		if k == "days" {
			return "All"
		}
		return ""
	})
	if !ok || f.Days != 0 {
		t.Errorf("days=All parsed as %+v, ok=%v", f, ok)
	}
}

func TestFormatCell(t *testing.T) {
	row := Row{Name: "CONTRACT-7"}

	got := FormatCell("action", &row, nil)
	button, ok := got.(Button)
	if !ok {
		t.Fatalf("action cell should render a button, got %T", got)
	}
	if button.Payload["contract_name"] != "CONTRACT-7" {
		t.Errorf("button payload == %v", button.Payload)
	}
	if button.Method != "create_issue_from_contract" {
		t.Errorf("button method == %q", button.Method)
	}

	// Остальные колонки — passthrough
	if v := FormatCell("party_name", &row, "Acme"); v != "Acme" {
		t.Errorf("party_name cell == %v, want passthrough", v)
	}
	// Без строки кнопки нет
	if v := FormatCell("action", nil, "x"); v != "x" {
		t.Errorf("action cell without a row == %v, want passthrough", v)
	}
}

func TestBucketIndex(t *testing.T) {
	cases := []struct {
		days int
		want int
	}{
		{-1, -1},
		{0, 0},
		{30, 0},
		{31, 1},
		{60, 1},
		{61, 2},
		{90, 2},
		{91, 3},
		{180, 3},
		{181, -1},
	}
	for _, c := range cases {
		if got := bucketIndex(c.days); got != c.want {
			t.Errorf("bucketIndex(%d) == %d, want %d", c.days, got, c.want)
		}
	}
}
