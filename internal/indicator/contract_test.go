package indicator

import (
	"testing"
	"time"
)

var today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

func endIn(days int) *time.Time {
	d := today.AddDate(0, 0, days)
	return &d
}

func TestForContractNonActive(t *testing.T) {
	got := ForContract(ContractRecord{Status: "Unsigned"}, today)
	if got.Label != "Unsigned" || got.Color != ColorRed {
		t.Errorf("Unsigned == (%q, %q), want (Unsigned, red)", got.Label, got.Color)
	}
	if got.Filter != "status,=,Unsigned" {
		t.Errorf("Unsigned filter == %q", got.Filter)
	}

	// Любой другой неактивный статус — серый, значение эхом в подписи и фильтре
	got = ForContract(ContractRecord{Status: "Cancelled"}, today)
	if got.Label != "Cancelled" || got.Color != ColorGray {
		t.Errorf("Cancelled == (%q, %q), want (Cancelled, gray)", got.Label, got.Color)
	}
	if got.Filter != "status,=,Cancelled" {
		t.Errorf("Cancelled filter == %q", got.Filter)
	}
}

func TestForContractBuckets(t *testing.T) {
	cases := []struct {
		days  int
		label string
		color Color
	}{
		{-1, "Expired", ColorRed},
		{0, "30 Days", ColorOrange},
		{15, "30 Days", ColorOrange},
		{30, "30 Days", ColorOrange},
		{31, "60 Days", ColorYellow},
		{60, "60 Days", ColorYellow},
		{61, "90 Days", ColorBlue},
		{90, "90 Days", ColorBlue},
		{91, "Active", ColorGreen},
		{365, "Active", ColorGreen},
	}

	for _, c := range cases {
		got := ForContract(ContractRecord{Status: "Active", EndDate: endIn(c.days)}, today)
		if got.Label != c.label || got.Color != c.color {
			t.Errorf("end in %d days == (%q, %q), want (%q, %q)", c.days, got.Label, got.Color, c.label, c.color)
		}
	}
}

func TestForContractBucketFilters(t *testing.T) {
	got := ForContract(ContractRecord{Status: "Active", EndDate: endIn(10)}, today)
	want := "status,=,Active|end_date,>=,2025-06-15|end_date,<=,2025-07-15"
	if got.Filter != want {
		t.Errorf("30 Days filter == %q, want %q", got.Filter, want)
	}

	got = ForContract(ContractRecord{Status: "Active", EndDate: endIn(45)}, today)
	want = "status,=,Active|end_date,>,2025-07-15|end_date,<=,2025-08-14"
	if got.Filter != want {
		t.Errorf("60 Days filter == %q, want %q", got.Filter, want)
	}

	got = ForContract(ContractRecord{Status: "Active", EndDate: endIn(-5)}, today)
	want = "status,=,Active|end_date,<,2025-06-15"
	if got.Filter != want {
		t.Errorf("Expired filter == %q, want %q", got.Filter, want)
	}
}

func TestForContractNoEndDate(t *testing.T) {
	got := ForContract(ContractRecord{Status: "Active", PartyName: "Acme"}, today)
	if got.Label != "Active" || got.Color != ColorGreen {
		t.Errorf("no end date == (%q, %q), want (Active, green)", got.Label, got.Color)
	}
	if got.Filter != "status,=,Active" {
		t.Errorf("no end date filter == %q", got.Filter)
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		from, to time.Time
		want     int
	}{
		{today, today, 0},
		{today, today.AddDate(0, 0, 30), 30},
		{today, today.AddDate(0, 0, -1), -1},
		// Разница считается по календарным дням, время суток не влияет
		{today.Add(23 * time.Hour), today.AddDate(0, 0, 1), 1},
	}
	for _, c := range cases {
		if got := DaysBetween(c.from, c.to); got != c.want {
			t.Errorf("DaysBetween(%v, %v) == %d, want %d", c.from, c.to, got, c.want)
		}
	}
}
