package indicator

import (
	"testing"
)

func TestForIssue(t *testing.T) {
	cases := []struct {
		status   string
		priority string
		label    string
		color    Color
		filter   string
	}{
		{"Completed", "", "Completed", ColorGreen, "status,=,Completed"},
		{"Completed", "Critical", "Completed", ColorGreen, "status,=,Completed"},
		{"Sent to Aspire", "High", "Sent to Aspire", ColorBlue, "status,=,Sent to Aspire"},
		{"In Progress", "Critical", "In Progress", ColorOrange, "status,=,In Progress"},
		{"Open", "Critical", "Critical", ColorRed, "status,=,Open|priority,=,Critical"},
		{"Open", "High", "High", ColorOrange, "status,=,Open|priority,=,High"},
		{"Open", "Medium", "Open", ColorYellow, "status,=,Open"},
		{"Open", "", "Open", ColorYellow, "status,=,Open"},
		{"On Hold", "High", "On Hold", ColorGray, "status,=,On Hold"},
	}

	for _, c := range cases {
		got := ForIssue(IssueRecord{Status: c.status, Priority: c.priority})
		if got.Label != c.label {
			t.Errorf("ForIssue(%q, %q) label == %q, want %q", c.status, c.priority, got.Label, c.label)
		}
		if got.Color != c.color {
			t.Errorf("ForIssue(%q, %q) color == %q, want %q", c.status, c.priority, got.Color, c.color)
		}
		if got.Filter != c.filter {
			t.Errorf("ForIssue(%q, %q) filter == %q, want %q", c.status, c.priority, got.Filter, c.filter)
		}
	}
}

func TestForIssueEmptyStatus(t *testing.T) {
	got := ForIssue(IssueRecord{})
	if got.Color != ColorGray {
		t.Errorf("empty status should fall back to gray, got %q", got.Color)
	}
	if got.Label != "" {
		t.Errorf("empty status should echo the raw value, got %q", got.Label)
	}
}
