package aspire

import (
	"testing"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		input string
		want  string // "" — ожидаем nil
	}{
		{"2024-01-15T00:00:00Z", "2024-01-15"},
		{"2024-01-15T10:30:00", "2024-01-15"},
		{"2024-01-15", "2024-01-15"},
		{"", ""},
		{"15.01.2024", ""},
		{"garbage", ""},
	}

	for _, c := range cases {
		got := ParseDate(c.input)
		if c.want == "" {
			if got != nil {
				t.Errorf("ParseDate(%q) == %v, want nil", c.input, got)
			}
			continue
		}
		if got == nil {
			t.Errorf("ParseDate(%q) == nil, want %s", c.input, c.want)
			continue
		}
		if got.Format("2006-01-02") != c.want {
			t.Errorf("ParseDate(%q) == %s, want %s", c.input, got.Format("2006-01-02"), c.want)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Won", "Active"},
		{"  active  ", "Active"},
		{"Pending Signature", "Unsigned"},
		{"unsigned", "Unsigned"},
		{"Cancelled", "Cancelled"},
		{" On Hold ", "On Hold"},
	}

	for _, c := range cases {
		result := NormalizeStatus(c.input)
		if result != c.expected {
			t.Errorf("NormalizeStatus(%q) == %q, want %q", c.input, result, c.expected)
		}
	}
}
