package indicator

import (
	"testing"
)

func TestExpiryBucket(t *testing.T) {
	cases := []struct {
		days int
		want string
	}{
		{0, "0-30 Days"},
		{30, "0-30 Days"},
		{31, "31-60 Days"},
		{60, "31-60 Days"},
		{61, "61-90 Days"},
		{90, "61-90 Days"},
		{91, "90+ Days"},
		{400, "90+ Days"},
	}
	for _, c := range cases {
		if got := ExpiryBucket(c.days); got != c.want {
			t.Errorf("ExpiryBucket(%d) == %q, want %q", c.days, got, c.want)
		}
	}
}
