package utils

import "testing"

func TestNumericPrice(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"$450,000", 450000},
		{"$1,200,000", 1200000},
		{"$2,500/mo", 2500},
		{"1000", 1000},
		{"", 0},
		{"Contact for price", 0},
		{"TBD", 0},
	}

	for _, tc := range cases {
		if got := NumericPrice(tc.in); got != tc.want {
			t.Errorf("NumericPrice(%q): got %d, want %d", tc.in, got, tc.want)
		}
	}
}
