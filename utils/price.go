package utils

import (
	"strconv"
	"strings"
)

// NumericPrice derives an integer from a free-text price such as "$450,000"
// or "$2,500/mo" by stripping every non-digit character. A price with no
// digits at all ("Contact for price") yields 0, which classifies it into the
// lowest filter bucket for its listing type.
func NumericPrice(price string) int {
	var digits strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return n
}
