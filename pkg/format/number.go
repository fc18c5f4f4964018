package format

import (
	"fmt"
	"strings"
)

// WithCommas adds thousands separators to a number
func WithCommas(n int64) string {
	if n < 0 {
		return "-" + withCommas(-n)
	}
	return withCommas(n)
}

func withCommas(n int64) string {
	if n == 0 {
		return "0"
	}

	str := fmt.Sprintf("%d", n)
	var parts []string
	for i := len(str); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		parts = append([]string{str[start:i]}, parts...)
	}

	return strings.Join(parts, ",")
}
