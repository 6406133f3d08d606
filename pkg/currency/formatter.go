package currency

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount renders a monetary value the way offer payloads carry prices: a
// plain decimal string with two fraction digits.
func Amount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Parse reads a price string back into a number. It tolerates a leading
// currency code and thousands separators. Unparsable input yields 0, which
// makes broken offers sort first rather than dropping them.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, ' '); i >= 0 {
		s = s[i+1:]
	}
	s = strings.ReplaceAll(s, ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Format renders a display amount with a currency code and thousands
// separators, e.g. "EUR 1,245.00".
func Format(v float64, code string) string {
	negative := v < 0
	if negative {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")
	formatted := addThousandsSeparator(intPart, ",")

	result := fmt.Sprintf("%s %s.%s", code, formatted, fracPart)
	if negative {
		result = "-" + result
	}
	return result
}

func addThousandsSeparator(s string, sep string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	numSeps := (n - 1) / 3
	result := make([]byte, n+numSeps)

	j := len(result) - 1
	for i := n - 1; i >= 0; i-- {
		result[j] = s[i]
		j--

		pos := n - i
		if pos%3 == 0 && i > 0 {
			result[j] = sep[0]
			j--
		}
	}

	return string(result)
}
