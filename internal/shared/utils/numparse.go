package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumericRe = regexp.MustCompile(`[^0-9.,-]`)

// ParseNumberLike parses a free-form monetary or numeric string in mixed
// Argentine/US formats: "18200", "18,200", "18.200", "1.820,50", "1,820.50",
// "$ 20.000". When both separators appear, the rightmost one is the decimal
// separator and the other is thousands grouping. A single separator is
// treated as grouping only when the digit groups match a thousands pattern.
// Returns false when the input does not contain a finite number.
func ParseNumberLike(input string) (float64, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, false
	}
	s = nonNumericRe.ReplaceAllString(s, "")

	commas := strings.Count(s, ",")
	dots := strings.Count(s, ".")

	switch {
	case commas > 0 && dots > 0:
		decimalSep := ","
		groupSep := "."
		if strings.LastIndex(s, ".") > strings.LastIndex(s, ",") {
			decimalSep, groupSep = ".", ","
		}
		s = strings.ReplaceAll(s, groupSep, "")
		if decimalSep == "," {
			s = strings.Replace(s, ",", ".", 1)
		}
	case commas > 0:
		if isThousandsPattern(s, ",") {
			s = strings.ReplaceAll(s, ",", "")
		} else {
			s = strings.Replace(s, ",", ".", 1)
		}
	case dots > 0:
		if isThousandsPattern(s, ".") {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// isThousandsPattern reports whether sep splits s into groups consistent
// with thousands grouping: a leading group of 1-3 digits followed by groups
// of exactly 3 digits.
func isThousandsPattern(s, sep string) bool {
	parts := strings.Split(s, sep)
	if len(parts) <= 1 {
		return false
	}
	if len(parts[0]) < 1 || len(parts[0]) > 3 || !allDigits(parts[0]) {
		return false
	}
	for _, p := range parts[1:] {
		if len(p) != 3 || !allDigits(p) {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// IsInfiniteStock reports whether a stock text marks unlimited stock:
// the exact symbol "∞" or anything starting with "inf" case-insensitively.
func IsInfiniteStock(stock string) bool {
	s := strings.TrimSpace(stock)
	if s == "∞" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(s), "inf")
}

// NormalizeAmountText parses a free-form amount and renders it back in
// Argentine display form with a dot as thousands separator and a decimal
// comma only when the value has cents ("1820.5" → "1.820,50").
// Unparseable input is returned unchanged.
func NormalizeAmountText(input string) string {
	n, ok := ParseNumberLike(input)
	if !ok {
		return input
	}
	return FormatAmountAR(n)
}

// FormatAmountAR formats a number in es-AR style: "1.234" or "1.234,50".
func FormatAmountAR(n float64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	cents := int64(n*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(".")
		}
		b.WriteString(digits[i : i+3])
	}
	out := b.String()
	if frac != 0 {
		out += "," + padTwo(frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func padTwo(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
