package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDateRe  = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	slashYMDRe = regexp.MustCompile(`^(\d{4})/(\d{1,2})/(\d{1,2})$`)
	slashDMYRe = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
)

// NormalizeDateISO interprets a free-form date string and renders it as
// "YYYY-MM-DD". Accepted inputs: ISO (time part dropped), "YYYY/MM/DD",
// and "M/D/YYYY" or "D/M/YYYY" disambiguated by value range (month-first
// when ambiguous). Returns false when the input is not a date.
func NormalizeDateISO(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "undefined") {
		return "", false
	}

	// Drop a time component if present.
	s = strings.SplitN(s, "T", 2)[0]
	s = strings.SplitN(s, " ", 2)[0]

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return s, true
	}
	if m := slashYMDRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[1], pad2(m[2]), pad2(m[3])), true
	}
	if mm, dd, yyyy, ok := parseAmbiguousDMY(s); ok {
		return fmt.Sprintf("%s-%02d-%02d", yyyy, mm, dd), true
	}

	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(value)); err == nil {
		return t.Format("2006-01-02"), true
	}
	return "", false
}

// ToMonthDayYear renders a free-form date string as "M/D/YYYY" without
// leading zeroes, the form the ticket creation stamp uses.
func ToMonthDayYear(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "undefined") {
		return "", false
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%d/%d/%s", atoi(m[2]), atoi(m[3]), m[1]), true
	}
	if m := slashYMDRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%d/%d/%s", atoi(m[2]), atoi(m[3]), m[1]), true
	}
	if mm, dd, yyyy, ok := parseAmbiguousDMY(s); ok {
		return fmt.Sprintf("%d/%d/%s", mm, dd, yyyy), true
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year()), true
	}
	return "", false
}

// parseAmbiguousDMY handles "a/b/YYYY" where either field could be the
// month. A value over 12 fixes the roles; otherwise month-first wins.
func parseAmbiguousDMY(s string) (month, day int, year string, ok bool) {
	m := slashDMYRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, "", false
	}
	a, b := atoi(m[1]), atoi(m[2])
	switch {
	case b > 12 && a <= 12:
		return a, b, m[3], true
	case a > 12 && b <= 12:
		return b, a, m[3], true
	default:
		return a, b, m[3], true
	}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
