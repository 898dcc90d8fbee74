package usecases

import (
	"fmt"
	"regexp"
	"strings"
)

var periodRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// monthPatterns builds the LIKE patterns that match a month inside the
// textual creation stamp. The stamp was written in several historical
// formats ("3/4/2025", "03/04/2025", "2025-03-04", "2025/03/04"), so the
// filter ORs one pattern per format.
func monthPatterns(year, month int) []string {
	y := fmt.Sprintf("%d", year)
	noPad := fmt.Sprintf("%d", month)
	pad := fmt.Sprintf("%02d", month)

	patterns := []string{noPad + "/%/" + y + "%"}
	if noPad != pad {
		patterns = append(patterns, pad+"/%/"+y+"%")
	}
	patterns = append(patterns, y+"-"+pad+"-%", y+"/"+pad+"/%")
	return patterns
}

// resolvePeriod combines the year+month pair with the alternative
// "YYYY-MM" period text. The pair wins when both are present.
func resolvePeriod(year, month int, period string) (int, int, bool) {
	if (year == 0 || month == 0) && periodRe.MatchString(period) {
		fmt.Sscanf(period, "%d-%d", &year, &month)
	}
	if year == 0 || month < 1 || month > 12 {
		return 0, 0, false
	}
	return year, month, true
}

// emailLocalKey lowercases an email and returns its local part, stripping
// zero-width characters that leak in from copy-pasted addresses.
func emailLocalKey(email string) string {
	e := strings.ToLower(email)
	e = strings.Map(func(r rune) rune {
		switch r {
		case '\u200b', '\u200c', '\u200d', '\ufeff':
			return -1
		}
		return r
	}, e)
	e = strings.TrimSpace(e)
	if at := strings.Index(e, "@"); at >= 0 {
		return e[:at]
	}
	return e
}
