package extract

import (
	"regexp"
	"strconv"
	"time"
)

// dateShape is one recognizable date syntax. Shapes are tried in order; the
// first regex hit that also parses wins. A hit that fails to parse falls
// through to the next shape.
type dateShape struct {
	re    *regexp.Regexp
	parse func(m []string) (time.Time, bool)
}

var dateShapes = []dateShape{
	// day/month/year: 17.03.2024, 17/03/2024, 17-03-2024
	{
		re: regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{4})\b`),
		parse: func(m []string) (time.Time, bool) {
			day, _ := strconv.Atoi(m[1])
			month, _ := strconv.Atoi(m[2])
			year, _ := strconv.Atoi(m[3])
			if month < 1 || month > 12 || day < 1 || day > 31 {
				return time.Time{}, false
			}
			t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
			// reject rollovers like 31.02.2024
			if t.Day() != day || t.Month() != time.Month(month) {
				return time.Time{}, false
			}
			return t, true
		},
	},
	// ISO: 2024-03-17
	{
		re: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`),
		parse: func(m []string) (time.Time, bool) {
			t, err := time.Parse("2006-01-02", m[1])
			if err != nil {
				return time.Time{}, false
			}
			return t.UTC(), true
		},
	},
	// timestamp-prefixed: 2024-03-17T09:30 or 2024-03-17 09:30:00
	{
		re: regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})[T ]\d{2}:\d{2}`),
		parse: func(m []string) (time.Time, bool) {
			t, err := time.Parse("2006-01-02", m[1])
			if err != nil {
				return time.Time{}, false
			}
			return t.UTC(), true
		},
	},
}

// ExtractReportDate scans text for the first parseable date shape and
// normalizes it to a UTC midnight timestamp.
func ExtractReportDate(text string) (time.Time, bool) {
	for _, shape := range dateShapes {
		m := shape.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if t, ok := shape.parse(m); ok {
			return t, true
		}
	}
	return time.Time{}, false
}
