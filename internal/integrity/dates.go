// Package integrity implements Layer 3 of the ATS analysis: contact and date
// validation plus experience arithmetic, scored out of 20 points.
package integrity

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	mmYYYYRegex    = regexp.MustCompile(`^(0?[1-9]|1[0-2])[/\-]((?:19|20)\d{2})$`)
	isoYYYYMMRegex = regexp.MustCompile(`^((?:19|20)\d{2})-(0?[1-9]|1[0-2])$`)
	bareYearRegex  = regexp.MustCompile(`^((?:19|20)\d{2})$`)
	monthYYYYRegex = regexp.MustCompile(`^([A-Za-z]+)\.?\s+((?:19|20)\d{2})$`)
)

var monthNumbers = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November,
	"dec": time.December,
}

// parsedDate is the result of interpreting one employment-period date token.
type parsedDate struct {
	time      time.Time
	parsed    bool // token yields a usable date for gap arithmetic
	canonical bool // token matches an accepted canonical pattern
	current   bool // token means "still employed here"
}

// parseDateToken interprets a date string from an employment period.
// Canonical patterns are MM/YYYY, "Month YYYY" (full or abbreviated month)
// and the extraction collaborator's YYYY-MM form. Bare years parse for gap
// arithmetic but count as fuzzy. Season or quarter forms do not parse.
func parseDateToken(token string) parsedDate {
	trimmed := strings.TrimSpace(token)
	lower := strings.ToLower(trimmed)

	if lower == "" || lower == "present" || lower == "current" || lower == "now" {
		return parsedDate{current: true, canonical: true}
	}

	if m := mmYYYYRegex.FindStringSubmatch(trimmed); m != nil {
		month, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[2])
		return parsedDate{time: monthStart(year, time.Month(month)), parsed: true, canonical: true}
	}

	if m := isoYYYYMMRegex.FindStringSubmatch(trimmed); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		return parsedDate{time: monthStart(year, time.Month(month)), parsed: true, canonical: true}
	}

	if m := monthYYYYRegex.FindStringSubmatch(trimmed); m != nil {
		if month, ok := monthNumbers[strings.ToLower(m[1])]; ok {
			year, _ := strconv.Atoi(m[2])
			return parsedDate{time: monthStart(year, month), parsed: true, canonical: true}
		}
		return parsedDate{}
	}

	if m := bareYearRegex.FindStringSubmatch(trimmed); m != nil {
		year, _ := strconv.Atoi(m[1])
		return parsedDate{time: monthStart(year, time.January), parsed: true}
	}

	return parsedDate{}
}

func monthStart(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// monthsBetween returns the signed number of calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()-a.Month())
}
