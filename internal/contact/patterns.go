// Package contact provides regex-based detection of contact information in resume text.
package contact

import "regexp"

var emailRegex = regexp.MustCompile(`[a-zA-Z0-9](?:[\w.+-]*[a-zA-Z0-9])?@[a-zA-Z0-9](?:[\w.-]*[a-zA-Z0-9])?\.[a-zA-Z]{2,}`)

// Domestic phone patterns per country code. The international pattern is
// always tried as a fallback.
var domesticPhoneRegexes = map[string]*regexp.Regexp{
	"IN": regexp.MustCompile(`(?:\+91[\s-]?)?\d{10}|(?:\+91[\s-]?)?\d{5}[\s-]?\d{5}`),
	"US": regexp.MustCompile(`(?:\+1[\s-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`),
}

var intlPhoneRegex = regexp.MustCompile(`\+?\d{1,3}[\s-]?\(?\d{1,4}\)?[\s-]?\d{3,4}[\s-]?\d{3,4}`)

// FindEmail returns the first email address found in text, or "" if none.
func FindEmail(text string) string {
	return emailRegex.FindString(text)
}

// FindPhone returns the first phone number found in text, trying the
// domestic pattern for the given country code first, then the international
// pattern. Returns "" if none found.
func FindPhone(text, country string) string {
	if re, ok := domesticPhoneRegexes[country]; ok {
		if match := re.FindString(text); match != "" {
			return match
		}
	}
	return intlPhoneRegex.FindString(text)
}

// HasContactInfo reports whether text contains an email address or phone number.
func HasContactInfo(text, country string) bool {
	return FindEmail(text) != "" || FindPhone(text, country) != ""
}
