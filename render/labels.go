// Package render builds the label subtree one variant displays. Labels are
// mounted instances keyed by (locale, item, generation): a generation bump
// renders every key new, so every instance is torn down and reconstructed
// rather than patched, and formatter construction runs again for all of them.
package render

import "time"

// LocaleHash sums the character codes of a locale identifier.
func LocaleHash(locale string) int {
	sum := 0
	for _, r := range locale {
		sum += int(r)
	}
	return sum
}

// DateFor returns the instant a label renders: today shifted by
// 365*generation + LocaleHash(locale) days. Every item in a batch therefore
// renders a distinct date, and every trigger changes all dates, so output
// string caching can never stand in for real formatting work. Pure in
// (locale, generation, today).
func DateFor(locale string, generation int, today time.Time) time.Time {
	return today.AddDate(0, 0, 365*generation+LocaleHash(locale))
}
