package utils

import "strings"

// ComposePhone joins a country code and national number the way the
// profile stores them: "<country_code> <national_number>".
func ComposePhone(countryCode, number string) string {
	return strings.TrimSpace(countryCode) + " " + strings.TrimSpace(number)
}

// SplitPhone splits a stored phone on the first space. Values saved
// without a country code fall back to "+1", matching the profile form
// default. The convention is lossy if the number itself contains a space;
// callers only ever store values produced by ComposePhone.
func SplitPhone(stored string) (countryCode, number string) {
	idx := strings.Index(stored, " ")
	if idx < 0 {
		return "+1", stored
	}
	return stored[:idx], stored[idx+1:]
}
