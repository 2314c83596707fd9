package strutil

import "strings"

// NormalizeUpper trims surrounding whitespace and converts to upper case.
// Use for callsigns, park references, sections and other tokens where case
// is not significant.
func NormalizeUpper(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

// CollapseUpper upper-cases value and squeezes every whitespace run to a
// single space, so "2a  epa " becomes "2A EPA".
func CollapseUpper(value string) string {
	return strings.ToUpper(strings.Join(strings.Fields(value), " "))
}

// EqualFold compares two tokens ignoring case and surrounding whitespace.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// SafeFileComponent replaces path separators so callsigns such as W1AW/P can
// be used inside a single file name.
func SafeFileComponent(value string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(strings.TrimSpace(value))
}
