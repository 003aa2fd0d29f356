// Package period resolves user-selected reporting periods into canonical,
// timezone-correct date ranges and validates them before a report request
// is issued. All day-boundary arithmetic happens in the fixed reporting
// timezone (UTC+8); callers pass "now" explicitly so every boundary check
// within one generation cycle sees the same instant.
package period

import "time"

// reportingZone is the fixed UTC+8 offset used for all day-boundary
// computations. The platform serves a single locale; DST does not apply.
var reportingZone = time.FixedZone("UTC+8", 8*60*60)

// Zone returns the reporting timezone.
func Zone() *time.Location {
	return reportingZone
}

// Today returns midnight of the current day in the reporting zone.
func Today(now time.Time) time.Time {
	return StartOfDay(now.In(reportingZone))
}

// StartOfDay returns 00:00:00.000 of t's calendar day in the reporting zone.
func StartOfDay(t time.Time) time.Time {
	t = t.In(reportingZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, reportingZone)
}

// EndOfDay returns 23:59:59.999 of t's calendar day in the reporting zone.
func EndOfDay(t time.Time) time.Time {
	t = t.In(reportingZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999000000, reportingZone)
}

// FormatDate renders t as a YYYY-MM-DD date string in the reporting zone.
func FormatDate(t time.Time) string {
	return t.In(reportingZone).Format("2006-01-02")
}

// FormatMonthToken renders t's month as a YYYY-MM token in the reporting zone.
func FormatMonthToken(t time.Time) string {
	return t.In(reportingZone).Format("2006-01")
}

// ParseDate parses a YYYY-MM-DD date string in the reporting zone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, reportingZone)
}
