package domain

import "time"

// ReportType selects which raw inputs feed the date-range resolver.
type ReportType string

const (
	ReportTypeMonthly ReportType = "monthly"
	ReportTypeWeekly  ReportType = "weekly"
	ReportTypeDaily   ReportType = "daily"
	ReportTypeCustom  ReportType = "custom"
)

// DateRange is an inclusive pair of instants in the reporting timezone.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of calendar days the range spans, inclusive.
func (r DateRange) Days() int {
	start := time.Date(r.Start.Year(), r.Start.Month(), r.Start.Day(), 0, 0, 0, 0, r.Start.Location())
	end := time.Date(r.End.Year(), r.End.Month(), r.End.Day(), 0, 0, 0, 0, r.End.Location())
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Preset is a named shortcut producing a DateRange from "now".
// Selecting a preset switches the active report type to Custom and seeds
// the custom start/end with the computed range.
type Preset struct {
	ID          string
	Label       string
	Description string
	Compute     func(now time.Time) DateRange
}

// PresetSelection is the result of picking a preset.
type PresetSelection struct {
	Type  ReportType
	Range DateRange
}
