package period

import (
	"fmt"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
)

// Catalog returns the quick presets in display order. Each preset is a pure
// function of "now", re-evaluated at selection time and never stored.
func Catalog() []domain.Preset {
	return []domain.Preset{
		{
			ID:          "today",
			Label:       "Today",
			Description: "The current day",
			Compute: func(now time.Time) domain.DateRange {
				today := Today(now)
				return domain.DateRange{Start: today, End: EndOfDay(today)}
			},
		},
		{
			ID:          "yesterday",
			Label:       "Yesterday",
			Description: "The previous day",
			Compute: func(now time.Time) domain.DateRange {
				day := Today(now).AddDate(0, 0, -1)
				return domain.DateRange{Start: day, End: EndOfDay(day)}
			},
		},
		{
			ID:          "last-7-days",
			Label:       "Last 7 Days",
			Description: "The last seven days, ending today",
			Compute: func(now time.Time) domain.DateRange {
				today := Today(now)
				return domain.DateRange{Start: today.AddDate(0, 0, -6), End: EndOfDay(today)}
			},
		},
		{
			ID:          "last-30-days",
			Label:       "Last 30 Days",
			Description: "The last thirty days, ending today",
			Compute: func(now time.Time) domain.DateRange {
				today := Today(now)
				return domain.DateRange{Start: today.AddDate(0, 0, -29), End: EndOfDay(today)}
			},
		},
		{
			ID:          "this-month",
			Label:       "This Month",
			Description: "The current calendar month",
			Compute: func(now time.Time) domain.DateRange {
				today := Today(now)
				first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, reportingZone)
				return domain.DateRange{Start: first, End: EndOfDay(first.AddDate(0, 1, -1))}
			},
		},
		{
			ID:          "last-month",
			Label:       "Last Month",
			Description: "The previous calendar month",
			Compute: func(now time.Time) domain.DateRange {
				today := Today(now)
				first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, reportingZone).AddDate(0, -1, 0)
				return domain.DateRange{Start: first, End: EndOfDay(first.AddDate(0, 1, -1))}
			},
		},
	}
}

// Select computes the named preset's range and switches the active report
// type to Custom, so subsequent manual edits compose with the seeded range.
func Select(id string, now time.Time) (domain.PresetSelection, error) {
	for _, p := range Catalog() {
		if p.ID == id {
			return domain.PresetSelection{
				Type:  domain.ReportTypeCustom,
				Range: p.Compute(now),
			}, nil
		}
	}
	return domain.PresetSelection{}, fmt.Errorf("unknown preset %q", id)
}
