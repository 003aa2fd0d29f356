package period

import (
	"fmt"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
)

// Inputs carries the raw period selection for a report type. Monthly reads
// Month, weekly and daily read Anchor, custom reads Start and End.
type Inputs struct {
	Month  string
	Anchor time.Time
	Start  time.Time
	End    time.Time
}

// Resolve turns a report-type selection into a canonical inclusive date
// range in the reporting zone. It is pure and deterministic given now.
func Resolve(typ domain.ReportType, in Inputs, now time.Time) (domain.DateRange, error) {
	switch typ {
	case domain.ReportTypeMonthly:
		return resolveMonthly(in.Month)
	case domain.ReportTypeWeekly:
		return resolveWeekly(in.Anchor)
	case domain.ReportTypeDaily:
		return resolveDaily(in.Anchor)
	case domain.ReportTypeCustom:
		return resolveCustom(in.Start, in.End)
	default:
		return domain.DateRange{}, fmt.Errorf("unknown report type %q", typ)
	}
}

func resolveMonthly(month string) (domain.DateRange, error) {
	if month == "" {
		return domain.DateRange{}, errMissingMonth
	}
	first, err := time.ParseInLocation("2006-01", month, reportingZone)
	if err != nil {
		return domain.DateRange{}, &ValidationError{
			Code:   CodeInvalidMonth,
			Reason: fmt.Sprintf("%q is not a valid month, expected a YYYY-MM value", month),
		}
	}
	last := first.AddDate(0, 1, -1)
	return domain.DateRange{Start: StartOfDay(first), End: EndOfDay(last)}, nil
}

// resolveWeekly maps the anchor date to the Monday..Sunday span of its ISO
// week. A Sunday anchor belongs to the week that started six days earlier,
// not the next one.
func resolveWeekly(anchor time.Time) (domain.DateRange, error) {
	if anchor.IsZero() {
		return domain.DateRange{}, errMissingAnchor
	}
	day := StartOfDay(anchor)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	monday := day.AddDate(0, 0, -(weekday - 1))
	sunday := monday.AddDate(0, 0, 6)
	return domain.DateRange{Start: monday, End: EndOfDay(sunday)}, nil
}

func resolveDaily(anchor time.Time) (domain.DateRange, error) {
	if anchor.IsZero() {
		return domain.DateRange{}, errMissingAnchor
	}
	return domain.DateRange{Start: StartOfDay(anchor), End: EndOfDay(anchor)}, nil
}

// resolveCustom accepts its two anchors in either order: the earlier date
// becomes the start. Reversed inputs are swapped, not rejected.
func resolveCustom(a, b time.Time) (domain.DateRange, error) {
	if a.IsZero() || b.IsZero() {
		return domain.DateRange{}, errMissingEndpoints
	}
	start, end := StartOfDay(a), StartOfDay(b)
	if start.After(end) {
		start, end = end, start
	}
	return domain.DateRange{Start: start, End: EndOfDay(end)}, nil
}
