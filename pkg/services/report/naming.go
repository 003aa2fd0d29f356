package report

import (
	"fmt"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/period"
)

const labelDate = "Jan 2, 2006"

// PeriodLabel derives the on-screen description of a resolved range. A
// custom range that collapses to a single day reads like a daily one.
func PeriodLabel(typ domain.ReportType, rng domain.DateRange) string {
	switch typ {
	case domain.ReportTypeMonthly:
		return fmt.Sprintf("Month: %s", rng.Start.Format("January 2006"))
	case domain.ReportTypeWeekly:
		return fmt.Sprintf("Week: %s - %s", rng.Start.Format(labelDate), rng.End.Format(labelDate))
	case domain.ReportTypeDaily:
		return fmt.Sprintf("Day: %s", rng.Start.Format(labelDate))
	default:
		if sameDay(rng.Start, rng.End) {
			return fmt.Sprintf("Day: %s", rng.Start.Format(labelDate))
		}
		return fmt.Sprintf("Period: %s - %s", rng.Start.Format(labelDate), rng.End.Format(labelDate))
	}
}

// ExportFilename derives the filesystem-safe export name. Both range
// boundaries are tokenized for non-monthly types so two ranges that differ
// only by boundary rounding never collide on the date components.
func ExportFilename(typ domain.ReportType, rng domain.DateRange, generatedAt time.Time) string {
	gen := generatedAt.In(period.Zone()).Format("20060102")
	if typ == domain.ReportTypeMonthly {
		return fmt.Sprintf("monthly-report-%s-%s.pdf", rng.Start.Format("200601"), gen)
	}
	return fmt.Sprintf("%s-report-%s-%s-%s.pdf",
		typ, rng.Start.Format("20060102"), rng.End.Format("20060102"), gen)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
