package report

import (
	"testing"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodLabel(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, period.Zone())

	tests := []struct {
		name   string
		typ    domain.ReportType
		inputs period.Inputs
		want   string
	}{
		{
			name:   "monthly",
			typ:    domain.ReportTypeMonthly,
			inputs: period.Inputs{Month: "2025-03"},
			want:   "Month: March 2025",
		},
		{
			name:   "weekly",
			typ:    domain.ReportTypeWeekly,
			inputs: period.Inputs{Anchor: time.Date(2025, 3, 5, 0, 0, 0, 0, period.Zone())},
			want:   "Week: Mar 3, 2025 - Mar 9, 2025",
		},
		{
			name:   "daily",
			typ:    domain.ReportTypeDaily,
			inputs: period.Inputs{Anchor: time.Date(2025, 3, 5, 0, 0, 0, 0, period.Zone())},
			want:   "Day: Mar 5, 2025",
		},
		{
			name: "custom",
			typ:  domain.ReportTypeCustom,
			inputs: period.Inputs{
				Start: time.Date(2025, 1, 5, 0, 0, 0, 0, period.Zone()),
				End:   time.Date(2025, 1, 10, 0, 0, 0, 0, period.Zone()),
			},
			want: "Period: Jan 5, 2025 - Jan 10, 2025",
		},
		{
			name: "custom collapsing to one day",
			typ:  domain.ReportTypeCustom,
			inputs: period.Inputs{
				Start: time.Date(2025, 1, 5, 0, 0, 0, 0, period.Zone()),
				End:   time.Date(2025, 1, 5, 0, 0, 0, 0, period.Zone()),
			},
			want: "Day: Jan 5, 2025",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rng, err := period.Resolve(tc.typ, tc.inputs, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, PeriodLabel(tc.typ, rng))
		})
	}
}

func TestExportFilename_Monthly(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, period.Zone())
	rng, err := period.Resolve(domain.ReportTypeMonthly, period.Inputs{Month: "2025-03"}, now)
	require.NoError(t, err)

	assert.Equal(t, "monthly-report-202503-20250829.pdf",
		ExportFilename(domain.ReportTypeMonthly, rng, now))
}

func TestExportFilename_RangeTokensDisambiguateBoundaries(t *testing.T) {
	now := time.Date(2025, 8, 29, 12, 0, 0, 0, period.Zone())
	a := domain.DateRange{
		Start: time.Date(2025, 1, 5, 0, 0, 0, 0, period.Zone()),
		End:   period.EndOfDay(time.Date(2025, 1, 10, 0, 0, 0, 0, period.Zone())),
	}
	b := domain.DateRange{
		Start: time.Date(2025, 1, 5, 0, 0, 0, 0, period.Zone()),
		End:   period.EndOfDay(time.Date(2025, 1, 11, 0, 0, 0, 0, period.Zone())),
	}

	nameA := ExportFilename(domain.ReportTypeCustom, a, now)
	nameB := ExportFilename(domain.ReportTypeCustom, b, now)

	assert.Equal(t, "custom-report-20250105-20250110-20250829.pdf", nameA)
	assert.NotEqual(t, nameA, nameB)
}

func TestExportFilename_GenerationDateUsesReportingZone(t *testing.T) {
	// 2025-08-29 23:00 UTC is already 2025-08-30 in the reporting zone.
	now := time.Date(2025, 8, 29, 23, 0, 0, 0, time.UTC)
	rng := domain.DateRange{
		Start: time.Date(2025, 8, 1, 0, 0, 0, 0, period.Zone()),
		End:   period.EndOfDay(time.Date(2025, 8, 1, 0, 0, 0, 0, period.Zone())),
	}

	name := ExportFilename(domain.ReportTypeDaily, rng, now)
	assert.Equal(t, "daily-report-20250801-20250801-20250830.pdf", name)
}
