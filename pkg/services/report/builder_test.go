package report

import (
	"testing"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthlyRange(t *testing.T) domain.DateRange {
	t.Helper()
	rng, err := period.Resolve(domain.ReportTypeMonthly, period.Inputs{Month: "2025-03"}, time.Now())
	require.NoError(t, err)
	return rng
}

func TestBuildRequest_MonthlyCarriesMonthTokenOnly(t *testing.T) {
	req := BuildRequest(domain.ReportTypeMonthly, monthlyRange(t),
		[]domain.ContentField{domain.FieldAnnouncements, domain.FieldSchoolCalendar}, true)

	assert.Equal(t, "2025-03", req.Month)
	assert.Empty(t, req.StartDate)
	assert.Empty(t, req.EndDate)
	assert.Empty(t, req.WeekStart)
	assert.Empty(t, req.WeekEnd)
	assert.Equal(t, []string{"Announcements", "SchoolCalendar"}, req.Fields)
	assert.True(t, req.IncludeImages)
}

func TestBuildRequest_WeeklyCarriesWeekBoundsOnly(t *testing.T) {
	anchor := time.Date(2025, 8, 27, 0, 0, 0, 0, period.Zone())
	rng, err := period.Resolve(domain.ReportTypeWeekly, period.Inputs{Anchor: anchor}, time.Now())
	require.NoError(t, err)

	req := BuildRequest(domain.ReportTypeWeekly, rng, []domain.ContentField{domain.FieldAnnouncements}, false)

	assert.Equal(t, "2025-08-25", req.WeekStart)
	assert.Equal(t, "2025-08-31", req.WeekEnd)
	assert.Empty(t, req.Month)
	assert.Empty(t, req.StartDate)
	assert.False(t, req.IncludeImages)
}

func TestBuildRequest_DailyAndCustomCarryExplicitDates(t *testing.T) {
	for _, typ := range []domain.ReportType{domain.ReportTypeDaily, domain.ReportTypeCustom} {
		rng := domain.DateRange{
			Start: time.Date(2025, 1, 5, 0, 0, 0, 0, period.Zone()),
			End:   period.EndOfDay(time.Date(2025, 1, 10, 0, 0, 0, 0, period.Zone())),
		}

		req := BuildRequest(typ, rng, nil, false)

		assert.Equal(t, "2025-01-05", req.StartDate, "type %s", typ)
		assert.Equal(t, "2025-01-10", req.EndDate, "type %s", typ)
		assert.Empty(t, req.Month)
		assert.Empty(t, req.WeekStart)
	}
}
