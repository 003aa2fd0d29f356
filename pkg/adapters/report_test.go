package adapters

import (
	"testing"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/api"
	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validResponse() api.ReportResponse {
	active := true
	visible := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	return api.ReportResponse{
		Report: api.Report{
			Title: "March Bulletin Report",
			Tallies: api.ReportTallies{
				Announcements:  api.TallyGroup{Regular: 3, Alert: 1, Total: 4},
				CalendarEvents: api.TallyGroup{Regular: 2, Alert: 0, Total: 2},
			},
			Items: []api.ReportItem{
				{
					ID:           "a1",
					Kind:         "announcement",
					Title:        "Spring schedule",
					Category:     "regular",
					Status:       "published",
					VisibleUntil: &visible,
				},
				{
					ID:         "e1",
					Kind:       "calendar_event",
					Title:      "Sports day",
					Category:   "alert",
					Active:     &active,
					EventStart: &visible,
				},
			},
			Meta: api.ReportMeta{GeneratedBy: "aggregator"},
		},
	}
}

func TestMapReportResponseToDomain(t *testing.T) {
	report, err := MapReportResponseToDomain(validResponse())
	require.NoError(t, err)

	assert.Equal(t, "March Bulletin Report", report.Title)
	assert.Equal(t, 4, report.Tallies.Announcements.Total)
	require.Len(t, report.Items, 2)

	ann := report.Items[0]
	require.NotNil(t, ann.Announcement)
	assert.Nil(t, ann.Event)
	assert.Equal(t, domain.StatusPublished, ann.Announcement.Status)

	ev := report.Items[1]
	require.NotNil(t, ev.Event)
	assert.Nil(t, ev.Announcement)
	assert.True(t, ev.Event.Active)
}

func TestMapReportResponseToDomain_InconsistentTallies(t *testing.T) {
	resp := validResponse()
	resp.Report.Tallies.Announcements.Total = 7

	_, err := MapReportResponseToDomain(resp)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed report payload")
	assert.Contains(t, err.Error(), "total 7 != regular 3 + alert 1")
}

func TestMapReportResponseToDomain_NegativeCounts(t *testing.T) {
	resp := validResponse()
	resp.Report.Tallies.CalendarEvents = api.TallyGroup{Regular: -1, Alert: 1, Total: 0}

	_, err := MapReportResponseToDomain(resp)
	assert.Error(t, err)
}

func TestMapReportItemToDomain_UnknownKind(t *testing.T) {
	_, err := MapReportItemToDomain(api.ReportItem{ID: "x", Kind: "poll", Category: "regular"})
	assert.Error(t, err)
}

func TestMapReportItemToDomain_UnknownCategory(t *testing.T) {
	_, err := MapReportItemToDomain(api.ReportItem{ID: "x", Kind: "announcement", Category: "urgent"})
	assert.Error(t, err)
}
