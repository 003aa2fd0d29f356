// Package report shapes aggregation requests, derives period labels and
// export filenames, and orchestrates the generate-and-export cycle.
package report

import (
	"github.com/edu-tools/board-atlas/pkg/models/api"
	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/period"
)

// BuildRequest maps a validated range plus content filters into the outbound
// request for the aggregation service. Exactly one date field group is
// populated, selected by report type. Pure payload shaping, no network.
func BuildRequest(
	typ domain.ReportType,
	rng domain.DateRange,
	fields []domain.ContentField,
	includeImages bool,
) api.ReportRequest {
	req := api.ReportRequest{
		Fields:        make([]string, 0, len(fields)),
		IncludeImages: includeImages,
	}
	for _, f := range fields {
		req.Fields = append(req.Fields, string(f))
	}

	switch typ {
	case domain.ReportTypeMonthly:
		req.Month = period.FormatMonthToken(rng.Start)
	case domain.ReportTypeWeekly:
		req.WeekStart = period.FormatDate(rng.Start)
		req.WeekEnd = period.FormatDate(rng.End)
	default:
		req.StartDate = period.FormatDate(rng.Start)
		req.EndDate = period.FormatDate(rng.End)
	}
	return req
}
