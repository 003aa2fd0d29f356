package adapters

import (
	"fmt"

	"github.com/edu-tools/board-atlas/pkg/models/api"
	"github.com/edu-tools/board-atlas/pkg/models/domain"
)

// MapReportResponseToDomain converts an aggregation-service response into
// the domain report, rejecting payloads that violate the tally invariants.
func MapReportResponseToDomain(resp api.ReportResponse) (domain.Report, error) {
	tallies, err := mapTallies(resp.Report.Tallies)
	if err != nil {
		return domain.Report{}, fmt.Errorf("malformed report payload: %w", err)
	}

	items := make([]domain.ReportItem, 0, len(resp.Report.Items))
	for i, it := range resp.Report.Items {
		item, err := MapReportItemToDomain(it)
		if err != nil {
			return domain.Report{}, fmt.Errorf("malformed report payload: item %d: %w", i, err)
		}
		items = append(items, item)
	}

	return domain.Report{
		Title:       resp.Report.Title,
		Description: resp.Report.Description,
		Tallies:     tallies,
		Items:       items,
		Meta: domain.ReportMeta{
			GeneratedAt: resp.Report.Meta.GeneratedAt,
			GeneratedBy: resp.Report.Meta.GeneratedBy,
		},
	}, nil
}

func mapTallies(t api.ReportTallies) (domain.ReportTallies, error) {
	groups := map[string]api.TallyGroup{
		"announcements":  t.Announcements,
		"calendarEvents": t.CalendarEvents,
	}
	for name, g := range groups {
		if g.Regular < 0 || g.Alert < 0 || g.Total < 0 {
			return domain.ReportTallies{}, fmt.Errorf("%s tallies contain negative counts", name)
		}
		if g.Total != g.Regular+g.Alert {
			return domain.ReportTallies{}, fmt.Errorf(
				"%s tallies are inconsistent: total %d != regular %d + alert %d",
				name, g.Total, g.Regular, g.Alert)
		}
	}
	return domain.ReportTallies{
		Announcements:  domain.TallyGroup(t.Announcements),
		CalendarEvents: domain.TallyGroup(t.CalendarEvents),
	}, nil
}

func MapReportItemToDomain(it api.ReportItem) (domain.ReportItem, error) {
	item := domain.ReportItem{
		ID:          it.ID,
		Kind:        domain.ItemKind(it.Kind),
		Title:       it.Title,
		Body:        it.Body,
		OccurredAt:  it.OccurredAt,
		Category:    domain.Category(it.Category),
		Images:      append([]string(nil), it.Images...),
		Attribution: it.Attribution,
	}

	switch item.Kind {
	case domain.ItemKindAnnouncement:
		info := &domain.AnnouncementInfo{Status: domain.AnnouncementStatus(it.Status)}
		if it.VisibleUntil != nil {
			info.VisibleUntil = *it.VisibleUntil
		}
		item.Announcement = info
	case domain.ItemKindCalendarEvent:
		info := &domain.EventInfo{}
		if it.Active != nil {
			info.Active = *it.Active
		}
		if it.EventStart != nil {
			info.Start = *it.EventStart
		}
		if it.EventEnd != nil {
			info.End = *it.EventEnd
		}
		item.Event = info
	default:
		return domain.ReportItem{}, fmt.Errorf("unknown item kind %q", it.Kind)
	}

	switch item.Category {
	case domain.CategoryRegular, domain.CategoryAlert:
	default:
		return domain.ReportItem{}, fmt.Errorf("unknown item category %q", it.Category)
	}

	return item, nil
}
