// Package layout turns tallies and report items into a paginated document.
// Layout is two-phase: Plan materializes the ordered sections, Flow runs the
// page cursor over them. The page-break rule is that no atomic block (a
// table's caption+header+first row, or a single image) is ever split across
// two pages; multi-row detail tables alone may break between rows.
package layout

import (
	"fmt"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/period"
)

// Section is one ordered unit of document content.
type Section interface {
	isSection()
}

// TitleBlock opens the document on page one.
type TitleBlock struct {
	Title       string
	Description string
	PeriodLabel string
	GeneratedAt time.Time
	GeneratedBy string
}

// Table is a caption, a column header row, and data rows. Breakable tables
// may split between rows; unbreakable ones are placed as a single unit.
type Table struct {
	Caption   string
	Columns   []string
	Rows      [][]string
	Breakable bool

	// Continued marks a chunk that carries on a table started on an
	// earlier page. Set by Flow, never by Plan.
	Continued bool
}

// SectionHeader titles the image section.
type SectionHeader struct {
	Text string
}

// Image is one embedded picture with its fixed page footprint.
type Image struct {
	Ref     string
	Caption string
	PNG     []byte
	Width   int
	Height  int
}

// Placeholder stands in for an image that failed to embed.
type Placeholder struct {
	Ref string
}

func (TitleBlock) isSection()    {}
func (Table) isSection()         {}
func (SectionHeader) isSection() {}
func (Image) isSection()         {}
func (Placeholder) isSection()   {}

// Asset is a resolved (item, image) pair in item order. Failed assets
// become placeholders.
type Asset struct {
	ItemIndex  int
	ImageIndex int
	Ref        string
	PNG        []byte
	Width      int
	Height     int
	Failed     bool
}

// Options configures a single layout pass.
type Options struct {
	Title         string
	Description   string
	PeriodLabel   string
	GeneratedAt   time.Time
	GeneratedBy   string
	IncludeImages bool
}

// Plan materializes the ordered section sequence: title block, summary
// table, one detail table per non-empty kind (announcements first), then
// the image section when requested. Tallies are invariant-checked here;
// a violating input is malformed, not coerced.
func Plan(tallies domain.ReportTallies, items []domain.ReportItem, assets []Asset, opts Options) ([]Section, error) {
	if err := checkTallies(tallies); err != nil {
		return nil, err
	}

	sections := []Section{
		TitleBlock{
			Title:       opts.Title,
			Description: opts.Description,
			PeriodLabel: opts.PeriodLabel,
			GeneratedAt: opts.GeneratedAt,
			GeneratedBy: opts.GeneratedBy,
		},
		summaryTable(tallies),
	}

	announcements, events := partition(items)
	if len(announcements) > 0 {
		sections = append(sections, announcementTable(announcements))
	}
	if len(events) > 0 {
		sections = append(sections, eventTable(events))
	}

	if opts.IncludeImages && len(assets) > 0 {
		sections = append(sections, SectionHeader{Text: "Attached Images"})
		for _, a := range assets {
			if a.Failed {
				sections = append(sections, Placeholder{Ref: a.Ref})
				continue
			}
			caption := a.Ref
			if a.ItemIndex < len(items) {
				caption = fmt.Sprintf("%s (%d)", items[a.ItemIndex].Title, a.ImageIndex+1)
			}
			sections = append(sections, Image{
				Ref:     a.Ref,
				Caption: caption,
				PNG:     a.PNG,
				Width:   a.Width,
				Height:  a.Height,
			})
		}
	}

	return sections, nil
}

func checkTallies(t domain.ReportTallies) error {
	check := func(name string, g domain.TallyGroup) error {
		if g.Regular < 0 || g.Alert < 0 || g.Total < 0 {
			return fmt.Errorf("%s tallies contain negative counts", name)
		}
		if g.Total != g.Regular+g.Alert {
			return fmt.Errorf("%s tallies are inconsistent: total %d != regular %d + alert %d",
				name, g.Total, g.Regular, g.Alert)
		}
		return nil
	}
	if err := check("announcement", t.Announcements); err != nil {
		return err
	}
	return check("calendar event", t.CalendarEvents)
}

// partition splits items by kind, preserving input order within each kind.
// Announcements always render before calendar events.
func partition(items []domain.ReportItem) (announcements, events []domain.ReportItem) {
	for _, it := range items {
		switch it.Kind {
		case domain.ItemKindAnnouncement:
			announcements = append(announcements, it)
		case domain.ItemKindCalendarEvent:
			events = append(events, it)
		}
	}
	return announcements, events
}

func summaryTable(t domain.ReportTallies) Table {
	row := func(content, category string, n int) []string {
		return []string{content, category, fmt.Sprintf("%d", n)}
	}
	return Table{
		Caption: "Summary",
		Columns: []string{"Content", "Category", "Count"},
		Rows: [][]string{
			row("Announcements", "Regular", t.Announcements.Regular),
			row("Announcements", "Alert", t.Announcements.Alert),
			row("Calendar Events", "Regular", t.CalendarEvents.Regular),
			row("Calendar Events", "Alert", t.CalendarEvents.Alert),
		},
	}
}

// The kind-specific column shapes live here and nowhere else; the cursor
// and page-break logic never looks at item kinds.

func announcementTable(items []domain.ReportItem) Table {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		status, visibleUntil := "", ""
		if it.Announcement != nil {
			status = string(it.Announcement.Status)
			if !it.Announcement.VisibleUntil.IsZero() {
				visibleUntil = period.FormatDate(it.Announcement.VisibleUntil)
			}
		}
		rows = append(rows, []string{
			it.Title,
			period.FormatDate(it.OccurredAt),
			string(it.Category),
			status,
			visibleUntil,
			it.Attribution,
		})
	}
	return Table{
		Caption:   "Announcements",
		Columns:   []string{"Title", "Date", "Category", "Status", "Visible Until", "Posted By"},
		Rows:      rows,
		Breakable: true,
	}
}

func eventTable(items []domain.ReportItem) Table {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		active, starts, ends := "", "", ""
		if it.Event != nil {
			active = "inactive"
			if it.Event.Active {
				active = "active"
			}
			if !it.Event.Start.IsZero() {
				starts = period.FormatDate(it.Event.Start)
			}
			if !it.Event.End.IsZero() {
				ends = period.FormatDate(it.Event.End)
			}
		}
		rows = append(rows, []string{
			it.Title,
			period.FormatDate(it.OccurredAt),
			string(it.Category),
			active,
			starts,
			ends,
			it.Attribution,
		})
	}
	return Table{
		Caption:   "Calendar Events",
		Columns:   []string{"Title", "Date", "Category", "Active", "Starts", "Ends", "Posted By"},
		Rows:      rows,
		Breakable: true,
	}
}
