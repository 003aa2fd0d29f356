package domain

import "time"

// ItemKind distinguishes the two content types a report can carry.
type ItemKind string

const (
	ItemKindAnnouncement  ItemKind = "announcement"
	ItemKindCalendarEvent ItemKind = "calendar_event"
)

// Category splits items into regular and alert buckets.
type Category string

const (
	CategoryRegular Category = "regular"
	CategoryAlert   Category = "alert"
)

// AnnouncementStatus is the publication state of an announcement.
type AnnouncementStatus string

const (
	StatusDraft     AnnouncementStatus = "draft"
	StatusPending   AnnouncementStatus = "pending"
	StatusPublished AnnouncementStatus = "published"
	StatusArchived  AnnouncementStatus = "archived"
)

// ContentField names a content type in an aggregation request.
type ContentField string

const (
	FieldAnnouncements  ContentField = "Announcements"
	FieldSchoolCalendar ContentField = "SchoolCalendar"
)

// AnnouncementInfo carries announcement-specific status.
type AnnouncementInfo struct {
	Status       AnnouncementStatus
	VisibleUntil time.Time
}

// EventInfo carries calendar-event-specific status.
type EventInfo struct {
	Active bool
	Start  time.Time
	End    time.Time
}

// ReportItem is one aggregated content item. Owned by the external
// aggregator; the engine treats it as read-only input.
type ReportItem struct {
	ID          string
	Kind        ItemKind
	Title       string
	Body        string
	OccurredAt  time.Time
	Category    Category
	Images      []string
	Attribution string

	// Exactly one of the two is set, matching Kind.
	Announcement *AnnouncementInfo
	Event        *EventInfo
}

// TallyGroup holds the precomputed counts for one content type.
// Invariant: Total == Regular + Alert, all non-negative.
type TallyGroup struct {
	Regular int
	Alert   int
	Total   int
}

// ReportTallies holds the per-content-type counts returned by the aggregator.
type ReportTallies struct {
	Announcements  TallyGroup
	CalendarEvents TallyGroup
}

// ReportMeta describes who produced the aggregated data and when.
type ReportMeta struct {
	GeneratedAt time.Time
	GeneratedBy string
}

// Report is the aggregated payload the layout engine consumes.
type Report struct {
	Title       string
	Description string
	Tallies     ReportTallies
	Items       []ReportItem
	Meta        ReportMeta
}
