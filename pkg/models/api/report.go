package api

import "time"

// ReportRequest is the outbound payload for the aggregation service.
// Exactly one of the date-shaped field groups is populated, selected by
// report type: Month for monthly, WeekStart/WeekEnd for weekly,
// StartDate/EndDate for daily and custom.
type ReportRequest struct {
	Month     string `json:"month,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	WeekStart string `json:"weekStart,omitempty"`
	WeekEnd   string `json:"weekEnd,omitempty"`

	Fields        []string `json:"fields"`
	IncludeImages bool     `json:"includeImages"`
}

// TallyGroup mirrors the per-content-type counts on the wire.
type TallyGroup struct {
	Regular int `json:"regular"`
	Alert   int `json:"alert"`
	Total   int `json:"total"`
}

type ReportTallies struct {
	Announcements  TallyGroup `json:"announcements"`
	CalendarEvents TallyGroup `json:"calendarEvents"`
}

// ReportItem is one aggregated content item as returned by the service.
// Status/VisibleUntil are set for announcements, Active/EventStart/EventEnd
// for calendar events.
type ReportItem struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	OccurredAt  time.Time `json:"occurredAt"`
	Category    string    `json:"category"`
	Images      []string  `json:"images,omitempty"`
	Attribution string    `json:"attribution"`

	Status       string     `json:"status,omitempty"`
	VisibleUntil *time.Time `json:"visibleUntil,omitempty"`
	Active       *bool      `json:"active,omitempty"`
	EventStart   *time.Time `json:"eventStart,omitempty"`
	EventEnd     *time.Time `json:"eventEnd,omitempty"`
}

type ReportMeta struct {
	GeneratedAt time.Time `json:"generatedAt"`
	GeneratedBy string    `json:"generatedBy"`
}

type Report struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Tallies     ReportTallies `json:"tallies"`
	Items       []ReportItem  `json:"items"`
	Meta        ReportMeta    `json:"meta"`
}

// ReportResponse is the inbound envelope from the aggregation service.
type ReportResponse struct {
	Report Report `json:"report"`
}

// Preset is the API shape of a period preset, with its range computed at
// request time.
type Preset struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
}

// ResolveRequest is a period selection submitted for resolution.
type ResolveRequest struct {
	Type      string `json:"type"`
	Month     string `json:"month,omitempty"`
	Anchor    string `json:"anchor,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

// ResolvedRange is a validated, canonical period.
type ResolvedRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
	Label string `json:"label"`
}

// GenerateRequest asks the engine to produce a report document.
type GenerateRequest struct {
	ResolveRequest
	Fields        []string `json:"fields"`
	IncludeImages bool     `json:"includeImages"`
}

// GenerateResponse summarizes a finished generation run.
type GenerateResponse struct {
	ID           string        `json:"id"`
	Label        string        `json:"label"`
	Filename     string        `json:"filename"`
	Pages        int           `json:"pages"`
	Items        int           `json:"items"`
	Tallies      ReportTallies `json:"tallies"`
	FailedImages []string      `json:"failedImages,omitempty"`
}

// Error is the body of any non-2xx response.
type Error struct {
	Error string `json:"error"`
}
