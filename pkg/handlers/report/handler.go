package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/edu-tools/board-atlas/pkg/models/api"
	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/aggregator"
	"github.com/edu-tools/board-atlas/pkg/services/period"
	"github.com/edu-tools/board-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

// Service is the slice of the report generator the handler needs.
type Service interface {
	Generate(ctx context.Context, p report.Params) (*report.Run, error)
}

type Handler struct {
	reports   Service
	exporter  report.Exporter
	exportDir string
	now       func() time.Time
}

type Option func(*Handler)

// WithExporter enables PDF export on generation and the download endpoint,
// writing documents into dir.
func WithExporter(exporter report.Exporter, dir string) Option {
	return func(h *Handler) {
		h.exporter = exporter
		h.exportDir = dir
	}
}

func NewHandler(reports Service, opts ...Option) *Handler {
	h := &Handler{reports: reports, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ListPresets returns the preset catalog with ranges computed at request
// time; presets are pure functions of now, never stored.
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	now := h.now()

	var response []api.Preset
	for _, p := range period.Catalog() {
		rng := p.Compute(now)
		response = append(response, api.Preset{
			ID:          p.ID,
			Label:       p.Label,
			Description: p.Description,
			Type:        string(domain.ReportTypeCustom),
			Start:       period.FormatDate(rng.Start),
			End:         period.FormatDate(rng.End),
		})
	}

	writeJSON(w, http.StatusOK, response, logger)
}

// ResolveRange resolves and validates a period selection without issuing a
// report request, so the console can show the canonical range as the user
// edits the form.
func (h *Handler) ResolveRange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ResolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body is not valid JSON", logger)
		return
	}

	typ, inputs, err := mapSelection(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}

	now := h.now()
	rng, err := period.Resolve(typ, inputs, now)
	if err == nil {
		err = period.Validate(rng, now)
	}
	if err != nil {
		if ve, ok := period.IsValidationError(err); ok {
			writeError(w, http.StatusUnprocessableEntity, ve.Reason, logger)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}

	writeJSON(w, http.StatusOK, api.ResolvedRange{
		Start: period.FormatDate(rng.Start),
		End:   period.FormatDate(rng.End),
		Days:  rng.Days(),
		Label: report.PeriodLabel(typ, rng),
	}, logger)
}

// GenerateReport runs a full generation cycle and returns the run summary.
// Input errors come back as 422 with the user-facing reason; aggregation
// failures as 502 with a retryable hint.
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body is not valid JSON", logger)
		return
	}

	typ, inputs, err := mapSelection(req.ResolveRequest)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error(), logger)
		return
	}

	var fields []domain.ContentField
	for _, f := range req.Fields {
		fields = append(fields, domain.ContentField(f))
	}

	run, err := h.reports.Generate(ctx, report.Params{
		Type:          typ,
		Inputs:        inputs,
		Fields:        fields,
		IncludeImages: req.IncludeImages,
	})
	if err != nil {
		if ve, ok := period.IsValidationError(err); ok {
			writeError(w, http.StatusUnprocessableEntity, ve.Reason, logger)
			return
		}
		var te *aggregator.TransportError
		if errors.As(err, &te) {
			logger.Error().Err(err).Msg("aggregation failed")
			writeError(w, http.StatusBadGateway, "the report service is unavailable, try again", logger)
			return
		}
		logger.Error().Err(err).Msg("report generation failed")
		writeError(w, http.StatusInternalServerError, "report generation failed", logger)
		return
	}

	if h.exporter != nil {
		path := filepath.Join(h.exportDir, run.Filename)
		if err := h.exporter.RenderFile(run.Document, path); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("export failed")
			writeError(w, http.StatusInternalServerError, "report export failed", logger)
			return
		}
	}

	writeJSON(w, http.StatusOK, api.GenerateResponse{
		ID:       run.ID,
		Label:    run.Label,
		Filename: run.Filename,
		Pages:    run.Document.PageCount(),
		Items:    len(run.Report.Items),
		Tallies: api.ReportTallies{
			Announcements:  api.TallyGroup(run.Report.Tallies.Announcements),
			CalendarEvents: api.TallyGroup(run.Report.Tallies.CalendarEvents),
		},
		FailedImages: run.FailedImages,
	}, logger)
}

// DownloadReport streams a previously exported PDF by filename.
func (h *Handler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if h.exporter == nil {
		writeError(w, http.StatusNotFound, "report downloads are not enabled", logger)
		return
	}

	// Strip any path components so the lookup stays inside the export dir.
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if filename == "." || filename == string(filepath.Separator) || filepath.Ext(filename) != ".pdf" {
		writeError(w, http.StatusBadRequest, "invalid report filename", logger)
		return
	}

	path := filepath.Join(h.exportDir, filename)
	if _, err := os.Stat(path); err != nil {
		writeError(w, http.StatusNotFound, "report not found", logger)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

// mapSelection converts the wire selection into resolver inputs. Date
// parsing failures are input errors with the offending field named.
func mapSelection(req api.ResolveRequest) (domain.ReportType, period.Inputs, error) {
	typ := domain.ReportType(req.Type)
	inputs := period.Inputs{Month: req.Month}

	parse := func(field, value string) (time.Time, error) {
		if value == "" {
			return time.Time{}, nil
		}
		t, err := period.ParseDate(value)
		if err != nil {
			return time.Time{}, fmt.Errorf("%s is not a valid date, expected YYYY-MM-DD", field)
		}
		return t, nil
	}

	var err error
	if inputs.Anchor, err = parse("anchor", req.Anchor); err != nil {
		return typ, inputs, err
	}
	if inputs.Start, err = parse("startDate", req.StartDate); err != nil {
		return typ, inputs, err
	}
	if inputs.End, err = parse("endDate", req.EndDate); err != nil {
		return typ, inputs, err
	}
	return typ, inputs, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}, logger *zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, reason string, logger *zerolog.Logger) {
	writeJSON(w, status, api.Error{Error: reason}, logger)
}
