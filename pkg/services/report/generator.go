package report

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/edu-tools/board-atlas/pkg/layout"
	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/services/aggregator"
	"github.com/edu-tools/board-atlas/pkg/services/images"
	"github.com/edu-tools/board-atlas/pkg/services/period"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Params is one complete period-and-content selection.
type Params struct {
	Type          domain.ReportType
	Inputs        period.Inputs
	Fields        []domain.ContentField
	IncludeImages bool
}

// Run is the outcome of one generation cycle. Its snapshot (range, report,
// document) is discarded when the user selects a new period.
type Run struct {
	ID           string
	Type         domain.ReportType
	Range        domain.DateRange
	Label        string
	Filename     string
	Report       domain.Report
	Document     layout.Document
	FailedImages []string
}

// Exporter writes a laid-out document somewhere, typically as a PDF file.
type Exporter interface {
	RenderFile(doc layout.Document, path string) error
}

// Generator sequences resolve, validate, build, fetch, embed, and layout
// for one report. Every invocation owns its own snapshot; nothing is
// shared across concurrent generations.
type Generator struct {
	client      aggregator.Client
	embedder    images.Embedder
	geometry    layout.Geometry
	concurrency int
	now         func() time.Time
}

type GeneratorOption func(*Generator)

// WithClock injects the time source, so every boundary check in one cycle
// sees the same instant and tests can pin "now".
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

func WithGeometry(geom layout.Geometry) GeneratorOption {
	return func(g *Generator) { g.geometry = geom }
}

func WithImageConcurrency(n int) GeneratorOption {
	return func(g *Generator) { g.concurrency = n }
}

func NewGenerator(client aggregator.Client, embedder images.Embedder, opts ...GeneratorOption) *Generator {
	g := &Generator{
		client:      client,
		embedder:    embedder,
		geometry:    layout.DefaultGeometry(),
		concurrency: images.DefaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate runs one full cycle. Input and transport errors are terminal:
// no partial document is produced. Image failures only degrade the
// document with placeholders.
func (g *Generator) Generate(ctx context.Context, p Params) (*Run, error) {
	logger := zerolog.Ctx(ctx)
	now := g.now()

	rng, err := period.Resolve(p.Type, p.Inputs, now)
	if err != nil {
		return nil, err
	}
	if err := period.Validate(rng, now); err != nil {
		return nil, err
	}

	req := BuildRequest(p.Type, rng, p.Fields, p.IncludeImages)
	rep, err := g.client.FetchReport(ctx, req)
	if err != nil {
		return nil, err
	}

	var assets []layout.Asset
	var failed []string
	if p.IncludeImages {
		for _, ii := range images.EmbedAll(ctx, g.embedder, rep.Items, g.concurrency) {
			asset := layout.Asset{
				ItemIndex:  ii.ItemIndex,
				ImageIndex: ii.ImageIndex,
				Ref:        ii.Result.Ref,
				PNG:        ii.Result.PNG,
				Width:      ii.Result.Width,
				Height:     ii.Result.Height,
				Failed:     ii.Result.Failed(),
			}
			if asset.Failed {
				failed = append(failed, asset.Ref)
			}
			assets = append(assets, asset)
		}
	}

	label := PeriodLabel(p.Type, rng)
	title := rep.Title
	if title == "" {
		title = "Bulletin Report"
	}

	sections, err := layout.Plan(rep.Tallies, rep.Items, assets, layout.Options{
		Title:         title,
		Description:   rep.Description,
		PeriodLabel:   label,
		GeneratedAt:   now,
		GeneratedBy:   rep.Meta.GeneratedBy,
		IncludeImages: p.IncludeImages,
	})
	if err != nil {
		return nil, fmt.Errorf("planning document: %w", err)
	}
	doc := layout.Flow(sections, g.geometry)

	run := &Run{
		ID:           uuid.NewString(),
		Type:         p.Type,
		Range:        rng,
		Label:        label,
		Filename:     ExportFilename(p.Type, rng, now),
		Report:       rep,
		Document:     doc,
		FailedImages: failed,
	}

	logger.Info().
		Str("run_id", run.ID).
		Str("type", string(p.Type)).
		Str("period", label).
		Int("items", len(rep.Items)).
		Int("pages", doc.PageCount()).
		Int("failed_images", len(failed)).
		Msg("report generated")
	return run, nil
}

// GenerateAndExport runs Generate and writes the document to dir using the
// synthesized filename. It returns the run and the written path.
func (g *Generator) GenerateAndExport(ctx context.Context, p Params, exporter Exporter, dir string) (*Run, string, error) {
	run, err := g.Generate(ctx, p)
	if err != nil {
		return nil, "", err
	}

	path := filepath.Join(dir, run.Filename)
	if err := exporter.RenderFile(run.Document, path); err != nil {
		return nil, "", fmt.Errorf("exporting document: %w", err)
	}
	return run, path, nil
}
