package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/edu-tools/board-atlas/pkg/models/domain"
	"github.com/edu-tools/board-atlas/pkg/runtime/terminal/export"
	"github.com/edu-tools/board-atlas/pkg/services/period"
	"github.com/edu-tools/board-atlas/pkg/services/report"
	"github.com/spf13/cobra"
)

type GenerateCmd struct {
	reportType    string
	month         string
	anchor        string
	startDate     string
	endDate       string
	preset        string
	fields        []string
	includeImages bool
	outDir        string

	generator *report.Generator
	exporter  report.Exporter
	reporter  *export.Reporter
}

func NewGenerateCmd(
	generator *report.Generator,
	exporter report.Exporter,
	defaultOutDir string,
	reporter *export.Reporter,
) *cobra.Command {
	gc := &GenerateCmd{generator: generator, exporter: exporter, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a bulletin report and export it as a PDF",
		RunE:  gc.run,
	}

	cmd.Flags().StringVar(&gc.reportType, "type", "monthly", "Report type (monthly, weekly, daily, custom)")
	cmd.Flags().StringVar(&gc.month, "month", "", "Month token for monthly reports (YYYY-MM)")
	cmd.Flags().StringVar(&gc.anchor, "date", "", "Anchor date for weekly/daily reports (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.startDate, "start", "", "Start date for custom reports (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.endDate, "end", "", "End date for custom reports (YYYY-MM-DD)")
	cmd.Flags().StringVar(&gc.preset, "preset", "", "Quick preset (today, yesterday, last-7-days, ...); overrides type and dates")
	cmd.Flags().StringSliceVar(&gc.fields, "fields", []string{"Announcements", "SchoolCalendar"}, "Content types to include")
	cmd.Flags().BoolVar(&gc.includeImages, "images", false, "Embed item images in the document")
	cmd.Flags().StringVar(&gc.outDir, "out", defaultOutDir, "Directory to write the exported PDF to")

	return cmd
}

func (gc *GenerateCmd) run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 120*time.Second)
	defer cancel()

	params, err := gc.buildParams()
	if err != nil {
		return err
	}

	run, path, err := gc.generator.GenerateAndExport(ctx, params, gc.exporter, gc.outDir)
	if err != nil {
		if ve, ok := period.IsValidationError(err); ok {
			return fmt.Errorf("invalid period selection: %s", ve.Reason)
		}
		return fmt.Errorf("failed to generate report: %w", err)
	}

	return gc.reporter.Handle(run, path)
}

func (gc *GenerateCmd) buildParams() (report.Params, error) {
	var fields []domain.ContentField
	for _, f := range gc.fields {
		fields = append(fields, domain.ContentField(f))
	}

	if gc.preset != "" {
		sel, err := period.Select(gc.preset, time.Now())
		if err != nil {
			return report.Params{}, err
		}
		return report.Params{
			Type: sel.Type,
			Inputs: period.Inputs{
				Start: sel.Range.Start,
				End:   sel.Range.End,
			},
			Fields:        fields,
			IncludeImages: gc.includeImages,
		}, nil
	}

	inputs := period.Inputs{Month: gc.month}
	parse := func(s string) (time.Time, error) {
		if s == "" {
			return time.Time{}, nil
		}
		return period.ParseDate(s)
	}

	var err error
	if inputs.Anchor, err = parse(gc.anchor); err != nil {
		return report.Params{}, fmt.Errorf("invalid --date value: %w", err)
	}
	if inputs.Start, err = parse(gc.startDate); err != nil {
		return report.Params{}, fmt.Errorf("invalid --start value: %w", err)
	}
	if inputs.End, err = parse(gc.endDate); err != nil {
		return report.Params{}, fmt.Errorf("invalid --end value: %w", err)
	}

	return report.Params{
		Type:          domain.ReportType(gc.reportType),
		Inputs:        inputs,
		Fields:        fields,
		IncludeImages: gc.includeImages,
	}, nil
}
