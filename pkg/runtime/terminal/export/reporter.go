package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/edu-tools/board-atlas/pkg/services/report"
)

type TableConfig struct {
	ContentWidth  int
	CategoryWidth int
	CountWidth    int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		ContentWidth:  20,
		CategoryWidth: 10,
		CountWidth:    8,
	}
}

// Reporter prints a generated run summary as a terminal table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(run *report.Run, exportPath string) error {
	funcMap := template.FuncMap{
		"formatRow": func(content, category string, count interface{}) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*v |",
				c.config.ContentWidth, content,
				c.config.CategoryWidth, category,
				c.config.CountWidth, count)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.ContentWidth+2),
				strings.Repeat("-", c.config.CategoryWidth+2),
				strings.Repeat("-", c.config.CountWidth+2))
		},
	}

	tmpl := `
{{.Run.Report.Title}}
{{.Run.Label}}

Document: {{.Run.Document.PageCount}} page(s), {{len .Run.Report.Items}} item(s)
Exported: {{.Path}}

{{separator}}
{{formatRow "Content" "Category" "Count"}}
{{separator}}
{{formatRow "Announcements" "regular" .Run.Report.Tallies.Announcements.Regular}}
{{formatRow "Announcements" "alert" .Run.Report.Tallies.Announcements.Alert}}
{{formatRow "Calendar Events" "regular" .Run.Report.Tallies.CalendarEvents.Regular}}
{{formatRow "Calendar Events" "alert" .Run.Report.Tallies.CalendarEvents.Alert}}
{{separator}}
{{if .Run.FailedImages}}
Images that could not be embedded:
{{range .Run.FailedImages}}  - {{.}}
{{end}}{{end}}`

	t, err := template.New("run").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		Run  *report.Run
		Path string
	}{Run: run, Path: exportPath})
}
