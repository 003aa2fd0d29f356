// Package pdf draws a planned layout.Document into a PDF file. All page
// breaks were decided by the layout pass; the renderer only paints blocks
// at their assigned positions.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/edu-tools/board-atlas/pkg/layout"
	"github.com/signintech/gopdf"
)

const (
	regularFontFile = "NotoSans-Regular.ttf"
	boldFontFile    = "NotoSans-Bold.ttf"

	regularFont = "body"
	boldFont    = "heading"
)

// Renderer paints layout documents with a fixed font pair loaded from a
// fonts directory.
type Renderer struct {
	fontDir string
}

func NewRenderer(fontDir string) *Renderer {
	return &Renderer{fontDir: fontDir}
}

// RenderFile writes the document as a PDF at path.
func (r *Renderer) RenderFile(doc layout.Document, path string) error {
	data, err := r.Render(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Render produces the PDF bytes for a document.
func (r *Renderer) Render(doc layout.Document) ([]byte, error) {
	geom := doc.Geometry

	pdf := new(gopdf.GoPdf)
	pdf.Start(gopdf.Config{PageSize: gopdf.Rect{W: geom.PageWidth, H: geom.PageHeight}})

	if err := r.loadFonts(pdf); err != nil {
		return nil, err
	}

	p := &painter{pdf: pdf, geom: geom}
	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, block := range page.Blocks {
			if err := p.paintBlock(block); err != nil {
				return nil, fmt.Errorf("page %d: %w", page.Index+1, err)
			}
		}
		if err := p.paintFooter(page.Footer); err != nil {
			return nil, fmt.Errorf("page %d footer: %w", page.Index+1, err)
		}
	}

	return pdf.GetBytesPdf(), nil
}

func (r *Renderer) loadFonts(pdf *gopdf.GoPdf) error {
	if err := pdf.AddTTFFont(regularFont, filepath.Join(r.fontDir, regularFontFile)); err != nil {
		return fmt.Errorf("loading regular font: %w", err)
	}
	if err := pdf.AddTTFFont(boldFont, filepath.Join(r.fontDir, boldFontFile)); err != nil {
		return fmt.Errorf("loading bold font: %w", err)
	}
	return nil
}

type painter struct {
	pdf  *gopdf.GoPdf
	geom layout.Geometry
}

func (p *painter) paintBlock(b layout.Block) error {
	switch s := b.Section.(type) {
	case layout.TitleBlock:
		return p.paintTitle(s, b.Y)
	case layout.Table:
		return p.paintTable(s, b.Y)
	case layout.SectionHeader:
		return p.text(boldFont, 13, p.geom.MarginLeft, b.Y+4, s.Text)
	case layout.Image:
		return p.paintImage(s, b.Y)
	case layout.Placeholder:
		return p.paintPlaceholder(s, b.Y)
	default:
		return fmt.Errorf("unknown section type %T", b.Section)
	}
}

func (p *painter) paintTitle(t layout.TitleBlock, y float64) error {
	if err := p.text(boldFont, 18, p.geom.MarginLeft, y, t.Title); err != nil {
		return err
	}
	line := y + 26
	if t.Description != "" {
		if err := p.text(regularFont, 10, p.geom.MarginLeft, line, t.Description); err != nil {
			return err
		}
		line += 16
	}
	if err := p.text(regularFont, 11, p.geom.MarginLeft, line, t.PeriodLabel); err != nil {
		return err
	}
	line += 16
	generated := fmt.Sprintf("Generated %s by %s",
		t.GeneratedAt.Format(time.RFC1123), t.GeneratedBy)
	return p.text(regularFont, 9, p.geom.MarginLeft, line, generated)
}

func (p *painter) paintTable(t layout.Table, y float64) error {
	left := p.geom.MarginLeft
	width := p.geom.ContentWidth()
	colWidth := width / float64(len(t.Columns))

	if t.Caption != "" {
		if err := p.text(boldFont, 12, left, y+2, t.Caption); err != nil {
			return err
		}
		y += p.geom.CaptionHeight
	}

	// Header row.
	p.pdf.SetFillColor(230, 234, 240)
	x := left
	for _, col := range t.Columns {
		p.pdf.RectFromUpperLeftWithStyle(x, y, colWidth, p.geom.HeaderRowHeight, "FD")
		if err := p.text(boldFont, 9, x+3, y+5, col); err != nil {
			return err
		}
		x += colWidth
	}
	y += p.geom.HeaderRowHeight

	for _, row := range t.Rows {
		x = left
		for c := range t.Columns {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			p.pdf.RectFromUpperLeftWithStyle(x, y, colWidth, p.geom.RowHeight, "D")
			if err := p.text(regularFont, 9, x+3, y+4, truncate(cell, colWidth)); err != nil {
				return err
			}
			x += colWidth
		}
		y += p.geom.RowHeight
	}
	return nil
}

func (p *painter) paintImage(img layout.Image, y float64) error {
	if err := p.text(regularFont, 9, p.geom.MarginLeft, y, img.Caption); err != nil {
		return err
	}
	y += 14

	holder, err := gopdf.ImageHolderByBytes(img.PNG)
	if err != nil {
		return fmt.Errorf("image %s: %w", img.Ref, err)
	}
	rect := FitImage(float64(img.Width), float64(img.Height),
		p.geom.ContentWidth(), p.geom.ImageHeight-14)
	return p.pdf.ImageByHolder(holder, p.geom.MarginLeft, y, &rect)
}

func (p *painter) paintPlaceholder(ph layout.Placeholder, y float64) error {
	p.pdf.RectFromUpperLeftWithStyle(p.geom.MarginLeft, y, p.geom.ContentWidth(), p.geom.PlaceholderHeight, "D")
	msg := fmt.Sprintf("image unavailable: %s", ph.Ref)
	return p.text(regularFont, 9, p.geom.MarginLeft+4, y+6, msg)
}

func (p *painter) paintFooter(footer string) error {
	y := p.geom.PageHeight - p.geom.MarginBottom - p.geom.FooterHeight + 8
	return p.text(regularFont, 8, p.geom.MarginLeft, y, footer)
}

func (p *painter) text(font string, size float64, x, y float64, s string) error {
	if err := p.pdf.SetFont(font, "", size); err != nil {
		return err
	}
	p.pdf.SetX(x)
	p.pdf.SetY(y)
	return p.pdf.Cell(nil, s)
}

// FitImage scales natural dimensions to fit the given box, preserving the
// aspect ratio and never upscaling.
func FitImage(w, h, maxW, maxH float64) gopdf.Rect {
	if w <= 0 || h <= 0 {
		return gopdf.Rect{W: maxW, H: maxH}
	}
	scale := 1.0
	if w > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	if scale > 1 {
		scale = 1
	}
	return gopdf.Rect{W: w * scale, H: h * scale}
}

// approximate character budget per column width; enough for ruled admin
// tables without measuring glyphs.
func truncate(s string, colWidth float64) string {
	max := int(colWidth / 5)
	if max < 4 || len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
