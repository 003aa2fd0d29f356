package layout

import "fmt"

// Geometry fixes the page dimensions and per-block footprints, in points.
type Geometry struct {
	PageWidth  float64
	PageHeight float64

	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64

	TitleBlockHeight    float64
	SectionHeaderHeight float64
	CaptionHeight       float64
	HeaderRowHeight     float64
	RowHeight           float64
	ImageHeight         float64
	PlaceholderHeight   float64
	SectionGap          float64
	FooterHeight        float64
}

// DefaultGeometry is A4 portrait.
func DefaultGeometry() Geometry {
	return Geometry{
		PageWidth:  595.28,
		PageHeight: 841.89,

		MarginTop:    40,
		MarginBottom: 40,
		MarginLeft:   40,
		MarginRight:  40,

		TitleBlockHeight:    96,
		SectionHeaderHeight: 26,
		CaptionHeight:       22,
		HeaderRowHeight:     20,
		RowHeight:           18,
		ImageHeight:         240,
		PlaceholderHeight:   24,
		SectionGap:          14,
		FooterHeight:        28,
	}
}

// ContentWidth is the horizontal space available to blocks.
func (g Geometry) ContentWidth() float64 {
	return g.PageWidth - g.MarginLeft - g.MarginRight
}

// contentBottom is the largest Y a block may extend to; the footer band
// below it is reserved.
func (g Geometry) contentBottom() float64 {
	return g.PageHeight - g.MarginBottom - g.FooterHeight
}

// PageCursor tracks the current page and vertical offset during one Flow
// pass. It is owned by that pass alone and never reused.
type PageCursor struct {
	PageIndex int
	Y         float64
}

// Block is a section placed at a fixed vertical position.
type Block struct {
	Section Section
	Y       float64
	Height  float64
}

// Page holds the blocks assigned to one fixed-size page.
type Page struct {
	Index  int
	Blocks []Block
	Footer string
}

// Document is the final paginated layout.
type Document struct {
	Geometry Geometry
	Pages    []Page
}

func (d Document) PageCount() int {
	return len(d.Pages)
}

// ConfidentialityNotice is stamped into every page footer.
const ConfidentialityNotice = "Confidential: for school staff distribution only"

// Flow places the planned sections onto pages. Blocks are placed top to
// bottom; a block that does not fit in the remaining space opens a fresh
// page first. Once the total page count is known, a second pass stamps the
// footers.
func Flow(sections []Section, geom Geometry) Document {
	f := &flow{geom: geom}
	f.newPage()

	for i, sec := range sections {
		switch s := sec.(type) {
		case TitleBlock:
			f.place(s, geom.TitleBlockHeight)
		case SectionHeader:
			// Keep the header attached to the first block it titles.
			f.ensure(geom.SectionHeaderHeight + f.nextHeight(sections, i))
			f.place(s, geom.SectionHeaderHeight)
		case Table:
			f.placeTable(s)
		case Image:
			f.ensure(geom.ImageHeight)
			f.place(s, geom.ImageHeight)
		case Placeholder:
			f.ensure(geom.PlaceholderHeight)
			f.place(s, geom.PlaceholderHeight)
		}
	}

	doc := Document{Geometry: geom, Pages: f.pages}
	total := len(doc.Pages)
	for i := range doc.Pages {
		doc.Pages[i].Footer = fmt.Sprintf("Page %d of %d  |  %s", i+1, total, ConfidentialityNotice)
	}
	return doc
}

type flow struct {
	geom   Geometry
	pages  []Page
	cursor PageCursor
}

func (f *flow) newPage() {
	f.pages = append(f.pages, Page{Index: len(f.pages)})
	f.cursor = PageCursor{PageIndex: len(f.pages) - 1, Y: f.geom.MarginTop}
}

func (f *flow) remaining() float64 {
	return f.geom.contentBottom() - f.cursor.Y
}

// ensure advances to a fresh page when h does not fit in the remaining
// space. A block taller than a whole page still gets a page to itself.
func (f *flow) ensure(h float64) {
	if h > f.remaining() && f.cursor.Y > f.geom.MarginTop {
		f.newPage()
	}
}

func (f *flow) place(s Section, h float64) {
	page := &f.pages[f.cursor.PageIndex]
	page.Blocks = append(page.Blocks, Block{Section: s, Y: f.cursor.Y, Height: h})
	f.cursor.Y += h + f.geom.SectionGap
}

// nextHeight returns the footprint of the section after index i, so a
// section header is never stranded at the bottom of a page.
func (f *flow) nextHeight(sections []Section, i int) float64 {
	if i+1 >= len(sections) {
		return 0
	}
	switch sections[i+1].(type) {
	case Image:
		return f.geom.ImageHeight
	case Placeholder:
		return f.geom.PlaceholderHeight
	default:
		return 0
	}
}

// tableChunkHeight is caption (first chunk only) + header row + n rows.
func (f *flow) tableChunkHeight(withCaption bool, rows int) float64 {
	h := f.geom.HeaderRowHeight + float64(rows)*f.geom.RowHeight
	if withCaption {
		h += f.geom.CaptionHeight
	}
	return h
}

// placeTable lays a table out. The caption, header and first row always
// co-reside; a header never appears with zero rows beneath it. Breakable
// tables split between rows, with the header repeated on continuation
// pages. Unbreakable tables move to a fresh page as a unit when needed.
func (f *flow) placeTable(t Table) {
	if len(t.Rows) == 0 {
		return
	}

	if !t.Breakable {
		f.ensure(f.tableChunkHeight(t.Caption != "", len(t.Rows)))
		f.place(t, f.tableChunkHeight(t.Caption != "", len(t.Rows)))
		return
	}

	rows := t.Rows
	first := true
	for len(rows) > 0 {
		withCaption := first && t.Caption != ""
		f.ensure(f.tableChunkHeight(withCaption, 1))

		fixed := f.geom.HeaderRowHeight
		if withCaption {
			fixed += f.geom.CaptionHeight
		}
		capacity := int((f.remaining() - fixed) / f.geom.RowHeight)
		if capacity < 1 {
			// Remaining space shrank below one row even on a fresh
			// page; force it so the loop always advances.
			capacity = 1
		}
		if capacity > len(rows) {
			capacity = len(rows)
		}

		chunk := Table{
			Columns:   t.Columns,
			Rows:      rows[:capacity],
			Breakable: true,
			Continued: !first,
		}
		if withCaption {
			chunk.Caption = t.Caption
		}
		f.place(chunk, f.tableChunkHeight(withCaption, capacity))

		rows = rows[capacity:]
		first = false
	}
}
