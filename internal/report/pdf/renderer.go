// Package pdf renders a report instruction stream into a paginated A4
// document. It owns all visual decisions (fonts, colors, page breaks);
// content and order come from the synthesizer untouched.
package pdf

import (
	"bytes"
	"fmt"
	"time"

	"codeberg.org/go-pdf/fpdf"

	"brigada/internal/report"
)

const (
	pageMargin  = 15.0
	textBreakY  = 280.0 // hard break for flowing text
	blockBreakY = 250.0 // early break before a fresh table block
	headerBandH = 25.0
	tableFontPt = 8.0
	headerRowH  = 6.0
	bodyRowH    = 5.0
)

// Renderer produces the PDF artifact. The zero value is not usable; use
// New.
type Renderer struct {
	title    string
	subtitle string
	now      func() time.Time
}

var _ report.Renderer = (*Renderer)(nil)

// New builds a renderer with the document header band text.
func New() *Renderer {
	return &Renderer{
		title:    "Formulario de Necesidades",
		subtitle: "Cuerpo de Bomberos",
		now:      time.Now,
	}
}

// Render draws the instruction stream and returns the PDF bytes.
func (r *Renderer) Render(instructions []report.Instruction) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	pageW, _ := doc.GetPageSize()
	maxW := pageW - 2*pageMargin

	doc.SetTitle(r.title, true)
	doc.AliasNbPages("")
	doc.SetAutoPageBreak(false, 0)
	doc.SetFooterFunc(func() {
		doc.SetY(-10)
		doc.SetFont("Helvetica", "", 8)
		doc.SetTextColor(150, 150, 150)
		doc.CellFormat(0, 5, tr(fmt.Sprintf("Página %d de {nb}", doc.PageNo())), "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	r.headerBand(doc, tr, pageW)
	doc.SetY(headerBandH + 10)
	doc.SetTextColor(0, 0, 0)

	for _, ins := range instructions {
		switch ins := ins.(type) {
		case report.Heading:
			breakAt := textBreakY
			if ins.FreshBlock {
				breakAt = blockBreakY
			}
			ensureRoom(doc, breakAt)
			writeText(doc, tr, maxW, ins.Text, 14, "B")
			doc.SetY(doc.GetY() + 2)

		case report.KeyValue:
			ensureRoom(doc, textBreakY)
			writeText(doc, tr, maxW, ins.Key+": "+ins.Value, 12, "")

		case report.Note:
			ensureRoom(doc, textBreakY)
			writeText(doc, tr, maxW, ins.Text, 10, "I")
			doc.SetY(doc.GetY() + 5)

		case report.Table:
			r.table(doc, tr, maxW, ins)
			doc.SetY(doc.GetY() + 10)
		}
	}

	if doc.Err() {
		return nil, fmt.Errorf("rendering document: %w", doc.Error())
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing document: %w", err)
	}
	return buf.Bytes(), nil
}

// headerBand draws the dark-red title band across the top of the page.
func (r *Renderer) headerBand(doc *fpdf.Fpdf, tr func(string) string, pageW float64) {
	doc.SetFillColor(139, 0, 0)
	doc.Rect(0, 0, pageW, headerBandH, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "", 16)
	doc.SetXY(0, 10)
	doc.CellFormat(pageW, 7, tr(r.title), "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.SetX(0)
	stamp := r.now().Format("2/1/2006")
	doc.CellFormat(pageW, 5, tr(r.subtitle+" | "+stamp), "", 1, "C", false, 0, "")
}

func (r *Renderer) table(doc *fpdf.Fpdf, tr func(string) string, maxW float64, t report.Table) {
	widths := columnWidths(maxW, len(t.Headers))

	drawHeader := func() {
		doc.SetFont("Helvetica", "B", tableFontPt)
		doc.SetFillColor(50, 50, 50)
		doc.SetTextColor(255, 255, 255)
		doc.SetX(pageMargin)
		for i, h := range t.Headers {
			doc.CellFormat(widths[i], headerRowH, tr(h), "1", 0, "L", true, 0, "")
		}
		doc.Ln(-1)
	}

	drawHeader()
	doc.SetFont("Helvetica", "", tableFontPt)
	doc.SetTextColor(0, 0, 0)

	for n, cells := range t.Rows {
		if doc.GetY()+bodyRowH > textBreakY {
			doc.AddPage()
			doc.SetY(pageMargin)
			drawHeader()
			doc.SetFont("Helvetica", "", tableFontPt)
			doc.SetTextColor(0, 0, 0)
		}

		fill := n%2 == 1
		doc.SetFillColor(245, 245, 245)
		doc.SetX(pageMargin)
		for i, cell := range cells {
			doc.CellFormat(widths[i], bodyRowH, tr(cell), "1", 0, "L", fill, 0, "")
		}
		doc.Ln(-1)
	}
}

// columnWidths gives the item column 35% and the trailing notes column
// 30% of the width, splitting the rest evenly. Two-column tables split
// 50/50; this layout only ever sees three or more columns in practice.
func columnWidths(maxW float64, n int) []float64 {
	widths := make([]float64, n)
	switch {
	case n == 1:
		widths[0] = maxW
	case n == 2:
		widths[0], widths[1] = maxW/2, maxW/2
	default:
		widths[0] = maxW * 0.35
		widths[n-1] = maxW * 0.30
		middle := maxW * 0.35 / float64(n-2)
		for i := 1; i < n-1; i++ {
			widths[i] = middle
		}
	}
	return widths
}

// ensureRoom breaks the page when the cursor has passed the limit.
func ensureRoom(doc *fpdf.Fpdf, limit float64) {
	if doc.GetY() > limit {
		doc.AddPage()
		doc.SetY(pageMargin)
	}
}

// writeText writes one wrapped text block at the current position.
func writeText(doc *fpdf.Fpdf, tr func(string) string, maxW float64, text string, sizePt float64, style string) {
	doc.SetFont("Helvetica", style, sizePt)
	doc.SetX(pageMargin)
	doc.MultiCell(maxW, sizePt*0.5, tr(text), "", "L", false)
}
