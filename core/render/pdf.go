package render

import (
	"bytes"
	"fmt"

	"github.com/greyhillman/IncrementalReadingConverter/core"
	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/jung-kurt/gofpdf"
)

// listIndent is the extra left margin per list level, in mm.
const listIndent = 6.0

// PDFRenderer renders the IR of a page as a printable handout.
// Images are listed by source; they are not embedded.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// pdfWriter holds the document being written and its text translator.
type pdfWriter struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
}

// Render converts the page's document into PDF bytes.
func (r *PDFRenderer) Render(page *core.Page) ([]byte, error) {
	if page.Document == nil {
		return nil, fmt.Errorf("page %s has no document", page.Metadata.Source)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}

	if page.Metadata.Title != "" {
		pdf.SetTitle(page.Metadata.Title, true)
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, w.tr(page.Metadata.Title), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 5, w.tr("Source: "+page.Metadata.Source), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	for _, n := range page.Document.Nodes {
		w.node(n)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func (w *pdfWriter) node(n ir.Node) {
	pdf := w.pdf
	switch n := n.(type) {
	case ir.Header:
		w.heading(n.Text, n.Level)
	case ir.Paragraph:
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, w.tr(renderTextBlock(n.Text)), "", "L", false)
		pdf.Ln(3)
	case ir.Preformatted:
		pdf.Ln(2)
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		pdf.MultiCell(0, 4.5, w.tr(n.Text), "", "L", true)
		pdf.Ln(3)
	case ir.Image:
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, w.tr("[image: "+n.Src+"]"), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	case *ir.List:
		w.list(n, 1)
		pdf.Ln(3)
	case *ir.Table:
		w.table(n)
		pdf.Ln(3)
	}
}

// heading sets the font size based on heading level and writes text.
func (w *pdfWriter) heading(text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}
	size, ok := sizes[level]
	if !ok {
		size = 10
	}
	w.pdf.Ln(4)
	w.pdf.SetFont("Helvetica", "B", size)
	w.pdf.MultiCell(0, size*0.6, w.tr(text), "", "L", false)
	w.pdf.Ln(2)
}

func (w *pdfWriter) list(list *ir.List, depth int) {
	pdf := w.pdf
	left, _, _, _ := pdf.GetMargins()
	indent := left + listIndent*float64(depth-1)

	for i, item := range list.Items {
		marker := "• "
		if list.Style == ir.Ordered {
			marker = fmt.Sprintf("%d. ", i+1)
		}
		for j, c := range item.Contents {
			switch c := c.(type) {
			case ir.TextContent:
				text := renderTextBlock(c.Text)
				if j == 0 {
					text = marker + text
				}
				pdf.SetFont("Helvetica", "", 10)
				pdf.SetLeftMargin(indent)
				pdf.SetX(indent)
				pdf.MultiCell(0, 5, w.tr(text), "", "L", false)
				pdf.SetLeftMargin(left)
			case *ir.List:
				w.list(c, depth+1)
			}
		}
	}
}

func (w *pdfWriter) table(table *ir.Table) {
	pdf := w.pdf
	row := func(r ir.TableRow, style string) {
		pdf.SetFont("Helvetica", style, 10)
		pdf.MultiCell(0, 5, w.tr(renderRow(r)), "", "L", false)
	}
	if table.Header != nil {
		row(*table.Header, "B")
		pdf.MultiCell(0, 2, "", "T", "L", false)
	}
	for _, r := range table.Body {
		row(r, "")
	}
	if table.Footer != nil {
		pdf.MultiCell(0, 2, "", "T", "L", false)
		row(*table.Footer, "I")
	}
}
