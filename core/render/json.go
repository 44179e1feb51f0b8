package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/greyhillman/IncrementalReadingConverter/core"
	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
)

// JSONRenderer produces a structured report of a converted page: its
// metadata, the card text, the plain text and a summary of the IR.
type JSONRenderer struct {
	card *CardRenderer
}

// NewJSONRenderer creates a JSONRenderer that embeds card text rendered
// by card.
func NewJSONRenderer(card *CardRenderer) *JSONRenderer {
	if card == nil {
		card = NewCardRenderer(CardOptions{})
	}
	return &JSONRenderer{card: card}
}

// Render converts the page into the JSON report.
func (r *JSONRenderer) Render(page *core.Page) ([]byte, error) {
	if page.Document == nil {
		return nil, fmt.Errorf("page %s has no document", page.Metadata.Source)
	}

	out := core.PageJSON{
		Metadata: page.Metadata,
		Content: core.PageContent{
			Card: r.card.RenderDocument(page.Document),
			Text: plainText(page.Document),
		},
		Structure: analyze(page.Document),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}

// analyze counts the nodes of doc.
func analyze(doc *ir.Document) core.PageStructure {
	s := core.PageStructure{
		Headings: []core.Heading{},
		Images:   []string{},
	}
	for _, n := range doc.Nodes {
		switch n := n.(type) {
		case ir.Header:
			s.Headings = append(s.Headings, core.Heading{Level: n.Level, Text: n.Text})
		case ir.Paragraph:
			s.Paragraphs++
		case ir.Image:
			s.Images = append(s.Images, n.Src)
		case ir.Preformatted:
			s.Preformatted++
		case *ir.List:
			countList(&s, n)
		case *ir.Table:
			s.Tables++
			s.TableRows += len(n.Body)
			if n.Header != nil {
				s.TableRows++
			}
			if n.Footer != nil {
				s.TableRows++
			}
		}
	}
	return s
}

// countList counts a list and every list nested inside it.
func countList(s *core.PageStructure, list *ir.List) {
	s.Lists++
	s.ListItems += len(list.Items)
	for _, item := range list.Items {
		for _, c := range item.Contents {
			if nested, ok := c.(*ir.List); ok {
				countList(s, nested)
			}
		}
	}
}

// plainText returns the document text without any card markup.
func plainText(doc *ir.Document) string {
	var parts []string
	for _, n := range doc.Nodes {
		switch n := n.(type) {
		case ir.Header:
			parts = append(parts, n.Text)
		case ir.Paragraph:
			parts = append(parts, n.Text.PlainString())
		case ir.Preformatted:
			parts = append(parts, n.Text)
		case *ir.List:
			parts = append(parts, listText(n))
		case *ir.Table:
			parts = append(parts, tableText(n))
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n"))
}

func listText(list *ir.List) string {
	var lines []string
	for _, item := range list.Items {
		for _, c := range item.Contents {
			switch c := c.(type) {
			case ir.TextContent:
				lines = append(lines, c.Text.PlainString())
			case *ir.List:
				lines = append(lines, listText(c))
			}
		}
	}
	return strings.Join(lines, "\n")
}

func tableText(table *ir.Table) string {
	rows := make([]ir.TableRow, 0, len(table.Body)+2)
	if table.Header != nil {
		rows = append(rows, *table.Header)
	}
	rows = append(rows, table.Body...)
	if table.Footer != nil {
		rows = append(rows, *table.Footer)
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = c.Text.PlainString()
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}
