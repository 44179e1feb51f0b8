// Package render provides output renderers for the conversion pipeline.
// The card renderer produces the flashcard text; the others are reference
// and handout formats built from the same page.
package render

import (
	"fmt"
	"strings"

	"github.com/greyhillman/IncrementalReadingConverter/core"
	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
)

// HeaderStyle selects how headers appear in card text.
type HeaderStyle string

const (
	// HeadersPlain renders headers as ordinary paragraphs.
	HeadersPlain HeaderStyle = "plain"
	// HeadersMarked prefixes headers with one '#' per level.
	HeadersMarked HeaderStyle = "marked"
)

// ruleLine separates table header and footer rows from the body.
const ruleLine = "-----"

// CardOptions configures a CardRenderer.
type CardOptions struct {
	HeaderStyle HeaderStyle
	// HTMLBreaks joins output lines with <br /> for pasting into an HTML
	// field.
	HTMLBreaks bool
}

// CardRenderer renders IR documents as flashcard text.
type CardRenderer struct {
	opts CardOptions
}

// NewCardRenderer creates a CardRenderer. An empty header style means
// HeadersPlain.
func NewCardRenderer(opts CardOptions) *CardRenderer {
	if opts.HeaderStyle == "" {
		opts.HeaderStyle = HeadersPlain
	}
	return &CardRenderer{opts: opts}
}

// Render returns the card text of the page's document.
func (r *CardRenderer) Render(page *core.Page) ([]byte, error) {
	if page.Document == nil {
		return nil, fmt.Errorf("page %s has no document", page.Metadata.Source)
	}
	return []byte(r.RenderDocument(page.Document)), nil
}

// Extension returns the file extension for card text output.
func (r *CardRenderer) Extension() string {
	return ".txt"
}

// RenderDocument renders every node in order and trims the result.
func (r *CardRenderer) RenderDocument(doc *ir.Document) string {
	var sb strings.Builder
	for _, n := range doc.Nodes {
		r.writeNode(&sb, n)
	}
	out := strings.TrimSpace(sb.String())
	if r.opts.HTMLBreaks {
		out = strings.Join(strings.Split(out, "\n"), "<br />")
	}
	return out
}

func (r *CardRenderer) writeNode(sb *strings.Builder, n ir.Node) {
	switch n := n.(type) {
	case ir.Image:
		fmt.Fprintf(sb, "<img src=\"%s\" />\n", n.Src)
	case ir.Preformatted:
		sb.WriteString("```" + n.Text + "```\n\n")
	case ir.Paragraph:
		sb.WriteString(renderTextBlock(n.Text) + "\n\n")
	case ir.Header:
		if r.opts.HeaderStyle == HeadersMarked {
			sb.WriteString(strings.Repeat("#", n.Level) + " ")
		}
		sb.WriteString(n.Text + "\n\n")
	case *ir.List:
		sb.WriteString(renderList(n, 1) + "\n\n")
	case *ir.Table:
		sb.WriteString(renderTable(n) + "\n\n")
	}
}

func renderRun(run ir.Run) string {
	switch run := run.(type) {
	case ir.Plain:
		return run.Text
	case ir.Code:
		return "`" + run.Text + "`"
	case ir.Sub:
		return "_{" + renderTextBlock(run.Block) + "}"
	case ir.Sup:
		return "^{" + renderTextBlock(run.Block) + "}"
	}
	return ""
}

func renderTextBlock(block ir.TextBlock) string {
	var sb strings.Builder
	for _, run := range block.Runs() {
		sb.WriteString(renderRun(run))
	}
	return sb.String()
}

// renderList renders a list at the given depth, starting from 1. Each
// nesting level adds one "--" pair to the indent; unordered items carry
// one extra pair in place of a number.
func renderList(list *ir.List, depth int) string {
	lines := make([]string, 0, len(list.Items))
	for i, item := range list.Items {
		var prefix string
		if list.Style == ir.Ordered {
			prefix = strings.Repeat("--", depth-1) + fmt.Sprintf("%d) ", i+1)
		} else {
			prefix = strings.Repeat("--", depth) + " "
		}
		lines = append(lines, prefix+renderListItem(item, depth))
	}
	return strings.Join(lines, "\n")
}

// renderListItem joins item contents with newlines. Continuation lines,
// including line breaks inside text, carry no list prefix.
func renderListItem(item ir.ListItem, depth int) string {
	parts := make([]string, 0, len(item.Contents))
	for _, c := range item.Contents {
		switch c := c.(type) {
		case ir.TextContent:
			parts = append(parts, renderTextBlock(c.Text))
		case *ir.List:
			parts = append(parts, renderList(c, depth+1))
		}
	}
	return strings.Join(parts, "\n")
}

func renderRow(row ir.TableRow) string {
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = renderTextBlock(c.Text)
	}
	return strings.Join(cells, " | ")
}

func renderTable(table *ir.Table) string {
	var lines []string
	if table.Header != nil {
		lines = append(lines, renderRow(*table.Header), ruleLine)
	}
	for _, row := range table.Body {
		lines = append(lines, renderRow(row))
	}
	if table.Footer != nil {
		lines = append(lines, ruleLine, renderRow(*table.Footer))
	}
	return strings.Join(lines, "\n")
}
