package render

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/greyhillman/IncrementalReadingConverter/core"
)

// MarkdownRenderer converts the extracted HTML straight to Markdown. It
// bypasses the IR and is useful for comparing against the card text.
type MarkdownRenderer struct {
	conv *converter.Converter
}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// Render returns the page's HTML fragment as Markdown.
func (r *MarkdownRenderer) Render(page *core.Page) ([]byte, error) {
	if strings.TrimSpace(page.HTML) == "" {
		return nil, fmt.Errorf("page %s has no HTML content", page.Metadata.Source)
	}

	var opts []converter.ConvertOptionFunc
	if page.Metadata.Domain != "" {
		opts = append(opts, converter.WithDomain(page.Metadata.Source))
	}
	md, err := r.conv.ConvertString(page.HTML, opts...)
	if err != nil {
		return nil, fmt.Errorf("converting to markdown: %w", err)
	}
	return []byte(md), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
