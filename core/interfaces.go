// Package core defines the pipeline interfaces for the converter.
// Each stage of the pipeline is a small interface so the CLI, the batch
// runner and the tests can assemble them freely:
//
//	fetch → extract → normalize → build → render → write
package core

import (
	"context"

	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
	"golang.org/x/net/html"
)

// FetchResult holds the raw HTML and where it came from.
type FetchResult struct {
	Source     string
	StatusCode int // 0 for local files
	HTML       string
}

// PageMetadata holds metadata about the converted page.
type PageMetadata struct {
	Source    string `json:"source"`
	Domain    string `json:"domain,omitempty"`
	Path      string `json:"path"`
	Title     string `json:"title"`
	Language  string `json:"language"`
	FetchedAt string `json:"fetched_at"` // ISO8601
}

// Extraction is a parsed page ready for normalization.
type Extraction struct {
	// Root is a document node holding the selected content.
	Root *html.Node
	// HTML is the selected content serialized back to markup.
	HTML     string
	Title    string
	Language string
}

// Page carries everything the renderers may need about one input.
type Page struct {
	Metadata PageMetadata
	HTML     string
	Document *ir.Document
}

// Heading represents a single heading found in the document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// PageContent holds the rendered text of a page.
type PageContent struct {
	Card string `json:"card"`
	Text string `json:"text"`
}

// PageStructure counts the IR nodes of a page.
type PageStructure struct {
	Headings     []Heading `json:"headings"`
	Paragraphs   int       `json:"paragraphs"`
	Images       []string  `json:"images"`
	Preformatted int       `json:"preformatted"`
	Lists        int       `json:"lists"`
	ListItems    int       `json:"list_items"`
	Tables       int       `json:"tables"`
	TableRows    int       `json:"table_rows"`
}

// PageJSON is the complete JSON output for a single page.
type PageJSON struct {
	Metadata  PageMetadata  `json:"metadata"`
	Content   PageContent   `json:"content"`
	Structure PageStructure `json:"structure"`
}

// Fetcher retrieves raw HTML from a file path or URL.
type Fetcher interface {
	Fetch(ctx context.Context, source string) (*FetchResult, error)
}

// Extractor parses raw HTML and selects the content to convert.
type Extractor interface {
	Extract(html string) (*Extraction, error)
}

// Normalizer reduces a parsed document to the canonical tree.
type Normalizer interface {
	Normalize(root *html.Node) (tree.Nodes, error)
}

// Builder converts the canonical tree into an IR document.
type Builder interface {
	Build(nodes tree.Nodes) (*ir.Document, error)
}

// Renderer converts a page into a final output format.
type Renderer interface {
	Render(page *Page) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".txt", ".pdf").
	Extension() string
}
