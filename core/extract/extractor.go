// Package extract implements the Extractor interface.
// It parses a page with goquery and, when a CSS selector is configured,
// narrows the document down to the matching elements:
//  1. Without a selector the whole document is handed on; the normalizer
//     drops the head and the page chrome it knows about.
//  2. With a selector every outermost match is moved, in document order,
//     under a fresh document node.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/greyhillman/IncrementalReadingConverter/core"
	"golang.org/x/net/html"
)

var (
	// ErrParse wraps failures to parse the input document.
	ErrParse = errors.New("parsing HTML")
	// ErrSelector is returned for CSS selectors that do not compile.
	ErrSelector = errors.New("invalid selector")
	// ErrNoMatch is returned when the selector matches nothing.
	ErrNoMatch = errors.New("selector matched no elements")
)

// HTMLExtractor parses HTML and selects the content to convert.
type HTMLExtractor struct {
	selector cascadia.Selector
	raw      string
}

// New creates an HTMLExtractor. An empty selector keeps the whole page.
func New(selector string) (*HTMLExtractor, error) {
	e := &HTMLExtractor{raw: selector}
	if selector == "" {
		return e, nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrSelector, selector, err)
	}
	e.selector = sel
	return e, nil
}

// Extract parses raw HTML and returns the selected content.
func (e *HTMLExtractor) Extract(raw string) (*core.Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	ext := &core.Extraction{
		Title:    strings.TrimSpace(doc.Find("title").First().Text()),
		Language: doc.Find("html").AttrOr("lang", ""),
	}

	if e.selector == nil {
		body, err := doc.Find("body").First().Html()
		if err != nil {
			return nil, fmt.Errorf("serializing content: %w", err)
		}
		ext.Root = doc.Nodes[0]
		ext.HTML = body
		return ext, nil
	}

	matches := outermost(doc.FindMatcher(e.selector).Nodes)
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, e.raw)
	}

	root := &html.Node{Type: html.DocumentNode}
	var sb strings.Builder
	for _, n := range matches {
		if err := html.Render(&sb, n); err != nil {
			return nil, fmt.Errorf("serializing content: %w", err)
		}
		n.Parent.RemoveChild(n)
		root.AppendChild(n)
	}
	ext.Root = root
	ext.HTML = sb.String()
	return ext, nil
}

// outermost drops every node that has an ancestor in nodes.
func outermost(nodes []*html.Node) []*html.Node {
	set := make(map[*html.Node]bool, len(nodes))
	for _, n := range nodes {
		set[n] = true
	}
	out := make([]*html.Node, 0, len(nodes))
	for _, n := range nodes {
		nested := false
		for p := n.Parent; p != nil; p = p.Parent {
			if set[p] {
				nested = true
				break
			}
		}
		if !nested {
			out = append(out, n)
		}
	}
	return out
}
