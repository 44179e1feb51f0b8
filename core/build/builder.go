// Package build implements the Builder interface.
// It maps the canonical tree onto the IR document model, one top-level
// element at a time:
//
//	img      → ir.Image
//	pre      → ir.Preformatted
//	p        → ir.Paragraph
//	h1..h6   → ir.Header
//	ol, ul   → *ir.List
//	table    → *ir.Table
//
// Unknown top-level elements become a visible fallback marker so the rest
// of the document survives. Malformed list or table structure and images
// without a source abort the whole document.
package build

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/greyhillman/IncrementalReadingConverter/core/reflow"
	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
)

// Options configures an IRBuilder.
type Options struct {
	// FlattenImagePaths keeps only the file name of image sources.
	FlattenImagePaths bool

	// Logger receives observations about recoverable problems.
	Logger *slog.Logger
}

// IRBuilder converts canonical trees into IR documents.
// It holds no per-document state and is safe for concurrent use.
type IRBuilder struct {
	opts   Options
	logger *slog.Logger
}

// New creates an IRBuilder.
func New(opts Options) *IRBuilder {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &IRBuilder{opts: opts, logger: logger}
}

// Build converts a canonical forest into a document.
func (b *IRBuilder) Build(nodes tree.Nodes) (*ir.Document, error) {
	doc := &ir.Document{}
	for _, n := range nodes {
		converted, err := b.convertNode(n)
		if err != nil {
			return nil, err
		}
		for _, c := range converted {
			doc.Add(c)
		}
	}
	return doc, nil
}

// convertNode maps one top-level node to zero or more IR nodes.
func (b *IRBuilder) convertNode(n tree.Node) ([]ir.Node, error) {
	switch n := n.(type) {
	case *tree.Text:
		if strings.TrimSpace(n.Data) == "" {
			return nil, nil
		}
		b.logger.Info("text outside a block element, wrapping as paragraph")
		return paragraphs(b.convertTextBlock(tree.Nodes{n})), nil
	case *tree.Element:
		return b.convertElement(n)
	default:
		return nil, nil
	}
}

func (b *IRBuilder) convertElement(el *tree.Element) ([]ir.Node, error) {
	switch el.Tag {
	case "img":
		img, err := b.convertImage(el)
		if err != nil {
			return nil, err
		}
		return []ir.Node{img}, nil
	case "pre":
		return []ir.Node{b.convertPre(el.Children)}, nil
	case "p":
		return b.convertParagraph(el.Children)
	case "ol", "ul":
		list, err := b.convertList(listStyle(el.Tag), el.Tag, el.Children)
		if err != nil {
			return nil, err
		}
		return []ir.Node{list}, nil
	case "table":
		table, err := b.convertTable(el.Children)
		if err != nil {
			return nil, err
		}
		return []ir.Node{table}, nil
	}

	if level, ok := headerLevel(el.Tag); ok {
		return []ir.Node{b.convertHeader(level, el.Children)}, nil
	}

	b.logger.Warn("could not convert element", "tag", el.Tag)
	return []ir.Node{ir.Preformatted{
		Text: fmt.Sprintf("could not convert `%s` element", el.Tag),
	}}, nil
}

func (b *IRBuilder) convertImage(el *tree.Element) (ir.Image, error) {
	src, ok := el.Attr("src")
	if !ok {
		return ir.Image{}, &MissingAttributeError{Tag: el.Tag, Attr: "src"}
	}
	if b.opts.FlattenImagePaths {
		src = src[strings.LastIndex(src, "/")+1:]
	}
	return ir.Image{Src: src}, nil
}

// convertParagraph builds a paragraph, splitting it around any images it
// contains so they become top-level image nodes.
func (b *IRBuilder) convertParagraph(children tree.Nodes) ([]ir.Node, error) {
	var out []ir.Node
	var run tree.Nodes
	for _, c := range children {
		el, ok := c.(*tree.Element)
		if !ok || el.Tag != "img" {
			run = append(run, c)
			continue
		}
		out = append(out, paragraphs(b.convertTextBlock(run))...)
		run = nil
		img, err := b.convertImage(el)
		if err != nil {
			return nil, err
		}
		out = append(out, img)
	}
	if len(out) == 0 {
		return []ir.Node{ir.Paragraph{Text: b.convertTextBlock(run)}}, nil
	}
	return append(out, paragraphs(b.convertTextBlock(run))...), nil
}

// paragraphs wraps a non-empty block as a single paragraph.
func paragraphs(block ir.TextBlock) []ir.Node {
	if block.IsEmpty() {
		return nil
	}
	return []ir.Node{ir.Paragraph{Text: block}}
}

func (b *IRBuilder) convertHeader(level int, children tree.Nodes) ir.Header {
	text := reflow.Reflow(tree.NodesText(children))
	return ir.Header{Level: level, Text: strings.Join(strings.Fields(text), " ")}
}

// headerLevel returns the level of an h1..h6 tag.
func headerLevel(tag string) (int, bool) {
	if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
		return 0, false
	}
	return int(tag[1] - '0'), true
}

// blockTags cannot appear inside preformatted text.
var blockTags = map[string]bool{
	"p": true, "div": true, "pre": true, "img": true, "table": true,
	"ol": true, "ul": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// convertPre serializes the children of a pre element literally.
func (b *IRBuilder) convertPre(children tree.Nodes) ir.Preformatted {
	var sb strings.Builder
	if tag, ok := writePre(&sb, children, false); !ok {
		b.logger.Warn("pre tag has non-text children, dropping its content", "tag", tag)
		return ir.Preformatted{}
	}
	return ir.Preformatted{Text: sb.String()}
}

// writePre writes nodes as flat markup. Inside code elements tags are
// omitted. It reports the first block-level tag found, if any.
func writePre(sb *strings.Builder, nodes tree.Nodes, inCode bool) (string, bool) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.Text:
			sb.WriteString(n.Data)
		case *tree.Element:
			if blockTags[n.Tag] {
				return n.Tag, false
			}
			if n.Tag == "code" || inCode {
				if tag, ok := writePre(sb, n.Children, true); !ok {
					return tag, false
				}
				continue
			}
			sb.WriteString("<" + n.Tag)
			for _, k := range n.AttrKeys() {
				fmt.Fprintf(sb, " %s=\"%s\"", k, html.EscapeString(n.Attributes[k]))
			}
			sb.WriteString(">")
			if tag, ok := writePre(sb, n.Children, false); !ok {
				return tag, false
			}
			sb.WriteString("</" + n.Tag + ">")
		}
	}
	return "", true
}
