package build

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/greyhillman/IncrementalReadingConverter/core/reflow"
	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
)

// convertTextBlock converts inline content into a trimmed text block.
func (b *IRBuilder) convertTextBlock(nodes tree.Nodes) ir.TextBlock {
	block := b.inlineBlock(nodes)
	block.TrimSpace()
	return block
}

// inlineBlock converts inline content without trimming its edges, so
// nested sup and sub blocks keep their surrounding spacing.
func (b *IRBuilder) inlineBlock(nodes tree.Nodes) ir.TextBlock {
	var block ir.TextBlock
	for _, n := range nodes {
		if r, ok := b.inlineRun(n); ok {
			block.Append(r)
		}
	}
	return block
}

// inlineRun converts a single inline node. It reports false for nodes
// that produce nothing.
func (b *IRBuilder) inlineRun(n tree.Node) (ir.Run, bool) {
	switch n := n.(type) {
	case *tree.Text:
		return ir.Plain{Text: reflowInline(n.Data)}, true
	case *tree.Element:
		switch n.Tag {
		case "sup":
			return ir.Sup{Block: b.inlineBlock(n.Children)}, true
		case "sub":
			return ir.Sub{Block: b.inlineBlock(n.Children)}, true
		case "code":
			return ir.Code{Text: reflow.Reflow(tree.NodesText(n.Children))}, true
		case "br":
			return ir.Plain{Text: "\n"}, true
		default:
			b.logger.Debug("flattening inline element", "tag", n.Tag)
			return ir.Plain{Text: reflowInline(tree.NodesText(n.Children))}, true
		}
	}
	return nil, false
}

// reflowInline reflows a text fragment, keeping a single space at either
// edge where the source had whitespace so neighbouring runs stay apart.
func reflowInline(s string) string {
	if s == "" {
		return ""
	}
	text := reflow.Reflow(s)
	if text == "" {
		return " "
	}
	if first, _ := utf8.DecodeRuneInString(s); unicode.IsSpace(first) {
		text = " " + text
	}
	if last, _ := utf8.DecodeLastRuneInString(s); unicode.IsSpace(last) {
		text += " "
	}
	return text
}

// isBlank reports whether n is whitespace-only text.
func isBlank(n tree.Node) bool {
	t, ok := n.(*tree.Text)
	return ok && strings.TrimSpace(t.Data) == ""
}
