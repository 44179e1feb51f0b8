package build

import (
	"strings"

	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
)

func listStyle(tag string) ir.ListStyle {
	if tag == "ol" {
		return ir.Ordered
	}
	return ir.Unordered
}

// convertList converts the children of an ol or ul element. Only li
// elements and whitespace may appear directly inside a list.
func (b *IRBuilder) convertList(style ir.ListStyle, tag string, children tree.Nodes) (*ir.List, error) {
	list := ir.NewList(style)
	for _, c := range children {
		if isBlank(c) {
			continue
		}
		el, ok := c.(*tree.Element)
		if !ok {
			return nil, &UnrecognizedElementError{Tag: "#text", Parent: tag}
		}
		if el.Tag != "li" {
			return nil, &UnrecognizedElementError{Tag: el.Tag, Parent: tag}
		}
		item, err := b.convertListItem(el.Children)
		if err != nil {
			return nil, err
		}
		list.Add(item)
	}
	return list, nil
}

// convertListItem groups consecutive inline content of an li into text
// contents, interleaved with paragraphs, code blocks and nested lists in
// document order.
func (b *IRBuilder) convertListItem(children tree.Nodes) (ir.ListItem, error) {
	var item ir.ListItem
	var pending ir.TextBlock
	flush := func() {
		pending.TrimSpace()
		if !pending.IsEmpty() {
			item.Add(ir.TextContent{Text: pending})
		}
		pending = ir.TextBlock{}
	}

	for _, c := range children {
		switch c := c.(type) {
		case *tree.Text:
			pending.Append(ir.Plain{Text: reflowInline(c.Data)})
		case *tree.Element:
			switch c.Tag {
			case "sup", "sub", "code", "br":
				r, _ := b.inlineRun(c)
				pending.Append(r)
			case "p":
				flush()
				if block := b.convertTextBlock(c.Children); !block.IsEmpty() {
					item.Add(ir.TextContent{Text: block})
				}
			case "pre":
				flush()
				if pre := b.convertPre(c.Children); strings.TrimSpace(pre.Text) != "" {
					item.Add(ir.TextContent{Text: ir.NewTextBlock(ir.Code{Text: pre.Text})})
				}
			case "ol", "ul":
				flush()
				nested, err := b.convertList(listStyle(c.Tag), c.Tag, c.Children)
				if err != nil {
					return ir.ListItem{}, err
				}
				item.Add(nested)
			default:
				return ir.ListItem{}, &UnrecognizedElementError{Tag: c.Tag, Parent: "li"}
			}
		}
	}
	flush()
	return item, nil
}
