package tree

import (
	"errors"

	"golang.org/x/net/html"
)

// ErrNotDocument is returned when conversion starts from a node that is not
// a document root.
var ErrNotDocument = errors.New("converting from non-document node")

// FromHTML converts a parsed HTML document into a canonical sibling
// sequence. Comments, doctypes and other non-content nodes are dropped.
func FromHTML(root *html.Node) (Nodes, error) {
	if root == nil || root.Type != html.DocumentNode {
		return nil, ErrNotDocument
	}
	return fromChildren(root), nil
}

func fromChildren(n *html.Node) Nodes {
	var out Nodes
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = out.Append(fromNode(c))
	}
	return out
}

// fromNode returns nil for node kinds that carry no content.
func fromNode(n *html.Node) Node {
	switch n.Type {
	case html.TextNode:
		return NewText(n.Data)
	case html.ElementNode:
		var attrs map[string]string
		if len(n.Attr) > 0 {
			attrs = make(map[string]string, len(n.Attr))
			for _, a := range n.Attr {
				attrs[a.Key] = a.Val
			}
		}
		return &Element{
			Tag:        n.Data,
			Attributes: attrs,
			Children:   fromChildren(n),
		}
	default:
		return nil
	}
}
