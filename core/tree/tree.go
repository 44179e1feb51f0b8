// Package tree defines the canonical document tree produced by normalization.
//
// The tree has only two node kinds, Text and Element. Sibling sequences are
// kept in canonical form as they are built: Nodes.Append never leaves two
// adjacent Text nodes or an empty Text node behind.
package tree

import (
	"sort"
	"strings"
)

// Node is a canonical tree node: either *Text or *Element.
type Node interface {
	node()
}

// Text is a run of character data.
type Text struct {
	Data string
}

// Element is a tagged node with attributes and children.
type Element struct {
	Tag        string
	Attributes map[string]string
	Children   Nodes
}

func (*Text) node()    {}
func (*Element) node() {}

// NewText returns a Text node holding s.
func NewText(s string) *Text {
	return &Text{Data: s}
}

// NewElement returns an Element with the given tag and children.
// Children are appended one by one so the result is canonical.
func NewElement(tag string, attrs map[string]string, children ...Node) *Element {
	var kids Nodes
	for _, c := range children {
		kids = kids.Append(c)
	}
	return &Element{Tag: tag, Attributes: attrs, Children: kids}
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.Attributes[key]
	return v, ok
}

// AttrKeys returns the attribute names in sorted order.
func (e *Element) AttrKeys() []string {
	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Nodes is an ordered sibling sequence in canonical form.
type Nodes []Node

// Append adds n to the end of ns and returns the updated sequence.
// Empty text is discarded and text following text is merged into it.
func (ns Nodes) Append(n Node) Nodes {
	if n == nil {
		return ns
	}
	t, isText := n.(*Text)
	if !isText {
		return append(ns, n)
	}
	if t.Data == "" {
		return ns
	}
	if len(ns) > 0 {
		if last, ok := ns[len(ns)-1].(*Text); ok {
			ns[len(ns)-1] = &Text{Data: last.Data + t.Data}
			return ns
		}
	}
	return append(ns, t)
}

// Concat appends every node of other to ns, keeping ns canonical at the
// join point.
func (ns Nodes) Concat(other Nodes) Nodes {
	for _, n := range other {
		ns = ns.Append(n)
	}
	return ns
}

// TextContent returns the concatenated character data of n and its
// descendants.
func TextContent(n Node) string {
	var b strings.Builder
	writeText(&b, n)
	return b.String()
}

// NodesText returns the concatenated character data of ns.
func NodesText(ns Nodes) string {
	var b strings.Builder
	for _, n := range ns {
		writeText(&b, n)
	}
	return b.String()
}

func writeText(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Text:
		b.WriteString(n.Data)
	case *Element:
		for _, c := range n.Children {
			writeText(b, c)
		}
	}
}
