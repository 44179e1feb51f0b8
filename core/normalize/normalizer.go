// Package normalize implements the Normalizer interface.
// It reduces a parsed HTML document to the canonical tree: non-content tags
// are dropped, inline formatting is unwrapped, definition lists become
// plain lists and structural containers are flattened away.
//
// Normalization runs two passes over the tree. Each pass rewrites a node
// into zero or more nodes after its children have been rewritten, and the
// results are appended to the parent's sibling sequence so adjacent text
// merges as it goes.
package normalize

import (
	"fmt"

	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
	"golang.org/x/net/html"
)

// TreeNormalizer converts parsed HTML into canonical tree form.
type TreeNormalizer struct {
	table table
}

// New creates a TreeNormalizer using the given classification rules.
func New(rules Rules) *TreeNormalizer {
	return &TreeNormalizer{table: compile(rules)}
}

// Normalize converts a parsed document root into the canonical forest.
func (n *TreeNormalizer) Normalize(root *html.Node) (tree.Nodes, error) {
	nodes, err := tree.FromHTML(root)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return n.NormalizeNodes(nodes), nil
}

// NormalizeNodes runs both passes over an already converted forest.
func (n *TreeNormalizer) NormalizeNodes(nodes tree.Nodes) tree.Nodes {
	return rewriteAll(rewriteAll(nodes, n.classify), flatten)
}

// rewriteAll applies a pass to every node of a sibling sequence.
func rewriteAll(nodes tree.Nodes, pass func(tree.Node) tree.Nodes) tree.Nodes {
	var out tree.Nodes
	for _, node := range nodes {
		out = out.Concat(pass(node))
	}
	return out
}

// classify is the first pass.
func (n *TreeNormalizer) classify(node tree.Node) tree.Nodes {
	el, ok := node.(*tree.Element)
	if !ok {
		return tree.Nodes{}.Append(node)
	}

	act := n.table.classify(el.Tag)
	if act == drop {
		return nil
	}

	children := rewriteAll(el.Children, n.classify)

	switch act {
	case unwrap:
		return children
	case wrap:
		if len(children) == 0 {
			return nil
		}
		return tree.Nodes{&tree.Element{Tag: containerTag, Children: children}}
	case retag:
		return tree.Nodes{&tree.Element{
			Tag:        n.table.retag[el.Tag],
			Attributes: el.Attributes,
			Children:   children,
		}}
	default:
		return tree.Nodes{&tree.Element{
			Tag:        el.Tag,
			Attributes: el.Attributes,
			Children:   children,
		}}
	}
}

// flatten is the second pass: containers are replaced by their children.
func flatten(node tree.Node) tree.Nodes {
	el, ok := node.(*tree.Element)
	if !ok {
		return tree.Nodes{}.Append(node)
	}

	children := rewriteAll(el.Children, flatten)
	if el.Tag == containerTag {
		return children
	}
	return tree.Nodes{&tree.Element{
		Tag:        el.Tag,
		Attributes: el.Attributes,
		Children:   children,
	}}
}
