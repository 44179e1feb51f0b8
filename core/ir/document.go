// Package ir defines the typed document model between normalization and
// rendering.
//
// A Document is a flat sequence of block nodes. Lists and tables are
// recursive structures owned by exactly one parent; nothing in the model is
// shared or mutated after it has been handed to the next stage.
package ir

// Node is a top-level document node: Image, Preformatted, Paragraph,
// *List, *Table or Header.
type Node interface {
	irNode()
}

// Image references an image by its source.
type Image struct {
	Src string
}

// Preformatted is literal text whose whitespace is preserved.
type Preformatted struct {
	Text string
}

// Paragraph is a block of inline text.
type Paragraph struct {
	Text TextBlock
}

// Header is a section heading with its level (1..6) and plain text.
type Header struct {
	Level int
	Text  string
}

func (Image) irNode()        {}
func (Preformatted) irNode() {}
func (Paragraph) irNode()    {}
func (Header) irNode()       {}
func (*List) irNode()        {}
func (*Table) irNode()       {}

// Document is the ordered sequence of top-level nodes.
type Document struct {
	Nodes []Node
}

// Add appends n to the document and returns d for chaining.
func (d *Document) Add(n Node) *Document {
	d.Nodes = append(d.Nodes, n)
	return d
}

// Len returns the number of top-level nodes.
func (d *Document) Len() int {
	return len(d.Nodes)
}
