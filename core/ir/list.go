package ir

// ListStyle selects how list items are marked.
type ListStyle int

const (
	Unordered ListStyle = iota
	Ordered
)

func (s ListStyle) String() string {
	if s == Ordered {
		return "ordered"
	}
	return "unordered"
}

// List is an ordered or unordered list. Nesting depth is not stored;
// renderers compute it while walking.
type List struct {
	Style ListStyle
	Items []ListItem
}

// NewList returns an empty list of the given style.
func NewList(style ListStyle) *List {
	return &List{Style: style}
}

// Add appends item and returns l for chaining.
func (l *List) Add(item ListItem) *List {
	l.Items = append(l.Items, item)
	return l
}

// ListItem holds the contents of one list entry, typically a text block
// optionally followed by a nested list.
type ListItem struct {
	Contents []ListContent
}

// NewListItem returns an item holding the given contents.
func NewListItem(contents ...ListContent) ListItem {
	return ListItem{Contents: contents}
}

// Add appends c to the item.
func (it *ListItem) Add(c ListContent) {
	it.Contents = append(it.Contents, c)
}

// ListContent is either TextContent or a nested *List.
type ListContent interface {
	listContent()
}

// TextContent is a text block inside a list item.
type TextContent struct {
	Text TextBlock
}

func (TextContent) listContent() {}
func (*List) listContent()       {}
