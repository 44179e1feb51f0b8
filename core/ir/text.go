package ir

import "strings"

// Run is one inline piece of a TextBlock: Plain, Sub, Sup or Code.
type Run interface {
	run()
}

// Plain is unformatted text.
type Plain struct {
	Text string
}

// Sub is subscript text.
type Sub struct {
	Block TextBlock
}

// Sup is superscript text.
type Sup struct {
	Block TextBlock
}

// Code is inline code. It cannot contain further formatting.
type Code struct {
	Text string
}

func (Plain) run() {}
func (Sub) run()   {}
func (Sup) run()   {}
func (Code) run()  {}

// TextBlock is a sequence of runs in which no two Plain runs are adjacent.
// The zero value is an empty block.
type TextBlock struct {
	runs []Run
}

// NewTextBlock builds a block by appending runs in order.
func NewTextBlock(runs ...Run) TextBlock {
	var b TextBlock
	for _, r := range runs {
		b.Append(r)
	}
	return b
}

// PlainText returns a block holding a single Plain run.
func PlainText(s string) TextBlock {
	return NewTextBlock(Plain{Text: s})
}

// Append adds r to the block, merging it into a trailing Plain run when
// both are plain. Empty plain text is ignored.
func (b *TextBlock) Append(r Run) {
	p, ok := r.(Plain)
	if !ok {
		b.runs = append(b.runs, r)
		return
	}
	if p.Text == "" {
		return
	}
	if n := len(b.runs); n > 0 {
		if last, ok := b.runs[n-1].(Plain); ok {
			b.runs[n-1] = Plain{Text: last.Text + p.Text}
			return
		}
	}
	b.runs = append(b.runs, p)
}

// AppendBlock appends every run of other to b.
func (b *TextBlock) AppendBlock(other TextBlock) {
	for _, r := range other.runs {
		b.Append(r)
	}
}

// Runs returns the runs of the block. The slice must not be modified.
func (b TextBlock) Runs() []Run {
	return b.runs
}

// Len returns the number of runs.
func (b TextBlock) Len() int {
	return len(b.runs)
}

// IsEmpty reports whether the block holds no runs.
func (b TextBlock) IsEmpty() bool {
	return len(b.runs) == 0
}

// TrimSpace removes leading whitespace from a leading Plain run and
// trailing whitespace from a trailing Plain run. Runs left empty are
// removed.
func (b *TextBlock) TrimSpace() {
	if n := len(b.runs); n > 0 {
		if p, ok := b.runs[n-1].(Plain); ok {
			if t := strings.TrimRight(p.Text, " \t\n"); t != "" {
				b.runs[n-1] = Plain{Text: t}
			} else {
				b.runs = b.runs[:n-1]
			}
		}
	}
	if len(b.runs) > 0 {
		if p, ok := b.runs[0].(Plain); ok {
			if t := strings.TrimLeft(p.Text, " \t\n"); t != "" {
				b.runs[0] = Plain{Text: t}
			} else {
				b.runs = b.runs[1:]
			}
		}
	}
}

// PlainString returns the text of the block with all formatting removed.
func (b TextBlock) PlainString() string {
	var sb strings.Builder
	for _, r := range b.runs {
		switch r := r.(type) {
		case Plain:
			sb.WriteString(r.Text)
		case Code:
			sb.WriteString(r.Text)
		case Sub:
			sb.WriteString(r.Block.PlainString())
		case Sup:
			sb.WriteString(r.Block.PlainString())
		}
	}
	return sb.String()
}
