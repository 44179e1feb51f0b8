package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/greyhillman/IncrementalReadingConverter/core"
	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
)

func item(s string, nested ...*ir.List) ir.ListItem {
	it := ir.NewListItem(ir.TextContent{Text: ir.PlainText(s)})
	for _, l := range nested {
		it.Add(l)
	}
	return it
}

func doc(nodes ...ir.Node) *ir.Document {
	d := &ir.Document{}
	for _, n := range nodes {
		d.Add(n)
	}
	return d
}

func TestRenderLists(t *testing.T) {
	tests := []struct {
		name string
		list *ir.List
		want string
	}{
		{
			"ordered in ordered",
			ir.NewList(ir.Ordered).Add(item("a", ir.NewList(ir.Ordered).Add(item("b")))),
			"1) a\n--1) b",
		},
		{
			"unordered in unordered",
			ir.NewList(ir.Unordered).Add(item("a", ir.NewList(ir.Unordered).Add(item("b")))),
			"-- a\n---- b",
		},
		{
			"ordered in unordered",
			ir.NewList(ir.Unordered).Add(item("a", ir.NewList(ir.Ordered).Add(item("b")).Add(item("c")))),
			"-- a\n--1) b\n--2) c",
		},
		{
			"numbering",
			ir.NewList(ir.Ordered).Add(item("x")).Add(item("y")).Add(item("z")),
			"1) x\n2) y\n3) z",
		},
		{
			"line break in item",
			ir.NewList(ir.Unordered).Add(item("a\nb")).Add(item("c")),
			"-- a\nb\n-- c",
		},
		{
			"three levels",
			ir.NewList(ir.Unordered).Add(item("a",
				ir.NewList(ir.Unordered).Add(item("b",
					ir.NewList(ir.Ordered).Add(item("c")))))),
			"-- a\n---- b\n----1) c",
		},
	}
	r := NewCardRenderer(CardOptions{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.RenderDocument(doc(tt.list)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderTableRules(t *testing.T) {
	header := ir.NewRow("H")
	footer := ir.NewRow("F")
	body := []ir.TableRow{ir.NewRow("R1"), ir.NewRow("R2")}

	tests := []struct {
		name           string
		header, footer *ir.TableRow
		want           string
	}{
		{"header and footer", &header, &footer, "H\n-----\nR1\nR2\n-----\nF"},
		{"header only", &header, nil, "H\n-----\nR1\nR2"},
		{"footer only", nil, &footer, "R1\nR2\n-----\nF"},
		{"neither", nil, nil, "R1\nR2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := &ir.Table{Header: tt.header, Body: body, Footer: tt.footer}
			if got := renderTable(table); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderCells(t *testing.T) {
	table := &ir.Table{Body: []ir.TableRow{ir.NewRow("a", "b", "c")}}
	if got := renderTable(table); got != "a | b | c" {
		t.Errorf("got %q", got)
	}
}

func TestRenderRuns(t *testing.T) {
	block := ir.NewTextBlock(
		ir.Plain{Text: "E = mc"},
		ir.Sup{Block: ir.PlainText("2")},
		ir.Plain{Text: ", H"},
		ir.Sub{Block: ir.NewTextBlock(ir.Plain{Text: "2"}, ir.Sup{Block: ir.PlainText("x")})},
		ir.Plain{Text: "O and "},
		ir.Code{Text: "i = 1"},
	)
	want := "E = mc^{2}, H_{2^{x}}O and `i = 1`"
	if got := renderTextBlock(block); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDocument(t *testing.T) {
	d := doc(
		ir.Header{Level: 2, Text: "Title"},
		ir.Paragraph{Text: ir.PlainText("Test test")},
		ir.Image{Src: "cat.png"},
		ir.Preformatted{Text: "x := 1"},
		ir.NewList(ir.Unordered).Add(item("a")),
	)

	plain := NewCardRenderer(CardOptions{}).RenderDocument(d)
	want := "Title\n\nTest test\n\n<img src=\"cat.png\" />\n```x := 1```\n\n-- a"
	if plain != want {
		t.Errorf("plain headers:\ngot  %q\nwant %q", plain, want)
	}

	marked := NewCardRenderer(CardOptions{HeaderStyle: HeadersMarked}).RenderDocument(d)
	if !strings.HasPrefix(marked, "## Title\n\n") {
		t.Errorf("marked headers: got %q", marked)
	}

	breaks := NewCardRenderer(CardOptions{HTMLBreaks: true}).RenderDocument(d)
	if strings.Contains(breaks, "\n") {
		t.Errorf("html breaks left a newline: %q", breaks)
	}
	if breaks != strings.ReplaceAll(want, "\n", "<br />") {
		t.Errorf("html breaks: got %q", breaks)
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	if got := NewCardRenderer(CardOptions{}).RenderDocument(doc()); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestCardRendererRequiresDocument(t *testing.T) {
	r := NewCardRenderer(CardOptions{})
	if _, err := r.Render(&core.Page{}); err == nil {
		t.Error("expected error for page without document")
	}
	out, err := r.Render(&core.Page{Document: doc(ir.Paragraph{Text: ir.PlainText("a")})})
	if err != nil || string(out) != "a" {
		t.Errorf("Render = %q, %v", out, err)
	}
	if r.Extension() != ".txt" {
		t.Errorf("Extension = %q", r.Extension())
	}
}

func samplePage() *core.Page {
	nested := ir.NewList(ir.Ordered).Add(item("b"))
	header := ir.NewRow("h")
	return &core.Page{
		Metadata: core.PageMetadata{Source: "https://example.com/notes", Title: "Notes"},
		HTML:     "<h1>Notes</h1><p>Hello <strong>world</strong></p>",
		Document: doc(
			ir.Header{Level: 1, Text: "Notes"},
			ir.Paragraph{Text: ir.NewTextBlock(ir.Plain{Text: "x"}, ir.Sup{Block: ir.PlainText("2")})},
			ir.Image{Src: "cat.png"},
			ir.NewList(ir.Unordered).Add(item("a", nested)),
			&ir.Table{Header: &header, Body: []ir.TableRow{ir.NewRow("1"), ir.NewRow("2")}},
			ir.Preformatted{Text: "code"},
		),
	}
}

func TestJSONRenderer(t *testing.T) {
	data, err := NewJSONRenderer(nil).Render(samplePage())
	if err != nil {
		t.Fatal(err)
	}
	var got core.PageJSON
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if got.Metadata.Title != "Notes" {
		t.Errorf("title = %q", got.Metadata.Title)
	}
	s := got.Structure
	if len(s.Headings) != 1 || s.Headings[0].Level != 1 || s.Headings[0].Text != "Notes" {
		t.Errorf("headings = %#v", s.Headings)
	}
	if s.Paragraphs != 1 || s.Preformatted != 1 || s.Tables != 1 || s.TableRows != 3 {
		t.Errorf("counts = %#v", s)
	}
	if s.Lists != 2 || s.ListItems != 2 {
		t.Errorf("lists = %d, items = %d", s.Lists, s.ListItems)
	}
	if len(s.Images) != 1 || s.Images[0] != "cat.png" {
		t.Errorf("images = %#v", s.Images)
	}
	if !strings.Contains(got.Content.Card, "x^{2}") {
		t.Errorf("card = %q", got.Content.Card)
	}
	if !strings.Contains(got.Content.Text, "x2") || strings.Contains(got.Content.Text, "^{") {
		t.Errorf("text = %q", got.Content.Text)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	r := NewMarkdownRenderer()
	out, err := r.Render(samplePage())
	if err != nil {
		t.Fatal(err)
	}
	md := string(out)
	if !strings.Contains(md, "# Notes") || !strings.Contains(md, "Hello **world**") {
		t.Errorf("unexpected markdown %q", md)
	}
	if _, err := r.Render(&core.Page{}); err == nil {
		t.Error("expected error for empty HTML")
	}
}

func TestPDFRenderer(t *testing.T) {
	out, err := NewPDFRenderer().Render(samplePage())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output is not a PDF: %q", out[:min(len(out), 16)])
	}
}
