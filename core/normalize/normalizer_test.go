package normalize

import (
	"fmt"
	"strings"
	"testing"

	"github.com/greyhillman/IncrementalReadingConverter/core/tree"
	"golang.org/x/net/html"
)

// dump renders a forest compactly: elements as <tag>...</tag>, text quoted.
func dump(nodes tree.Nodes) string {
	var b strings.Builder
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.Text:
			fmt.Fprintf(&b, "%q", n.Data)
		case *tree.Element:
			fmt.Fprintf(&b, "<%s>%s</%s>", n.Tag, dump(n.Children), n.Tag)
		}
	}
	return b.String()
}

func normalizeString(t *testing.T, src string) tree.Nodes {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	nodes, err := New(DefaultRules()).Normalize(doc)
	if err != nil {
		t.Fatal(err)
	}
	return nodes
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"empty body", "<html><body></body></html>", ""},
		{"only head", "<html><head></head></html>", ""},
		{"head with script", "<html><head><script>var x;</script></head></html>", ""},
		{"head with style", "<html><head><style>p{}</style></head></html>", ""},
		{"paragraph", "<body><p>Text</p></body>", `<p>"Text"</p>`},
		{"anchor unwrapped", "<p>Test <a href='#'>a</a> to b</p>", `<p>"Test a to b"</p>`},
		{"nested emphasis", "<p>x<b><i>y</i></b><span>z</span></p>", `<p>"xyz"</p>`},
		{"empty transparent", "<p>a<span></span>b</p>", `<p>"ab"</p>`},
		{"dropped inside paragraph", "<p>a<script>evil()</script>b</p>", `<p>"ab"</p>`},
		{"form dropped", "<form><p>x</p><button>go</button></form><p>y</p>", `<p>"y"</p>`},
		{"div flattened", "<div><div><p>a</p></div><p>b</p></div>", `<p>"a"</p><p>"b"</p>`},
		{"landmarks flattened", "<header><p>h</p></header><nav><ul><li>n</li></ul></nav><footer><p>f</p></footer>",
			`<p>"h"</p><ul><li>"n"</li></ul><p>"f"</p>`},
		{"definition list", "<dl><dt>term</dt><dd>def</dd></dl>", `<ul><li>"term"</li><li>"def"</li></ul>`},
		{"img kept", `<p>a</p><img src="x.png"><p>b</p>`, `<p>"a"</p><img></img><p>"b"</p>`},
		{"text merges across flattened div", "<p>a<div>b</div>c</p>", `<p>"a"</p>"bc"<p></p>`},
		{"sup kept", "<p>x<sup>2</sup></p>", `<p>"x"<sup>"2"</sup></p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dump(normalizeString(t, tt.in)); got != tt.want {
				t.Errorf("Normalize(%q)\n got  %s\n want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeKeepsAttributes(t *testing.T) {
	nodes := normalizeString(t, `<img src="a.png" alt="A">`)
	if len(nodes) != 1 {
		t.Fatalf("expected one node, got %s", dump(nodes))
	}
	img := nodes[0].(*tree.Element)
	if src, _ := img.Attr("src"); src != "a.png" {
		t.Errorf("src = %q, want a.png", src)
	}
	if alt, _ := img.Attr("alt"); alt != "A" {
		t.Errorf("alt = %q, want A", alt)
	}
}

func TestNormalizeAdjacencyInvariant(t *testing.T) {
	inputs := []string{
		"<p>a<a>b</a><em>c</em>d<span> </span>e</p>",
		"<div>x</div><div>y</div><span>z</span>",
		"<section>a<article>b<main>c</main></article></section>",
		"<p><script></script></p>text<!-- c -->more",
		"<ul><li>a<b>b</b><ul><li><i>c</i>d</li></ul></li></ul>",
	}
	for _, in := range inputs {
		checkCanonical(t, in, normalizeString(t, in))
	}
}

func checkCanonical(t *testing.T, in string, nodes tree.Nodes) {
	t.Helper()
	prevText := false
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.Text:
			if n.Data == "" {
				t.Errorf("%q: empty text node", in)
			}
			if prevText {
				t.Errorf("%q: adjacent text nodes", in)
			}
			prevText = true
		case *tree.Element:
			prevText = false
			if n.Tag == containerTag {
				t.Errorf("%q: container survived flattening", in)
			}
			checkCanonical(t, in, n.Children)
		}
	}
}

func TestNormalizeExtendedRules(t *testing.T) {
	rules := DefaultRules().Extend([]string{"aside"}, []string{"u"}, []string{"figure"})
	doc, err := html.Parse(strings.NewReader(`<aside><p>ad</p></aside><figure><p><u>x</u>y</p></figure>`))
	if err != nil {
		t.Fatal(err)
	}
	nodes, err := New(rules).Normalize(doc)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := dump(nodes), `<p>"xy"</p>`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if len(DefaultRules().Drop) != 6 {
		t.Error("Extend modified the receiver")
	}
}

func TestNormalizeRejectsNonDocument(t *testing.T) {
	if _, err := New(DefaultRules()).Normalize(&html.Node{Type: html.ElementNode, Data: "p"}); err == nil {
		t.Error("expected error for non-document root")
	}
}
