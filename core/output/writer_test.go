package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"https://example.com", "example_com"},
		{"https://example.com/docs/intro", "example_com_docs_intro"},
		{"https://example.com:8080/a/", "example_com_8080_a"},
		{"notes.html", "notes"},
		{"pages/chapter 1.htm", "chapter_1"},
		{"/tmp/my-page", "my-page"},
	}
	for _, tt := range tests {
		if got := Filename(tt.in); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	path, err := w.Write("notes.html", []byte("card"), ".txt")
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "notes.txt") {
		t.Errorf("path = %q", path)
	}
	assertFile(t, path, "card")
}

func TestWriteMirrored(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct{ url, want string }{
		{"https://site.com/", filepath.Join(dir, "index.json")},
		{"https://site.com/docs/intro", filepath.Join(dir, "docs", "intro.json")},
		{"https://site.com/docs/../x", filepath.Join(dir, "docs", "__", "x.json")},
	}
	for _, tt := range tests {
		path, err := w.WriteMirrored(tt.url, []byte("{}"), ".json")
		if err != nil {
			t.Fatal(err)
		}
		if path != tt.want {
			t.Errorf("WriteMirrored(%q) = %q, want %q", tt.url, path, tt.want)
		}
		assertFile(t, path, "{}")
	}
}

func TestWriteBeside(t *testing.T) {
	src := filepath.Join(t.TempDir(), "text.txt")
	path, err := WriteBeside(src, ".out", []byte("a b"))
	if err != nil {
		t.Fatal(err)
	}
	if path != src+".out" {
		t.Errorf("path = %q", path)
	}
	assertFile(t, path, "a b")
}

func assertFile(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("%s = %q, want %q", path, got, want)
	}
}
