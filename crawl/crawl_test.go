package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/greyhillman/IncrementalReadingConverter/core"
	"github.com/greyhillman/IncrementalReadingConverter/core/fetch"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNormalizeURL(t *testing.T) {
	tests := []struct{ in, want string }{
		{"https://Example.com/a/#top", "https://example.com/a"},
		{"https://example.com/", "https://example.com/"},
		{"https://example.com/docs/?q=1", "https://example.com/docs?q=1"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"https://example.com/page", true},
		{"https://other.com/page", false},
		{"https://example.com/logo.PNG", false},
		{"https://example.com/feed.xml", false},
		{"ftp://example.com/page", false},
		{"https://EXAMPLE.com/Page", true},
		{"https://example.com/docs/", true},
	}
	for _, tt := range tests {
		if got := IsCandidate(tt.in, "example.com"); got != tt.want {
			t.Errorf("IsCandidate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQueue(t *testing.T) {
	q := NewQueue(3)
	for _, u := range []string{"a", "b", "a", "c", "d"} {
		q.Add(u)
	}
	if !reflect.DeepEqual(q.All(), []string{"a", "b", "c"}) {
		t.Errorf("All = %v", q.All())
	}
	if !q.Full() || q.Add("e") {
		t.Error("queue accepted a URL past its limit")
	}
	var got []string
	for q.HasNext() {
		got = append(got, q.Next())
	}
	if len(got) != 3 || q.Len() != 3 {
		t.Errorf("drained %v", got)
	}

	if NewQueue(0).Full() {
		t.Error("unbounded queue reports full")
	}
}

func TestParseSitemap(t *testing.T) {
	data := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc> https://example.com/a </loc></url>
  <url><loc>https://example.com/b</loc><lastmod>2024-01-01</lastmod></url>
</urlset>`
	pages, children, err := parseSitemap(data)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(pages, []string{"https://example.com/a", "https://example.com/b"}) || len(children) != 0 {
		t.Errorf("pages %v, children %v", pages, children)
	}

	index := `<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>https://example.com/posts.xml</loc></sitemap>
</sitemapindex>`
	pages, children, err = parseSitemap(index)
	if err != nil {
		t.Fatal(err)
	}
	if len(pages) != 0 || !reflect.DeepEqual(children, []string{"https://example.com/posts.xml"}) {
		t.Errorf("pages %v, children %v", pages, children)
	}
}

func TestDiscoverFromSitemapIndex(t *testing.T) {
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<sitemapindex><sitemap><loc>%s/posts.xml</loc></sitemap></sitemapindex>`, srv.URL)
	})
	mux.HandleFunc("/posts.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<urlset>
			<url><loc>%[1]s/one</loc></url>
			<url><loc>%[1]s/two/</loc></url>
			<url><loc>%[1]s/image.png</loc></url>
			<url><loc>https://elsewhere.example/x</loc></url>
		</urlset>`, srv.URL)
	})

	urls, err := DiscoverAll(context.Background(), srv.URL, fetch.New(0, ""), Options{Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{srv.URL + "/one", srv.URL + "/two"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("got %v, want %v", urls, want)
	}
}

func TestDiscoverFromLinks(t *testing.T) {
	pages := map[string]string{
		"/":  `<a href="/a">a</a> <a href="b#frag">b</a> <a href="mailto:x@y">m</a> <a href="https://other.example/">o</a>`,
		"/a": `<a href="/">home</a><a href="/c">c</a><a href="/style.css">css</a>`,
		"/b": `<a href="/a">a</a>`,
		"/c": `<a href="/d">d</a>`,
		"/d": `end`,
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "<html><body>"+body+"</body></html>")
	}))
	defer srv.Close()

	urls, err := DiscoverAll(context.Background(), srv.URL+"/", fetch.New(0, ""), Options{Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{srv.URL + "/", srv.URL + "/a", srv.URL + "/b", srv.URL + "/c", srv.URL + "/d"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("got %v\nwant %v", urls, want)
	}

	limited, err := DiscoverAll(context.Background(), srv.URL+"/", fetch.New(0, ""), Options{MaxPages: 2, Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 {
		t.Errorf("MaxPages 2 gave %v", limited)
	}
}

// siteFetcher serves fixed pages by URL.
type siteFetcher map[string]string

func (f siteFetcher) Fetch(_ context.Context, source string) (*core.FetchResult, error) {
	body, ok := f[source]
	if !ok {
		return nil, fmt.Errorf("%s: %w", source, fetch.ErrStatus)
	}
	return &core.FetchResult{Source: source, StatusCode: http.StatusOK, HTML: body}, nil
}

func TestDiscoverMixedCaseHost(t *testing.T) {
	site := siteFetcher{
		"https://example.com/":  `<a href="https://example.com/a">a</a><a href="/b">b</a>`,
		"https://example.com/a": `<a href="https://EXAMPLE.COM/b">b</a>`,
		"https://example.com/b": `end`,
	}
	urls, err := DiscoverAll(context.Background(), "https://Example.com/", site, Options{Logger: quiet})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"https://example.com/", "https://example.com/a", "https://example.com/b"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("got %v, want %v", urls, want)
	}
}

func TestDiscoverRejectsRelativeBase(t *testing.T) {
	if _, err := DiscoverAll(context.Background(), "/just/a/path", fetch.New(0, ""), Options{Logger: quiet}); err == nil {
		t.Error("expected error for relative base URL")
	}
}
