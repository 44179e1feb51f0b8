// Package crawl provides URL discovery for batch conversion.
// It discovers same-domain pages via sitemap.xml and link extraction,
// keeping crawling logic separate from the conversion pipeline.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/xmlquery"
	"github.com/greyhillman/IncrementalReadingConverter/core"
)

// DefaultMaxPages bounds discovery when Options.MaxPages is unset.
const DefaultMaxPages = 100

// Options configures discovery.
type Options struct {
	MaxPages int
	Logger   *slog.Logger
}

// DiscoverAll finds the pages to convert starting from baseURL.
// It first tries /sitemap.xml, then falls back to BFS link crawling.
func DiscoverAll(ctx context.Context, baseURL string, fetcher core.Fetcher, opts Options) ([]string, error) {
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("parsing base URL %q: must be absolute", baseURL)
	}
	domain := strings.ToLower(parsed.Host)

	sitemapURL := fmt.Sprintf("%s://%s/sitemap.xml", parsed.Scheme, domain)
	urls, err := discoverFromSitemap(ctx, sitemapURL, domain, fetcher, opts.MaxPages)
	if err == nil && len(urls) > 0 {
		opts.Logger.Info("discovered pages from sitemap", "sitemap", sitemapURL, "count", len(urls))
		return urls, nil
	}
	if err != nil {
		opts.Logger.Debug("sitemap unavailable, crawling links", "sitemap", sitemapURL, "error", err)
	}

	urls, err = discoverFromLinks(ctx, baseURL, domain, fetcher, opts)
	if err != nil {
		return nil, err
	}
	opts.Logger.Info("discovered pages from links", "count", len(urls))
	return urls, nil
}

// discoverFromSitemap reads a sitemap, following one level of sitemap
// index entries.
func discoverFromSitemap(ctx context.Context, sitemapURL, domain string, fetcher core.Fetcher, limit int) ([]string, error) {
	pages, children, err := fetchSitemap(ctx, sitemapURL, fetcher)
	if err != nil {
		return nil, err
	}
	for _, child := range children {
		if len(pages) >= limit {
			break
		}
		more, _, err := fetchSitemap(ctx, child, fetcher)
		if err != nil {
			continue // a broken child sitemap should not hide the others
		}
		pages = append(pages, more...)
	}

	queue := NewQueue(limit)
	for _, loc := range pages {
		if IsCandidate(loc, domain) {
			queue.Add(NormalizeURL(loc))
		}
	}
	return queue.All(), nil
}

// fetchSitemap returns the page locations and child sitemap locations
// listed in one sitemap document.
func fetchSitemap(ctx context.Context, sitemapURL string, fetcher core.Fetcher) (pages, children []string, err error) {
	res, err := fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil, nil, err
	}
	return parseSitemap(res.HTML)
}

func parseSitemap(data string) (pages, children []string, err error) {
	doc, err := xmlquery.Parse(strings.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	for _, n := range xmlquery.Find(doc, "//*[local-name()='url']/*[local-name()='loc']") {
		pages = append(pages, strings.TrimSpace(n.InnerText()))
	}
	for _, n := range xmlquery.Find(doc, "//*[local-name()='sitemap']/*[local-name()='loc']") {
		children = append(children, strings.TrimSpace(n.InnerText()))
	}
	return pages, children, nil
}

// discoverFromLinks performs BFS crawling to find internal links.
func discoverFromLinks(ctx context.Context, startURL, domain string, fetcher core.Fetcher, opts Options) ([]string, error) {
	queue := NewQueue(opts.MaxPages)
	queue.Add(NormalizeURL(startURL))

	for queue.HasNext() && !queue.Full() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		currentURL := queue.Next()

		result, err := fetcher.Fetch(ctx, currentURL)
		if err != nil {
			opts.Logger.Debug("skipping page", "url", currentURL, "error", err)
			continue
		}

		links, err := extractLinks(result.HTML, currentURL)
		if err != nil {
			continue
		}

		for _, link := range links {
			if IsCandidate(link, domain) {
				queue.Add(NormalizeURL(link))
			}
		}
	}

	return queue.All(), nil
}

// extractLinks extracts all href values from <a> tags, resolving relative URLs.
func extractLinks(html string, baseURL string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	var links []string

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return
		}

		if resolved := resolveURL(href, base); resolved != "" {
			links = append(links, resolved)
		}
	})

	return links, nil
}

// resolveURL resolves a potentially relative URL against a base.
func resolveURL(href string, base *url.URL) string {
	if strings.HasPrefix(href, "mailto:") || strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "tel:") || strings.HasPrefix(href, "#") {
		return ""
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := base.ResolveReference(parsed)
	resolved.Fragment = ""
	return resolved.String()
}
