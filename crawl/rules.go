// Package crawl: URL filtering rules.
// Decides which discovered links are pages worth converting and reduces
// URLs to a canonical form for deduplication.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// assetExtensions never hold an article.
var assetExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true, ".json": true, ".xml": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true, ".epub": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// IsCandidate reports whether rawURL is an http(s) page on host domain
// that is not a static asset. Hosts compare case-insensitively.
func IsCandidate(rawURL string, domain string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return false
	case !strings.EqualFold(u.Host, domain):
		return false
	}
	return !assetExtensions[strings.ToLower(path.Ext(u.Path))]
}

// NormalizeURL returns rawURL with its fragment removed, its host
// lowercased and any trailing slash trimmed (the root path keeps its
// slash). Unparseable input is returned unchanged.
func NormalizeURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.Host = strings.ToLower(u.Host)
	u.Fragment, u.RawFragment = "", ""
	if u.Path != "/" {
		u.Path = strings.TrimSuffix(u.Path, "/")
		u.RawPath = ""
	}
	return u.String()
}
