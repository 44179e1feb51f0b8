package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/greyhillman/IncrementalReadingConverter/config"
	"github.com/greyhillman/IncrementalReadingConverter/core"
	"github.com/greyhillman/IncrementalReadingConverter/core/build"
	"github.com/greyhillman/IncrementalReadingConverter/core/extract"
	"github.com/greyhillman/IncrementalReadingConverter/core/fetch"
	"github.com/greyhillman/IncrementalReadingConverter/core/ir"
	"github.com/greyhillman/IncrementalReadingConverter/core/normalize"
	"github.com/greyhillman/IncrementalReadingConverter/core/render"
)

// pipeline holds the stages for one run. Every stage is read-only after
// construction, so one pipeline serves all crawl workers.
type pipeline struct {
	fetcher    core.Fetcher
	extractor  core.Extractor
	normalizer core.Normalizer
	builder    core.Builder
	renderer   core.Renderer
}

// newPipeline assembles the stages described by cfg.
func newPipeline(cfg *config.Config, logger *slog.Logger) (*pipeline, error) {
	extractor, err := extract.New(cfg.Selector)
	if err != nil {
		return nil, err
	}
	renderer, err := selectRenderer(cfg)
	if err != nil {
		return nil, err
	}
	return &pipeline{
		fetcher:    fetch.New(cfg.Fetch.Timeout, cfg.Fetch.UserAgent),
		extractor:  extractor,
		normalizer: normalize.New(cfg.NormalizeRules()),
		builder: build.New(build.Options{
			FlattenImagePaths: cfg.FlattenImages,
			Logger:            logger,
		}),
		renderer: renderer,
	}, nil
}

// selectRenderer creates the Renderer for the configured format.
func selectRenderer(cfg *config.Config) (core.Renderer, error) {
	card := render.NewCardRenderer(render.CardOptions{
		HeaderStyle: render.HeaderStyle(cfg.Headers),
		HTMLBreaks:  cfg.HTMLBreaks,
	})
	switch cfg.Format {
	case config.FormatCard:
		return card, nil
	case config.FormatMarkdown:
		return render.NewMarkdownRenderer(), nil
	case config.FormatJSON:
		return render.NewJSONRenderer(card), nil
	case config.FormatPDF:
		return render.NewPDFRenderer(), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// process runs a single source through the full pipeline.
func (p *pipeline) process(ctx context.Context, source string) ([]byte, error) {
	// 1. Fetch
	result, err := p.fetcher.Fetch(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	// 2. Parse and select content
	ext, err := p.extractor.Extract(result.HTML)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	// 3. Reduce to the canonical tree
	nodes, err := p.normalizer.Normalize(ext.Root)
	if err != nil {
		return nil, fmt.Errorf("normalize: %w", err)
	}

	// 4. Build the document
	doc, err := p.builder.Build(nodes)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	page := &core.Page{
		Metadata: buildMetadata(source, ext, doc),
		HTML:     ext.HTML,
		Document: doc,
	}

	// 5. Render to output format
	data, err := p.renderer.Render(page)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return data, nil
}

// buildMetadata describes the source. Pages without a <title> take the
// text of their first header.
func buildMetadata(source string, ext *core.Extraction, doc *ir.Document) core.PageMetadata {
	meta := core.PageMetadata{
		Source:    source,
		Path:      source,
		Title:     ext.Title,
		Language:  ext.Language,
		FetchedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if fetch.IsURL(source) {
		if parsed, err := url.Parse(source); err == nil {
			meta.Domain = parsed.Host
			meta.Path = parsed.Path
		}
	}
	if meta.Title == "" {
		for _, n := range doc.Nodes {
			if h, ok := n.(ir.Header); ok {
				meta.Title = h.Text
				break
			}
		}
	}
	return meta
}
