// Package cmd: crawl command.
// Discovers the pages of a site and converts each of them with a bounded
// worker pool.
package cmd

import (
	"fmt"

	"github.com/greyhillman/IncrementalReadingConverter/core/batch"
	"github.com/greyhillman/IncrementalReadingConverter/core/fetch"
	"github.com/greyhillman/IncrementalReadingConverter/core/output"
	"github.com/greyhillman/IncrementalReadingConverter/crawl"
	"github.com/spf13/cobra"
)

var (
	flagMaxPages int
	flagWorkers  int
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>",
	Short: "Convert every page discovered on a site",
	Long: `Crawl discovers same-domain pages from sitemap.xml, falling back to following
links, and converts each one. Output files mirror the URL paths.

Examples:
  irconvert crawl https://example.com/docs --max_pages 20
  irconvert crawl https://example.com --selector main --workers 8 --output_dir ./cards`,
	Args: cobra.ExactArgs(1),
	RunE: runCrawl,
}

func init() {
	rootCmd.AddCommand(crawlCmd)
	addPipelineFlags(crawlCmd.Flags())
	crawlCmd.Flags().IntVar(&flagMaxPages, "max_pages", crawl.DefaultMaxPages, "Maximum number of pages to convert")
	crawlCmd.Flags().IntVar(&flagWorkers, "workers", 4, "Pages converted concurrently")
}

func runCrawl(cmd *cobra.Command, args []string) error {
	rawURL := args[0]
	if !fetch.IsURL(rawURL) {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", rawURL)
	}

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}
	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	fmt.Fprintf(out, "Discovering pages from %s...\n", rawURL)
	urls, err := crawl.DiscoverAll(ctx, rawURL, p.fetcher, crawl.Options{
		MaxPages: cfg.Crawl.MaxPages,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	fmt.Fprintf(out, "Found %d pages to process\n", len(urls))

	results := batch.Run(ctx, urls, batch.Options{Workers: cfg.Crawl.Workers, Logger: logger}, p.process)

	var errCount int
	for i, r := range results {
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(results), r.Input)
		if r.Err != nil {
			fmt.Fprintf(errOut, "  ✗ Error: %v\n", r.Err)
			errCount++
			continue
		}

		path, err := writer.WriteMirrored(r.Input, r.Value, p.renderer.Extension())
		if err != nil {
			fmt.Fprintf(errOut, "  ✗ Write error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(out, "  ✓ Written: %s\n", path)
	}

	if errCount > 0 {
		fmt.Fprintf(errOut, "\n%d/%d pages failed\n", errCount, len(results))
	}
	return ctx.Err()
}
