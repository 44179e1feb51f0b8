// Package cmd: convert command.
// This is the main command that orchestrates the pipeline:
// fetch → extract → normalize → build → render → write.
package cmd

import (
	"fmt"

	"github.com/greyhillman/IncrementalReadingConverter/config"
	"github.com/greyhillman/IncrementalReadingConverter/core/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flag variables shared by convert and crawl.
var (
	flagConfig        string
	flagFormat        = config.FormatCard
	flagSelector      string
	flagHeaders       = config.HeadersPlain
	flagHTMLBreaks    bool
	flagFlattenImages bool
	flagOutputDir     string
	flagStdout        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file-or-url>",
	Short: "Convert one page to flashcard text or another format",
	Long: `Convert reads an HTML file or fetches a URL, reduces it to its content and
writes it as flashcard text (or Markdown, JSON, PDF).

Examples:
  irconvert convert notes.html --stdout
  irconvert convert https://example.com/article --selector "article" --flatten-images
  irconvert convert notes.html --format json --output_dir ./out
  irconvert convert notes.html --config irconvert.yaml --html-breaks`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addPipelineFlags(convertCmd.Flags())
	convertCmd.Flags().BoolVar(&flagStdout, "stdout", false, "Write the result to stdout instead of a file")
}

// addPipelineFlags registers the flags that shape the conversion.
func addPipelineFlags(fs *pflag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "YAML configuration file")
	fs.Var(config.NewEnum(&flagFormat, config.Formats...), "format", "Output format")
	fs.StringVar(&flagSelector, "selector", "", "CSS selector for the content to convert (default: whole page)")
	fs.Var(config.NewEnum(&flagHeaders, config.HeaderStyles...), "headers", "Header style in card text")
	fs.BoolVar(&flagHTMLBreaks, "html-breaks", false, "Join card lines with <br /> for an HTML field")
	fs.BoolVar(&flagFlattenImages, "flatten-images", false, "Keep only the file name of image sources")
	fs.StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

// loadConfig layers flags the user set over the config file (or the
// defaults) and validates the result.
func loadConfig(fs *pflag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		if cfg, err = config.LoadFile(flagConfig); err != nil {
			return nil, err
		}
	}

	if fs.Changed("format") {
		cfg.Format = flagFormat
	}
	if fs.Changed("selector") {
		cfg.Selector = flagSelector
	}
	if fs.Changed("headers") {
		cfg.Headers = flagHeaders
	}
	if fs.Changed("html-breaks") {
		cfg.HTMLBreaks = flagHTMLBreaks
	}
	if fs.Changed("flatten-images") {
		cfg.FlattenImages = flagFlattenImages
	}
	if fs.Changed("output_dir") {
		cfg.OutputDir = flagOutputDir
	}
	if fs.Changed("max_pages") {
		cfg.Crawl.MaxPages = flagMaxPages
	}
	if fs.Changed("workers") {
		cfg.Crawl.Workers = flagWorkers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]

	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	p, err := newPipeline(cfg, logger)
	if err != nil {
		return err
	}

	data, err := p.process(cmd.Context(), source)
	if err != nil {
		return fmt.Errorf("converting %s: %w", source, err)
	}

	if flagStdout {
		_, err := cmd.OutOrStdout().Write(append(data, '\n'))
		return err
	}

	writer, err := output.New(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(source, data, p.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Written: %s\n", path)
	return nil
}
