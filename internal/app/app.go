package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/takaaki-mizuno/local-book-translator/internal/assemble"
	"github.com/takaaki-mizuno/local-book-translator/internal/chunk"
	"github.com/takaaki-mizuno/local-book-translator/internal/extract"
	"github.com/takaaki-mizuno/local-book-translator/internal/markdown"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

// Run executes the pipeline: read HTML, extract readable content, convert to
// Markdown and, unless translation is disabled, translate chunk by chunk and
// reassemble. The output file is written only after the whole document
// succeeded; a half-translated document presented as complete is worse than a
// clear failure.
func Run(ctx context.Context, opts Options) error {
	opts, err := normalizeOptions(opts)
	if err != nil {
		return err
	}
	logger := newLogger(opts.Quiet)

	htmlData, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fragments, err := extract.ReadableContent(string(htmlData), opts.ContentClass)
	if err != nil {
		return fmt.Errorf("extract content: %w", err)
	}
	logger.Info("extracted readable content", "fragments", len(fragments))

	doc, err := markdown.NewConverter().FragmentsToMarkdown(fragments)
	if err != nil {
		return fmt.Errorf("convert to markdown: %w", err)
	}

	if opts.StartBlock > 1 {
		doc = skipBlocks(doc, opts.StartBlock)
		logger.Info("resuming", "start_block", opts.StartBlock)
	}

	if !opts.Translate {
		logger.Info("translation disabled; writing converted markdown", "path", opts.OutputPath)
		return writeOutput(opts.OutputPath, doc)
	}

	out, err := translateDocument(ctx, opts, logger, doc)
	if err != nil {
		return err
	}

	if err := writeOutput(opts.OutputPath, out); err != nil {
		return err
	}
	logger.Info("wrote translated markdown", "path", opts.OutputPath)
	return nil
}

// translateDocument runs chunking, per-chunk model calls, sanitization and
// assembly. Chunks are translated sequentially in index order: local models
// are bound to one device, so concurrent calls would only contend.
func translateDocument(ctx context.Context, opts Options, logger *log.Logger, doc string) (string, error) {
	chunks, err := chunk.Split(doc, opts.MaxChunkSize)
	if err != nil {
		return "", fmt.Errorf("chunk document: %w", err)
	}
	logger.Info("split document", "chunks", len(chunks), "max_chunk_size", opts.MaxChunkSize)

	translator := opts.Translator
	if translator == nil {
		translator, err = newBackend(opts)
		if err != nil {
			return "", fmt.Errorf("configure model backend: %w", err)
		}
	}
	sanitizer := translate.NewSanitizer(opts.SanitizeRules)

	results := make([]translate.Result, 0, len(chunks))
	for _, c := range chunks {
		logger.Info("translating chunk", "index", c.Index, "of", len(chunks), "size", c.Size())
		raw, err := translator.Translate(ctx, c.Text)
		if err != nil {
			return "", fmt.Errorf("translate chunk %d: %w", c.Index, err)
		}
		prompt := translate.BuildPrompt(opts.Model, c.Text)
		results = append(results, translate.Result{Index: c.Index, Text: sanitizer.Clean(raw, prompt)})
	}

	out, err := assemble.Join(results)
	if err != nil {
		return "", fmt.Errorf("assemble document: %w", err)
	}
	return out, nil
}

func newBackend(opts Options) (translate.Translator, error) {
	env, err := translate.Endpoint()
	if err != nil {
		return nil, err
	}
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = env.BaseURL
	}
	return translate.NewClient(translate.ClientOptions{
		BaseURL: baseURL,
		APIKey:  env.APIKey,
		Model:   opts.Model,
		Timeout: opts.Timeout,
	}), nil
}

// skipBlocks drops the first startBlock-1 top-level blocks, for manually
// resuming after a failed run.
func skipBlocks(doc string, startBlock int) string {
	blocks := chunk.Blocks(doc)
	if startBlock > len(blocks) {
		return ""
	}
	return strings.Join(blocks[startBlock-1:], chunk.Separator)
}

func writeOutput(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newLogger(quiet bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if quiet {
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}
