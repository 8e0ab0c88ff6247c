package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/takaaki-mizuno/local-book-translator/internal/extract"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

const (
	DefaultTimeout      = 120 * time.Second
	DefaultMaxChunkSize = 1000
)

// Options describes one pipeline run. It is constructed once from CLI input
// and read-only afterwards.
type Options struct {
	InputPath    string
	OutputPath   string
	Model        string
	BaseURL      string
	Translate    bool
	Timeout      time.Duration
	MaxChunkSize int
	ContentClass string
	StartBlock   int
	Quiet        bool

	SanitizeRules translate.Rules

	// Translator overrides the model backend; when nil a client for the
	// local completion server is built from Model, BaseURL and Timeout.
	Translator translate.Translator
}

func normalizeOptions(opts Options) (Options, error) {
	if strings.TrimSpace(opts.InputPath) == "" {
		return opts, errors.New("input path is required")
	}
	if strings.TrimSpace(opts.OutputPath) == "" {
		return opts, errors.New("output path is required")
	}
	if _, err := os.Stat(opts.InputPath); err != nil {
		return opts, fmt.Errorf("input file %q: %w", opts.InputPath, err)
	}
	if dir := filepath.Dir(opts.OutputPath); dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return opts, fmt.Errorf("output directory %q: %w", dir, err)
		}
	}
	if opts.Model == "" {
		opts.Model = translate.DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxChunkSize <= 0 {
		opts.MaxChunkSize = DefaultMaxChunkSize
	}
	if opts.ContentClass == "" {
		opts.ContentClass = extract.DefaultContentClass
	}
	if opts.StartBlock < 1 {
		opts.StartBlock = 1
	}
	return opts, nil
}
