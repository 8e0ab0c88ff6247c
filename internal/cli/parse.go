package cli

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/takaaki-mizuno/local-book-translator/internal/app"
	"github.com/takaaki-mizuno/local-book-translator/internal/config"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

const usageLine = "usage: translate <input.html> <output.md> [flags]"

type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return "error"
}

// ParseArgs turns command-line arguments into run options. The second return
// is true when --init-config was requested. Precedence: explicit flags over
// config-file values over built-in defaults.
func ParseArgs(args []string) (app.Options, bool, error) {
	parsed, positionals, err := parseFlags(args)
	if err != nil {
		return app.Options{}, false, ExitError{Code: 2, Err: err}
	}
	if parsed.initConfig {
		return app.Options{}, true, nil
	}
	if len(positionals) != 2 {
		return app.Options{}, false, ExitError{Code: 2, Err: fmt.Errorf("%s", usageLine)}
	}

	cfg, err := loadConfig(parsed.configStr)
	if err != nil {
		return app.Options{}, false, err
	}
	applyConfigDefaults(&parsed, cfg)

	return buildOptions(parsed, positionals), false, nil
}

type parsedFlags struct {
	configStr    string
	initConfig   bool
	noTranslate  bool
	model        stringFlag
	baseURL      stringFlag
	timeout      intFlag
	chunkSize    intFlag
	contentClass stringFlag
	startBlock   intFlag
	quiet        boolFlag
	cutMarkers   []string
	answerMarkers []string
}

func parseFlags(args []string) (parsedFlags, []string, error) {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	parsed := parsedFlags{}

	fs.StringVar(&parsed.configStr, "config", "", "Path to JSON config file")
	fs.BoolVar(&parsed.initConfig, "init-config", false, "Interactive config wizard")
	fs.BoolVar(&parsed.noTranslate, "no-translate", false, "Skip translation; write converted Markdown only")
	fs.Var(&parsed.model, "model", "Translation model identifier")
	fs.Var(&parsed.baseURL, "base-url", "Model server base URL")
	parsed.timeout.Value = int(app.DefaultTimeout / time.Second)
	fs.Var(&parsed.timeout, "timeout", "Per-chunk model call timeout in seconds")
	parsed.chunkSize.Value = app.DefaultMaxChunkSize
	fs.Var(&parsed.chunkSize, "chunk-size", "Maximum characters per translation chunk")
	fs.Var(&parsed.contentClass, "content-class", "CSS class marking readable content")
	parsed.startBlock.Value = 1
	fs.Var(&parsed.startBlock, "start-block", "Resume from this block (1-based)")
	fs.Var(&parsed.quiet, "quiet", "Suppress progress logging")

	// The stdlib flag package stops at the first positional, but the
	// documented surface puts flags after the file arguments. Re-parse the
	// remainder so both orders work.
	positionals := []string{}
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return parsed, positionals, err
		}
		rest = fs.Args()
		if len(rest) == 0 {
			break
		}
		positionals = append(positionals, rest[0])
		rest = rest[1:]
	}

	return parsed, positionals, nil
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	return config.Load(path)
}

func applyConfigDefaults(parsed *parsedFlags, cfg config.Config) {
	if !parsed.model.WasSet && cfg.Model != "" {
		parsed.model.Value = cfg.Model
	}
	if !parsed.baseURL.WasSet && cfg.BaseURL != "" {
		parsed.baseURL.Value = cfg.BaseURL
	}
	if !parsed.timeout.WasSet && cfg.TimeoutSeconds > 0 {
		parsed.timeout.Value = cfg.TimeoutSeconds
	}
	if !parsed.chunkSize.WasSet && cfg.MaxChunkSize > 0 {
		parsed.chunkSize.Value = cfg.MaxChunkSize
	}
	if !parsed.contentClass.WasSet && cfg.ContentClass != "" {
		parsed.contentClass.Value = cfg.ContentClass
	}
	if !parsed.quiet.WasSet && cfg.Quiet {
		parsed.quiet.Value = true
	}
	parsed.cutMarkers = cfg.CutMarkers
	parsed.answerMarkers = cfg.AnswerMarkers
}

func buildOptions(parsed parsedFlags, positionals []string) app.Options {
	return app.Options{
		InputPath:    positionals[0],
		OutputPath:   positionals[1],
		Model:        parsed.model.Value,
		BaseURL:      parsed.baseURL.Value,
		Translate:    !parsed.noTranslate,
		Timeout:      time.Duration(parsed.timeout.Value) * time.Second,
		MaxChunkSize: parsed.chunkSize.Value,
		ContentClass: parsed.contentClass.Value,
		StartBlock:   parsed.startBlock.Value,
		Quiet:        parsed.quiet.Value,
		SanitizeRules: translate.Rules{
			CutMarkers:    parsed.cutMarkers,
			AnswerMarkers: parsed.answerMarkers,
		},
	}
}
