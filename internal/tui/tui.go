package tui

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/takaaki-mizuno/local-book-translator/internal/app"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

type Result struct {
	Options app.Options
	RunNow  bool
}

type formState struct {
	input     string
	output    string
	model     string
	translate bool
	chunkSize string
	timeout   string
	runNow    bool
}

func newFormState() *formState {
	return &formState{
		model:     translate.DefaultModel,
		translate: true,
		chunkSize: strconv.Itoa(app.DefaultMaxChunkSize),
		timeout:   strconv.Itoa(int(app.DefaultTimeout / time.Second)),
		runNow:    true,
	}
}

// Run collects run options interactively. It is used when the binary is
// invoked without arguments.
func Run() (Result, error) {
	printBanner()
	state := newFormState()

	form := buildForm(state).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return Result{}, err
	}

	return buildResult(state)
}

func printBanner() {
	fmt.Println("translate — HTML to Markdown to Japanese, with a local model")
	fmt.Println()
}

func buildForm(state *formState) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Input HTML file").
				Value(&state.input).
				Validate(validateInputFile),
			huh.NewInput().
				Title("Output Markdown file").
				Value(&state.output).
				Validate(validateRequired("output path")),
			huh.NewConfirm().
				Title("Translate to Japanese?").
				Description("Off writes the converted Markdown as-is.").
				Value(&state.translate),
			huh.NewInput().
				Title("Translation model").
				Value(&state.model),
			huh.NewInput().
				Title("Max chunk size (characters)").
				Value(&state.chunkSize).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Timeout per chunk (seconds)").
				Value(&state.timeout).
				Validate(validatePositiveInt),
			huh.NewConfirm().
				Title("Run now?").
				Value(&state.runNow),
		),
	)
}

func buildResult(state *formState) (Result, error) {
	chunkSize, err := strconv.Atoi(strings.TrimSpace(state.chunkSize))
	if err != nil {
		return Result{}, fmt.Errorf("invalid chunk size: %w", err)
	}
	timeout, err := strconv.Atoi(strings.TrimSpace(state.timeout))
	if err != nil {
		return Result{}, fmt.Errorf("invalid timeout: %w", err)
	}

	return Result{
		Options: app.Options{
			InputPath:    strings.TrimSpace(state.input),
			OutputPath:   strings.TrimSpace(state.output),
			Model:        strings.TrimSpace(state.model),
			Translate:    state.translate,
			MaxChunkSize: chunkSize,
			Timeout:      time.Duration(timeout) * time.Second,
		},
		RunNow: state.runNow,
	}, nil
}

func validateInputFile(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return errors.New("input path is required")
	}
	if _, err := os.Stat(v); err != nil {
		return fmt.Errorf("cannot read %s", v)
	}
	return nil
}

func validateRequired(label string) func(string) error {
	return func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validatePositiveInt(v string) error {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}
