package entrypoint

import (
	"context"
	"errors"

	"github.com/takaaki-mizuno/local-book-translator/internal/app"
	"github.com/takaaki-mizuno/local-book-translator/internal/cli"
	"github.com/takaaki-mizuno/local-book-translator/internal/tui"
)

// Execute maps argv to an exit code. With no arguments the interactive form
// collects the options; otherwise they come from flags and positionals.
func Execute(args []string) (int, error) {
	if len(args) == 1 {
		res, err := tui.Run()
		if err != nil {
			return 1, err
		}
		if !res.RunNow {
			return 0, nil
		}
		return run(res.Options)
	}

	opts, initConfig, err := cli.ParseArgs(args[1:])
	if err != nil {
		var exitErr cli.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code, exitErr.Err
		}
		return 1, err
	}

	if initConfig {
		if err := cli.RunConfigWizard(); err != nil {
			return 1, err
		}
		return 0, nil
	}

	return run(opts)
}

func run(opts app.Options) (int, error) {
	if err := app.Run(context.Background(), opts); err != nil {
		return 1, err
	}
	return 0, nil
}
