package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/content"
	"github.com/takaishi/minigrep/errs"
	"github.com/takaishi/minigrep/logger"
	"github.com/takaishi/minigrep/output"
	"github.com/takaishi/minigrep/search"
	"github.com/urfave/cli/v3"
)

const appName = "minigrep"

// newCommand builds the root command. Flag parsing and the built-in help
// are disabled because config.Resolve owns the positional grammar.
func newCommand(printer *output.Printer, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:            appName,
		Usage:           "print the lines of a file that contain a query",
		UsageText:       appName + " <query> <filename> [c]",
		HideHelp:        true,
		SkipFlagParsing: true,
		ErrWriter:       stderr,
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := append([]string{appName}, cmd.Args().Slice()...)
			return searchAction(args, printer, stderr)
		},
	}
}

func searchAction(args []string, printer *output.Printer, stderr io.Writer) error {
	if err := config.LoadEnvFile(nil); err != nil {
		return err
	}

	logCfg := logger.ConfigFromEnv(nil)
	logCfg.Output = stderr
	log := logger.New(logCfg)

	cfg, err := config.Resolve(args, nil)
	if errors.Is(err, config.ErrHelp) {
		printer.Help()
		return nil
	}
	if err != nil {
		return err
	}

	log.Debug("searching",
		"query", cfg.Query(),
		"file", cfg.FilePath(),
		"case_sensitive", cfg.CaseSensitive(),
	)

	contents, err := content.Load(cfg.FilePath())
	if err != nil {
		return err
	}
	log.Debug("file loaded", "file", cfg.FilePath(), "bytes", len(contents))

	results := search.Search(cfg.Query(), contents, cfg.CaseSensitive())
	log.Debug("search finished", "matches", len(results))

	if err := printer.Results(results); err != nil {
		return errs.Application(fmt.Errorf("failed to write results: %w", err))
	}
	return nil
}
