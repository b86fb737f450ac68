package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/takaishi/minigrep/errs"
	"github.com/takaishi/minigrep/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		args = []string{appName}
	}

	printer := output.New(stdout, stderr)
	if err := newCommand(printer, stderr).Run(ctx, args); err != nil {
		printer.Error(err)
		return errs.KindOf(err).ExitCode()
	}
	return 0
}
