package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/mvxtool/mvx/internal/termui"
	"github.com/mvxtool/mvx/internal/transfer"
)

const version = "0.3.0"

// Main parses flags, wires logging, progress, and interrupt handling, and
// runs the batch. It is the whole body of both binaries; only the mode and
// the program name differ.
func Main(mode transfer.Mode, name, description string) {
	cli := &CLI{}
	kong.Parse(cli,
		kong.Name(name),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": name + " " + version},
	)

	logger := newLogger(cli)
	token := &transfer.Token{}
	watchInterrupt(token, logger)

	var sink transfer.Sink = transfer.NopSink{}
	if !cli.Quiet && !cli.DryRun {
		sink = termui.NewRenderer(os.Stderr)
	}

	ctx := &transfer.Context{
		Mode:   mode,
		Force:  cli.Force,
		DryRun: cli.DryRun,
		Sink:   sink,
		Token:  token,
		Log:    logger,
	}
	if !cli.Quiet {
		ctx.Report = func(line string) {
			termui.PrintSummary(os.Stderr, line)
		}
	}

	if _, err := transfer.RunBatch(cli.Sources, cli.Destination, ctx); err != nil {
		termui.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cli *CLI) zerolog.Logger {
	level := zerolog.InfoLevel
	switch {
	case cli.Quiet:
		level = zerolog.ErrorLevel
	case cli.Verbose == 1:
		level = zerolog.DebugLevel
	case cli.Verbose >= 2:
		level = zerolog.TraceLevel
	}
	writer := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
	})
	return zerolog.New(writer).With().Timestamp().Logger().Level(level)
}
