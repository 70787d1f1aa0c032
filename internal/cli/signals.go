package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/mvxtool/mvx/internal/transfer"
)

// watchInterrupt sets the cancellation token on the first SIGINT/SIGTERM so
// the batch stops at its next yield point. A second signal aborts the
// process immediately, on the assumption that the user no longer wants to
// wait for the in-flight file.
func watchInterrupt(token *transfer.Token, log zerolog.Logger) {
	ch := make(chan os.Signal, 2)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ch
		token.Set()
		log.Warn().Msg("interrupt received, stopping at the next entry (press again to abort now)")
		<-ch
		os.Exit(transfer.CancelExitCode)
	}()
}
