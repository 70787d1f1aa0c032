//go:build !windows

package termui

import (
	"os"
	"os/signal"
	"syscall"
)

func (r *Renderer) watchResize() {
	if !r.enabled {
		return
	}
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			r.updateWidth()
		}
	}()
}
