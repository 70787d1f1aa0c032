//go:build windows

package termui

import "time"

func (r *Renderer) watchResize() {
	if !r.enabled {
		return
	}
	go func() {
		ticker := time.NewTicker(800 * time.Millisecond)
		defer ticker.Stop()
		for range ticker.C {
			r.updateWidth()
		}
	}()
}
