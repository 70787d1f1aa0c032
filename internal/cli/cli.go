// Package cli is the flag surface and process wiring shared by the mvx and
// cpx binaries. Everything below it (the transfer package) is unaware of
// flags, colors, and signals.
package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
)

type CLI struct {
	Paths       []string `arg:"" name:"paths" help:"Source [...] Destination" required:""`
	Sources     []string `kong:"-"`
	Destination string   `kong:"-"`

	Force  bool `help:"Overwrite existing files" short:"f"`
	DryRun bool `help:"Show what would be done without making changes" short:"n" env:"MVX_DRY_RUN"`

	Quiet   bool `help:"Suppress progress and summary output" short:"q"`
	Verbose int  `help:"Verbose output (-v debug, -vv trace)" short:"v" type:"counter"`

	Version kong.VersionFlag `help:"Print version information and exit"`
}

func (c *CLI) AfterApply() error {
	if len(c.Paths) < 2 {
		return fmt.Errorf("at least one source and one destination are required")
	}
	c.Sources = c.Paths[:len(c.Paths)-1]
	c.Destination = c.Paths[len(c.Paths)-1]
	return nil
}
