package main

import (
	"github.com/mvxtool/mvx/internal/cli"
	"github.com/mvxtool/mvx/internal/transfer"
)

func main() {
	cli.Main(transfer.Copy, "cpx", "Copy files and merge directories with progress")
}
