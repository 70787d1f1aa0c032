package main

import (
	"github.com/mvxtool/mvx/internal/cli"
	"github.com/mvxtool/mvx/internal/transfer"
)

func main() {
	cli.Main(transfer.Move, "mvx", "Move files and merge directories with progress")
}
