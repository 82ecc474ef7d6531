package main

import (
	"os"

	goose "github.com/quenbyako/roboslack/contrib/mongoose"

	"github.com/quenbyako/roboslack/cmd/fieldlint/root"
)

//nolint:gochecknoglobals // ldflags doesn't work with constants
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := goose.BuildContext(
		os.Stdin,
		os.Stdout,
		os.Stderr,
		goose.Version{Version: version, Commit: commit, Date: date},
	)

	code := goose.Run(root.Cmd)(ctx, os.Args[1:])

	cancel()
	os.Exit(code)
}
