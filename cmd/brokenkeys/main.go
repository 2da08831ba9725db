package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/badele/brokenkeys/internal/cli"
)

func main() {
	var c cli.CLI
	ctx := kong.Parse(&c, cli.Options(cli.DefaultConfigPath)...)

	err := ctx.Run(&cli.Env{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
	ctx.FatalIfErrorf(err)
}
