// Command streebogsum prints or checks GOST R 34.11-2012 (Streebog) checksums.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Giulio2002/streebog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
