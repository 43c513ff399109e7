package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/clausewise/internal/cli"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(Version).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "clausewise:", err)
		stop()
		os.Exit(1)
	}
}
