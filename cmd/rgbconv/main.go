package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/rgbconv/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	info := cli.BuildInfo{Version: Version, BuildTime: BuildTime, GitCommit: GitCommit}
	code := cli.Execute(ctx, info, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}
