// Command fbimport plans and applies frame data imports against the document store.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rcashie/fb-web-import/internal/adapters/driven/config/file"
	"github.com/rcashie/fb-web-import/internal/adapters/driving/cli"
	"github.com/rcashie/fb-web-import/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return 1
	}
	settings := services.NewSettingsService(configStore)

	cli.SetVersion(version)
	cli.SetSettingsService(settings)
	cli.SetServicesFactory(newServicesFactory(settings))

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}
