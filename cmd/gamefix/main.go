// Command gamefix repairs a corrupted Game page source file in place.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/gamefix/internal/adapters/driven/config/file"
	"github.com/custodia-labs/gamefix/internal/adapters/driven/storage/filesystem"
	"github.com/custodia-labs/gamefix/internal/adapters/driving/cli"
	"github.com/custodia-labs/gamefix/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)

	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(cli.ExitCode(err))
}

// newServices wires the filesystem and TOML adapters into the core services.
func newServices(configDir string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return &cli.Services{
		Repair:   services.NewRepairService(filesystem.NewStore()),
		Settings: services.NewSettingsService(configStore),
	}, nil
}
