// Package cli implements the gamefix command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gamefix/internal/core/ports/driving"
	"github.com/custodia-labs/gamefix/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the core services used by the commands.
type Services struct {
	Repair   driving.RepairService
	Settings driving.SettingsService
}

// ServiceFactory builds services once global flags have been parsed.
type ServiceFactory func(configDir string) (*Services, error)

var (
	repairService   driving.RepairService
	settingsService driving.SettingsService
	serviceFactory  ServiceFactory
)

// Global flags.
var (
	verboseFlag   bool
	quietFlag     bool
	configDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gamefix",
	Short: "Repair a corrupted Game page source file",
	Long: `gamefix repairs a front-end source file damaged by an earlier automated edit.

It removes a duplicated trailing export, restores a header block whose Dialog
opening tags were dropped, and writes the result back in place. No backup is
kept: commit or copy the file first, or use --dry-run.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress warnings")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "configuration directory (default ~/.gamefix)")
}

// SetServices injects the services used by the commands.
func SetServices(s *Services) {
	if s == nil {
		repairService, settingsService = nil, nil
		return
	}
	repairService = s.Repair
	settingsService = s.Settings
}

// SetServiceFactory sets the factory used to build services when none
// have been injected.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command. Cancelling ctx before the write-back
// leaves the target file untouched.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	logger.SetQuiet(quietFlag)

	if repairService != nil && settingsService != nil {
		return nil
	}
	if serviceFactory == nil {
		return nil
	}

	s, err := serviceFactory(configDirFlag)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	return nil
}

// ExitError carries a process exit code for a failed or advisory result.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: 0 for nil, the carried code for
// an ExitError and 1 for anything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
