package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage repair settings",
	Long: `View and configure the repair target and the patterns it uses.

Settings are stored in config.toml inside the config directory. Unset keys
use the built-in values for client/src/pages/Game.tsx.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set a setting. The new value is validated before it is saved.

Keys:
  target.path         file to repair
  dedupe.marker       literal text kept once; everything after it is removed
  repair.pattern      RE2 expression matching the corrupted fragment
  repair.replacement  literal text inserted for each match
  audit.tag           tag name counted by the balance audit`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Restore a setting to its built-in value",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsUnset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsUnsetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	for _, key := range settingsService.Keys() {
		value, err := settings.Value(key)
		if err != nil {
			return err
		}
		cmd.Printf("  %-19s %s\n", key+":", formatValue(value))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("%s updated\n", args[0])
	return nil
}

func runSettingsUnset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Unset(args[0]); err != nil {
		return fmt.Errorf("failed to unset %s: %w", args[0], err)
	}
	cmd.Printf("%s restored to default\n", args[0])
	return nil
}

// formatValue shows multi-line values on one line with a line count.
func formatValue(v string) string {
	if v == "" {
		return "(empty)"
	}
	lines := strings.Count(v, "\n") + 1
	if lines == 1 {
		return v
	}
	first, _, _ := strings.Cut(v, "\n")
	return fmt.Sprintf("%s ... (%d lines)", first, lines)
}
