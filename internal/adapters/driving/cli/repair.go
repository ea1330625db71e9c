package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

// Exit codes beyond the default 1 for errors.
const (
	// ExitRepairIncomplete is returned with --strict when the fragment repair did not apply.
	ExitRepairIncomplete = 2
)

var (
	repairDryRun bool
	repairDiff   bool
	repairStrict bool

	checkDiff   bool
	checkStrict bool
)

var repairCmd = &cobra.Command{
	Use:   "repair [path]",
	Short: "Repair the target file in place",
	Long: `Repair the target file and write the result back to the same path.

Steps, in order:
  1. Truncate the file right after the first "export default Game;"
  2. Replace the corrupted round badge fragment with the corrected header block
  3. Count <div> opens and closes (reported only, never changed)

The path argument overrides the configured target. The file is overwritten
even when nothing changed. A fragment that is not found is reported as a
warning; pass --strict to also exit with status 2.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRepair,
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Report what repair would change without writing",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	repairCmd.Flags().BoolVarP(&repairDryRun, "dry-run", "n", false, "compute the repair without writing")
	repairCmd.Flags().BoolVarP(&repairDiff, "diff", "d", false, "print a unified diff of the change")
	repairCmd.Flags().BoolVar(&repairStrict, "strict", false, "exit with status 2 if the fragment repair did not apply")

	checkCmd.Flags().BoolVarP(&checkDiff, "diff", "d", false, "print a unified diff of the change")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit with status 2 if the fragment repair would not apply")

	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(checkCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	if repairService == nil || settingsService == nil {
		return errors.New("repair service not configured")
	}

	settings, err := effectiveSettings(args)
	if err != nil {
		return err
	}

	var report *domain.RepairReport
	if repairDryRun {
		report, err = repairService.Plan(cmd.Context(), *settings)
	} else {
		report, err = repairService.Repair(cmd.Context(), *settings)
	}
	if err != nil {
		return fmt.Errorf("repair failed: %w", err)
	}

	return finish(cmd, report, repairDiff, repairStrict)
}

func runCheck(cmd *cobra.Command, args []string) error {
	if repairService == nil || settingsService == nil {
		return errors.New("repair service not configured")
	}

	settings, err := effectiveSettings(args)
	if err != nil {
		return err
	}

	report, err := repairService.Plan(cmd.Context(), *settings)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	return finish(cmd, report, checkDiff, checkStrict)
}

// effectiveSettings returns the configured settings with the optional
// path argument applied on top.
func effectiveSettings(args []string) (*domain.RepairSettings, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	if len(args) == 1 {
		settings.Path = args[0]
	}
	return settings, nil
}

func finish(cmd *cobra.Command, report *domain.RepairReport, diff, strict bool) error {
	out := cmd.OutOrStdout()
	renderReport(out, stylesFor(out), report)

	if diff {
		text, err := unifiedDiff(report)
		if err != nil {
			return fmt.Errorf("failed to build diff: %w", err)
		}
		if text != "" {
			fmt.Fprintln(out)
			fmt.Fprint(out, text)
		}
	}

	if strict && report.Incomplete() {
		return &ExitError{
			Code: ExitRepairIncomplete,
			Err:  fmt.Errorf("%w: fragment pattern not found in %s", domain.ErrRepairIncomplete, report.Path),
		}
	}
	return nil
}
