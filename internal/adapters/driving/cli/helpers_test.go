package cli

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/custodia-labs/gamefix/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/gamefix/internal/core/services"
	"github.com/custodia-labs/gamefix/internal/logger"
)

// corrupted is a small Game page with both corruptions present.
const corrupted = "function Game() {\n  return (\n    <div>\n      <Badge>\n" +
	"        ROUND {round} / {totalRounds}\n        </Badge>\n      </div>\n    </div>\n  </div>\n</div>\n" +
	"            <DialogTitle>Popup Library</DialogTitle>\n  );\n}\n\nexport default Game;\n}\n\nexport default Game;\n"

// clean has the marker once and no corrupted fragment.
const clean = "function Game() {\n  return <div />;\n}\n\nexport default Game;"

type fixture struct {
	docs   *memory.DocumentStore
	config *memory.ConfigStore
}

// newFixture injects memory-backed services and resets global state afterwards.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		docs:   memory.NewDocumentStore(),
		config: memory.NewConfigStore(),
	}
	SetServices(&Services{
		Repair:   services.NewRepairService(f.docs),
		Settings: services.NewSettingsService(f.config),
	})
	logger.SetOutput(io.Discard)

	t.Cleanup(func() {
		SetServices(nil)
		SetServiceFactory(nil)
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
		logger.SetQuiet(false)
	})
	return f
}

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags() {
	verboseFlag, quietFlag, configDirFlag = false, false, ""
	repairDryRun, repairDiff, repairStrict = false, false, false
	checkDiff, checkStrict = false, false
	versionShort = false
}
