package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/gamefix/internal/core/domain"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range settingsCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set", "unset"}, names)
}

func TestSettingsShow_Defaults(t *testing.T) {
	newFixture(t)

	out, err := execute(t, "settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "target.path:        "+domain.DefaultPath)
	assert.Contains(t, out, "dedupe.marker:      "+domain.DefaultMarker)
	assert.Contains(t, out, "repair.replacement: ROUND {round} / {totalRounds} ... (13 lines)")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	newFixture(t)

	out, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSet_Persists(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, "settings", "set", "audit.tag", "section")

	require.NoError(t, err)
	assert.Contains(t, out, "audit.tag updated")
	assert.Equal(t, "section", f.config.GetString(domain.KeyAuditTag))
}

func TestSettingsSet_RejectsInvalid(t *testing.T) {
	f := newFixture(t)

	_, err := execute(t, "settings", "set", "repair.pattern", "ROUND (")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Empty(t, f.config.Keys())
}

func TestSettingsSet_RejectsUnknownKey(t *testing.T) {
	newFixture(t)

	_, err := execute(t, "settings", "set", "search.mode", "hybrid")

	assert.True(t, errors.Is(err, domain.ErrUnknownSetting))
}

func TestSettingsSet_RequiresTwoArgs(t *testing.T) {
	newFixture(t)

	_, err := execute(t, "settings", "set", "audit.tag")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestSettingsUnset(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.config.Set(domain.KeyPath, "elsewhere.tsx"))

	out, err := execute(t, "settings", "unset", "target.path")

	require.NoError(t, err)
	assert.Contains(t, out, "target.path restored to default")
	_, ok := f.config.Get(domain.KeyPath)
	assert.False(t, ok)
}

func TestSettings_ErrorsWithoutServices(t *testing.T) {
	newFixture(t)
	SetServices(nil)

	for _, args := range [][]string{
		{"settings", "show"},
		{"settings", "set", "audit.tag", "div"},
		{"settings", "unset", "audit.tag"},
	} {
		_, err := execute(t, args...)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "settings service not configured")
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", "(empty)"},
		{"single line", "export default Game;", "export default Game;"},
		{"multi line", "a\nb\nc", "a ... (3 lines)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}
