package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare relative path", "client/src/pages/Game.tsx", filepath.Clean("client/src/pages/Game.tsx")},
		{"absolute path", "/tmp/Game.tsx", filepath.Clean("/tmp/Game.tsx")},
		{"file URI", "file:///tmp/Game.tsx", filepath.Clean("/tmp/Game.tsx")},
		{"dot segments", "./client/../client/Game.tsx", filepath.Clean("client/Game.tsx")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolvePath(tt.input))
		})
	}
}

func TestResolvePath_Home(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	assert.Equal(t, filepath.Join(home, "Game.tsx"), ResolvePath("~/Game.tsx"))
	assert.Equal(t, filepath.Clean(home), ResolvePath("~"))
}
