package filesystem

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath converts a document location to a local filesystem path.
// Handles file:// URIs, a leading ~/ for the home directory, and bare paths.
// Relative paths stay relative to the working directory.
func ResolvePath(location string) string {
	if strings.HasPrefix(location, "file://") {
		location = strings.TrimPrefix(location, "file://")
	}

	if location == "~" || strings.HasPrefix(location, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			location = filepath.Join(home, strings.TrimPrefix(location, "~"))
		}
	}

	return filepath.Clean(location)
}
