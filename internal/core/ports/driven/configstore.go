package driven

// ConfigStore provides access to gamefix configuration.
// Keys use dot notation ("repair.pattern"); implementations handle
// persistence and flatten nested tables into these keys.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// Set stores a configuration value and persists it immediately.
	Set(key string, value any) error

	// Delete removes a key and persists immediately.
	// Deleting a missing key is not an error.
	Delete(key string) error

	// Keys returns every stored key, sorted.
	Keys() []string

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
