package driven

// ConfigStore holds flat dot-separated settings such as "render.dpi".
// Missing keys read as zero values; callers apply defaults.
type ConfigStore interface {
	// Get returns the raw value and whether the key is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "".
	GetString(key string) string

	// GetInt returns the value as an int, or 0.
	// Integers decoded from TOML arrive as int64 and are converted.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false.
	GetBool(key string) bool

	// GetStringSlice returns the value as a string slice, or nil.
	GetStringSlice(key string) []string

	// Set stores a value and writes the backing file.
	Set(key string, value any) error

	// Save writes every value to the backing file.
	Save() error

	// Load replaces the in-memory values with the backing file's contents.
	Load() error

	// Path returns the backing file location (":memory:" for in-memory stores).
	Path() string
}
