package types

// RenderConfig holds citation rendering settings.
type RenderConfig struct {
	// Style is the citation style name (default "apa").
	Style string `json:"style" yaml:"style"`

	// Locale is the rendering locale (default "en-US").
	Locale string `json:"locale" yaml:"locale"`
}

// StoreConfig holds site database settings.
type StoreConfig struct {
	// DBPath is the SQLite database the export command writes
	// (default "site/seminar.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Config is the full seminar-engine configuration.
type Config struct {
	Render RenderConfig `json:"render" yaml:"render"`
	Store  StoreConfig  `json:"store" yaml:"store"`
}

// DefaultConfig returns the configuration used when no file or flags
// override it.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{Style: "apa", Locale: "en-US"},
		Store:  StoreConfig{DBPath: "site/seminar.db"},
	}
}
