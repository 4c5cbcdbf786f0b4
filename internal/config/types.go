package config

// Config is the parsed .scent/config.yml.
type Config struct {
	Version int           `yaml:"version"`
	Catalog CatalogConfig `yaml:"catalog"`
	Storage StorageConfig `yaml:"storage"`
	Scoring ScoringConfig `yaml:"scoring"`
	Log     LogConfig     `yaml:"log"`
	UI      UIConfig      `yaml:"ui"`
}

// CatalogConfig points at catalog files; empty paths use the embedded defaults.
type CatalogConfig struct {
	Questions     string `yaml:"questions"`
	Weights       string `yaml:"weights"`
	Normalization string `yaml:"normalization"`
}

// StorageConfig locates the result database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// ScoringConfig tunes the direct-preference bonus.
// A nil bonus keeps the default; zero disables it.
type ScoringConfig struct {
	PreferenceQuestion string `yaml:"preference_question"`
	PreferenceBonus    *int   `yaml:"preference_bonus"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// UIConfig selects the default survey front end.
type UIConfig struct {
	Mode string `yaml:"mode"`
}
