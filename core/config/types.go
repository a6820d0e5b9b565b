package config

// FileConfig is the top-level YAML configuration of a calculator session.
type FileConfig struct {
	Logging Logging `yaml:"logging"`
	Input   Input   `yaml:"input"`
}

// Logging configures the global logger.
type Logging struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // console or json
}

// Input configures how presentation intents are admitted.
type Input struct {
	// RatePerSecond caps sustained intents per second; 0 disables throttling.
	RatePerSecond float64 `yaml:"rate_per_second"`
	// Burst is the number of intents admitted back to back.
	Burst int `yaml:"burst"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *FileConfig {
	return &FileConfig{
		Logging: Logging{Level: "info", Format: "console"},
		Input:   Input{RatePerSecond: 0, Burst: 1},
	}
}
