package domain

// Config represents the rot13 configuration loaded from a YAML file.
type Config struct {
	Output OutputConfig
	Log    LogConfig
}

type OutputConfig struct {
	TrailingNewline bool
}

type LogConfig struct {
	File  string
	Debug bool
}

// DefaultConfig provides the behavior used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Output: OutputConfig{TrailingNewline: true},
	}
}
