package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivan-guerra/rot13/internal/domain"
)

// EnvVar names the environment variable consulted when no --config flag is given.
const EnvVar = "ROT13_CONFIG"

// ResolvePath picks the config file to load: the explicit flag value, then
// $ROT13_CONFIG. An empty result means "use defaults".
func ResolvePath(flagPath string, getenv func(string) string) string {
	if flagPath != "" {
		return flagPath
	}
	if getenv == nil {
		return ""
	}
	return getenv(EnvVar)
}

// Load reads a rot13 YAML config and applies it on top of domain.DefaultConfig.
// An empty path returns the defaults.
func Load(path string) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Rot13.Output.TrailingNewline != nil {
		cfg.Output.TrailingNewline = *y.Rot13.Output.TrailingNewline
	}
	if y.Rot13.Log.File != "" {
		cfg.Log.File = y.Rot13.Log.File
	}
	if y.Rot13.Log.Debug != nil {
		cfg.Log.Debug = *y.Rot13.Log.Debug
	}

	return cfg, nil
}
