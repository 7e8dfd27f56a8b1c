package cli

import (
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/report"
)

// configFile is looked up in the project directory when --config is unset.
const configFile = appName + ".toml"

// Report formats accepted by analyze.
const (
	formatText = "text"
	formatJSON = "json"
)

// Config holds the settings of an analysis run.
type Config struct {
	FailOnViolation bool         `toml:"fail_on_violation"`
	Output          string       `toml:"output"`
	Format          string       `toml:"format"`
	Workers         int          `toml:"workers"`
	Source          SourceConfig `toml:"source"`
}

// SourceConfig configures source scanning.
type SourceConfig struct {
	// Exclude lists directory names skipped while scanning sources.
	Exclude []string `toml:"exclude"`
}

// defaultConfig returns the settings used when neither a config file nor a
// flag provides a value.
func defaultConfig() Config {
	return Config{
		Output: report.DefaultOutput,
		Format: formatText,
	}
}

// loadConfig reads the config file at path. With an empty path, configFile
// in dir is used if it exists; otherwise the defaults are returned.
func loadConfig(path, dir string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		candidate := filepath.Join(dir, configFile)
		if _, err := os.Stat(candidate); err != nil {
			return cfg, nil
		}
		path = candidate
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !slices.Contains([]string{formatText, formatJSON}, c.Format) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown format %q (want text or json)", c.Format)
	}
	if c.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "workers must not be negative")
	}
	if c.Output == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "output must not be empty")
	}
	return nil
}
