// Package config holds the command-line tool configuration, loaded from a
// TOML file.
package config

import (
	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	pclog "github.com/pingcap/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is the sqlselect tool configuration.
type Config struct {
	// MaxDepth bounds subquery, UNION and parenthesis nesting. Zero means
	// unlimited.
	MaxDepth int `toml:"max-depth" json:"max-depth"`
	Log      Log `toml:"log" json:"log"`
}

// Log is the logging section.
type Log struct {
	// Log level.
	// One of "debug", "info", "warn", "error", "dpanic", "panic", and "fatal".
	Level string `toml:"level" json:"level"`
	// Format of the log, one of `text`, `json` or `console`.
	Format string `toml:"format" json:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		MaxDepth: 64,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load loads config options from a toml file on top of the defaults.
// Unknown keys are rejected.
func Load(confFile string) (*Config, error) {
	c := Default()
	meta, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("unknown config item %q in %s", undecoded[0].String(), confFile)
	}
	if err := c.Valid(); err != nil {
		return nil, err
	}
	return c, nil
}

// Valid checks the configuration values.
func (c *Config) Valid() error {
	if c.MaxDepth < 0 {
		return errors.Errorf("max-depth must not be negative, got %d", c.MaxDepth)
	}
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errors.Annotatef(err, "invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json", "console":
	default:
		return errors.Errorf("invalid log format %q", c.Log.Format)
	}
	return nil
}

// InitLogger builds the logger described by the log section and installs
// it as the global pingcap/log logger.
func (l *Log) InitLogger() (*zap.Logger, error) {
	logger, props, err := pclog.InitLogger(&pclog.Config{
		Level:  l.Level,
		Format: l.Format,
	})
	if err != nil {
		return nil, errors.Trace(err)
	}
	pclog.ReplaceGlobals(logger, props)
	return logger, nil
}
