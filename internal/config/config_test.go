package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "sqlselect.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
max-depth = 8

[log]
level = "debug"
format = "json"
`)
	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 8, c.MaxDepth)
	require.Equal(t, "debug", c.Log.Level)
	require.Equal(t, "json", c.Log.Format)
}

func TestLoadKeepsDefaults(t *testing.T) {
	c, err := Load(writeConfig(t, "[log]\nlevel = \"warn\"\n"))
	require.NoError(t, err)
	require.Equal(t, Default().MaxDepth, c.MaxDepth)
	require.Equal(t, "warn", c.Log.Level)
	require.Equal(t, "text", c.Log.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		msg     string
	}{
		{"unknown key", "max-dept = 3\n", "unknown config item"},
		{"negative depth", "max-depth = -1\n", "max-depth must not be negative"},
		{"bad level", "[log]\nlevel = \"loud\"\n", "invalid log level"},
		{"bad format", "[log]\nformat = \"xml\"\n", "invalid log format"},
		{"bad syntax", "max-depth = \n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	l := Log{Level: "warn", Format: "text"}
	logger, err := l.InitLogger()
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	require.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
