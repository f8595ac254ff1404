package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/715d/sortingtool/pkg/registry"
)

// isolateEnv runs the test in an empty directory with every variable read by Load unset.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{EnvDataType, EnvSortingType, EnvLogLevel, EnvLogFile} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)

	cfg := Load()
	require.Equal(t, registry.DataTypeWord, cfg.Defaults.DataType)
	require.Equal(t, registry.OutputModeSorted, cfg.Defaults.OutputMode)
	require.Empty(t, cfg.LogLevel)
	require.Empty(t, cfg.LogFile)
}

func TestLoad_Environment(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvDataType, "long")
	t.Setenv(EnvSortingType, "byCount")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := Load()
	require.Equal(t, registry.DataTypeLong, cfg.Defaults.DataType)
	require.Equal(t, registry.OutputModeSortedByCount, cfg.Defaults.OutputMode)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_InvalidEnvironmentFallsBack(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvDataType, "double")
	t.Setenv(EnvSortingType, "random")

	cfg := Load()
	require.Equal(t, registry.DataTypeWord, cfg.Defaults.DataType)
	require.Equal(t, registry.OutputModeSorted, cfg.Defaults.OutputMode)
}

func TestLoad_DotEnvFile(t *testing.T) {
	isolateEnv(t)
	require.NoError(t, os.WriteFile(".env", []byte(EnvDataType+"=line\n"+EnvSortingType+"=summary\n"), 0o600))

	cfg := Load()
	require.Equal(t, registry.DataTypeLine, cfg.Defaults.DataType)
	require.Equal(t, registry.OutputModeSummary, cfg.Defaults.OutputMode)
}

func TestNewLogger_DisabledByDefault(t *testing.T) {
	var stderr bytes.Buffer
	logger, closer := NewLogger(&Config{}, &stderr)
	logger.Error("should not appear")

	require.NoError(t, closer.Close())
	require.Empty(t, stderr.String())
}

func TestNewLogger_Level(t *testing.T) {
	var stderr bytes.Buffer
	logger, closer := NewLogger(&Config{LogLevel: "warn"}, &stderr)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	require.NoError(t, closer.Close())
	require.NotContains(t, stderr.String(), "hidden")
	require.Contains(t, stderr.String(), "msg=shown key=value")
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortingtool.log")

	var stderr bytes.Buffer
	logger, closer := NewLogger(&Config{LogFile: path}, &stderr)
	logger.Info("processed input", "items", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "msg=\"processed input\" items=3")
	require.Empty(t, stderr.String(), "file-only logging must not write to stderr")
}
