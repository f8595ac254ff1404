// Package config loads sortingtool defaults from the environment and builds its logger.
package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/715d/sortingtool/internal/args"
	"github.com/715d/sortingtool/pkg/registry"
)

// Environment variables read by Load.
const (
	EnvDataType    = "SORTINGTOOL_DATA_TYPE"
	EnvSortingType = "SORTINGTOOL_SORTING_TYPE"
	EnvLogLevel    = "SORTINGTOOL_LOG_LEVEL"
	EnvLogFile     = "SORTINGTOOL_LOG_FILE"
)

// Built-in defaults used when the environment does not override them.
const (
	DefaultDataType    = registry.TokenWord
	DefaultSortingType = registry.TokenNatural
)

// Config holds settings that are not part of the command line.
type Config struct {
	// Defaults seeds the argument resolver. Flags always override it.
	Defaults args.Options

	// LogLevel is one of debug, info, warn, error. Empty disables logging.
	LogLevel string

	// LogFile, when set, receives log records through a rotating writer.
	LogFile string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("failed to load .env file", "error", err)
	}

	return &Config{
		Defaults: args.Options{
			DataType:   dataTypeFromEnv(),
			OutputMode: outputModeFromEnv(),
		},
		LogLevel: strings.ToLower(getEnvOrDefault(EnvLogLevel, "")),
		LogFile:  getEnvOrDefault(EnvLogFile, ""),
	}
}

func dataTypeFromEnv() registry.DataType {
	token := getEnvOrDefault(EnvDataType, DefaultDataType)
	if dt, ok := registry.ParseDataType(token); ok {
		return dt
	}
	slog.Warn("invalid default data type, using built-in", "env", EnvDataType, "value", token, "default", DefaultDataType)
	dt, _ := registry.ParseDataType(DefaultDataType)
	return dt
}

func outputModeFromEnv() registry.OutputMode {
	token := getEnvOrDefault(EnvSortingType, DefaultSortingType)
	if mode, ok := registry.ParseOutputMode(token); ok {
		return mode
	}
	slog.Warn("invalid default sorting type, using built-in", "env", EnvSortingType, "value", token, "default", DefaultSortingType)
	mode, _ := registry.ParseOutputMode(DefaultSortingType)
	return mode
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// NewLogger builds the logger described by cfg. Records go to stderr and,
// when cfg.LogFile is set, to a size-rotated file. The returned closer
// releases the log file and is never nil.
func NewLogger(cfg *Config, stderr io.Writer) (*slog.Logger, io.Closer) {
	if cfg.LogLevel == "" && cfg.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}
	}

	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer = io.Discard
	if cfg.LogLevel != "" {
		w = stderr
	}

	var closer io.Closer = nopCloser{}
	if cfg.LogFile != "" {
		logWriter := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		w = io.MultiWriter(w, logWriter)
		closer = logWriter
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h), closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
