package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/pdiddy/tmdb-pick/pkg/types"
)

// logFile is the rotating writer behind the default logger, kept so it can
// be closed when the command finishes.
var logFile *lumberjack.Logger

// defaultLogPath returns the log location under the user cache directory.
func defaultLogPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tmdb-pick", "tmdb-pick.log"), nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// initLogging installs a JSON slog logger writing to a rotating file. With
// verbose set, records are also copied to stderr at debug level.
func initLogging(cfg types.LogConfig, verbose bool, stderr io.Writer) error {
	path := cfg.File
	if path == "" {
		p, err := defaultLogPath()
		if err != nil {
			return fmt.Errorf("locating log directory: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = 10
	}
	maxFiles := cfg.MaxFiles
	if maxFiles <= 0 {
		maxFiles = 5
	}

	logFile = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxFiles,
		MaxAge:     30,
		Compress:   true,
	}

	var w io.Writer = logFile
	level := parseLevel(cfg.Level)
	if verbose {
		w = io.MultiWriter(logFile, stderr)
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})))
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
