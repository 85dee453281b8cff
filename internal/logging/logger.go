// Package logging builds the slog loggers used by whoops: a rotating JSON
// file logger for the viewers and a text logger for CLI subcommands.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

const (
	// maxLogSize is the file size that triggers rotation (5 MB).
	maxLogSize = 5 * 1024 * 1024
	// maxLogBackups is the number of rotated files kept.
	maxLogBackups = 3
)

// Options configures the file logger.
type Options struct {
	// Debug lowers the level to DEBUG and records source locations.
	Debug bool
	// Dir overrides the platform log directory.
	Dir string
}

// InitLogger opens <dir>/<appName>.log for appending and returns a JSON
// logger writing to it. Without opts.Dir the platform location is used:
//   - macOS:   ~/Library/Logs/<app>/
//   - Linux:   ~/.local/state/<app>/
//   - Windows: %LOCALAPPDATA%\<app>\Logs\
//
// A file over 5 MB is rotated before opening.
func InitLogger(appName string, opts Options) (*slog.Logger, error) {
	dir := opts.Dir
	if dir == "" {
		var err error
		if dir, err = LogDir(appName); err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	logPath := filepath.Join(dir, appName+".log")
	if err := rotateIfNeeded(logPath, maxLogSize); err != nil {
		return nil, fmt.Errorf("failed to rotate log file: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	return slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level:     levelFor(opts.Debug),
		AddSource: opts.Debug,
	})), nil
}

// LogDir returns the platform log directory for appName.
func LogDir(appName string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", appName), nil
	case "linux":
		return filepath.Join(homeDir, ".local", "state", appName), nil
	case "windows":
		base := os.Getenv("LOCALAPPDATA")
		if base == "" {
			base = filepath.Join(homeDir, "AppData", "Local")
		}
		return filepath.Join(base, appName, "Logs"), nil
	default:
		return "", fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}
}

// rotateIfNeeded shifts logPath to logPath.1 (and older backups up by one)
// once it reaches limit bytes. The oldest backup is dropped.
func rotateIfNeeded(logPath string, limit int64) error {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() < limit {
		return nil
	}

	_ = os.Remove(backupName(logPath, maxLogBackups))
	for i := maxLogBackups - 1; i >= 1; i-- {
		_ = os.Rename(backupName(logPath, i), backupName(logPath, i+1))
	}
	if err := os.Rename(logPath, backupName(logPath, 1)); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}

func backupName(logPath string, n int) string {
	return fmt.Sprintf("%s.%d", logPath, n)
}

// NewConsoleLogger returns a text logger for CLI subcommands. It writes to w
// (normally stderr, keeping stdout for command output) and renames the
// "error" key to "err".
func NewConsoleLogger(w io.Writer, debug bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: levelFor(debug),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError + 1,
	}))
}

func levelFor(debug bool) slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
