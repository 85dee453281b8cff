package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestLogDir(t *testing.T) {
	dir, err := LogDir("whoops")
	if err != nil {
		t.Fatalf("LogDir failed: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("LogDir returned relative path: %s", dir)
	}

	homeDir, _ := os.UserHomeDir()
	var want string
	switch runtime.GOOS {
	case "darwin":
		want = filepath.Join(homeDir, "Library", "Logs", "whoops")
	case "linux":
		want = filepath.Join(homeDir, ".local", "state", "whoops")
	default:
		return
	}
	if dir != want {
		t.Errorf("LogDir = %s, want %s", dir, want)
	}
}

func TestInitLogger_WritesJSON(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{"info level", false, false},
		{"debug level", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			logger, err := InitLogger("whoops-test", Options{Debug: tt.debug, Dir: dir})
			if err != nil {
				t.Fatalf("InitLogger failed: %v", err)
			}

			logger.Debug("debug message")
			logger.Info("recorded report", slog.String("id", "r-1"))

			data, err := os.ReadFile(filepath.Join(dir, "whoops-test.log"))
			if err != nil {
				t.Fatalf("log file not written: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")

			var last map[string]any
			if err := json.Unmarshal([]byte(lines[len(lines)-1]), &last); err != nil {
				t.Fatalf("log line is not JSON: %v", err)
			}
			if last["id"] != "r-1" {
				t.Errorf("id attribute = %v, want r-1", last["id"])
			}
			if got := strings.Contains(string(data), "debug message"); got != tt.wantDebug {
				t.Errorf("debug line present = %v, want %v", got, tt.wantDebug)
			}
		})
	}
}

func TestInitLogger_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")

	if _, err := InitLogger("whoops-test", Options{Dir: dir}); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("log directory not created: %v", err)
	}
}

func TestNewNopLogger(t *testing.T) {
	logger := NewNopLogger()
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("nop logger accepts error records")
	}
	logger.Error("dropped")
}

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewConsoleLogger(&buf, false)

	logger.Debug("hidden")
	logger.Error("save failed", slog.Any("error", errors.New("disk full")))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, "err=\"disk full\"") {
		t.Errorf("expected err key in output, got: %s", out)
	}
}

func TestRotateIfNeeded(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "whoops.log")

	write := func(path, body string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	write(logPath, "current")
	write(backupName(logPath, 1), "one")
	write(backupName(logPath, maxLogBackups), "oldest")

	if err := rotateIfNeeded(logPath, 4); err != nil {
		t.Fatalf("rotateIfNeeded failed: %v", err)
	}

	if _, err := os.Stat(logPath); !os.IsNotExist(err) {
		t.Errorf("expected current log to be moved, stat err = %v", err)
	}
	for n, want := range map[int]string{1: "current", 2: "one"} {
		got, err := os.ReadFile(backupName(logPath, n))
		if err != nil || string(got) != want {
			t.Errorf("backup %d = %q (%v), want %q", n, got, err, want)
		}
	}
	if _, err := os.Stat(backupName(logPath, maxLogBackups)); !os.IsNotExist(err) {
		t.Errorf("oldest backup kept, stat err = %v", err)
	}
}

func TestRotateIfNeeded_SmallFileUntouched(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "whoops.log")
	if err := os.WriteFile(logPath, []byte("small"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := rotateIfNeeded(logPath, maxLogSize); err != nil {
		t.Fatalf("rotateIfNeeded failed: %v", err)
	}
	if _, err := os.Stat(logPath); err != nil {
		t.Errorf("small log rotated: %v", err)
	}
}
