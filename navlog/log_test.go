package navlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_WritesToConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	l := New("info", dir)

	l.Info("hello")

	if l.LogFile != filepath.Join(dir, "navengine.slog") {
		t.Errorf("LogFile = %q, want under %q", l.LogFile, dir)
	}
	if _, err := os.Stat(l.LogFile); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestNilLogger_DoesNotPanic(t *testing.T) {
	var l *Logger
	l.Debug("debug")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	l.Debugf("debug %d", 1)
	l.Infof("info %d", 1)
	l.Warnf("warn %d", 1)
	l.Errorf("error %d", 1)
}

func TestWarnLevel_SuppressesBelowThreshold(t *testing.T) {
	dir := t.TempDir()
	l := New("warn", dir)

	l.Info("should be filtered")
	l.Warn("should appear")

	data, err := os.ReadFile(l.LogFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty, expected at least the warn record")
	}
	if strings.Contains(string(data), "should be filtered") {
		t.Error("info record was written at warn level, want it suppressed")
	}
}
