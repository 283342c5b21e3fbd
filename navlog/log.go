// Package navlog is the ambient structured-logging tier: a slog.Logger
// backed by a rotating file, used by the cmd/ binaries for warn/error-level
// events (mission failure, trace write errors) that should survive past a
// single process run. The nav package does not use it.
//
// The hot tick path does not use this package; it logs through nav.NavLog,
// the build-tag-gated free-function logger meant to compile out entirely in
// a release build.
package navlog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps slog.Logger to attach a callstack to every message and to
// tolerate a nil receiver, so code that holds an optional Logger doesn't
// need to nil-check before every call.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// New builds a Logger that writes newline-delimited JSON to dir, rotating
// at 32MB (512MB at debug level) and keeping one backup. An empty dir
// defaults to "navengine-logs"
// under the current directory.
func New(level, dir string) *Logger {
	if dir == "" {
		dir = "navengine-logs"
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "navengine.slog"),
		MaxSize:    32,
		MaxBackups: 1,
	}

	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
		w.MaxSize = 512
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "%s: invalid log level\n", level)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	l := &Logger{
		Logger:  slog.New(h),
		LogFile: w.Filename,
		Start:   time.Now(),
	}

	l.Info("navengine session start", slog.Time("start", l.Start))
	return l
}

func stackArg() slog.Attr {
	return slog.Any("callstack", callstack())
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelDebug) {
		l.Logger.Debug(msg, append([]any{stackArg()}, args...)...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...), stackArg())
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelInfo) {
		l.Logger.Info(msg, append([]any{stackArg()}, args...)...)
	}
}

func (l *Logger) Infof(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(nil, slog.LevelInfo) {
		l.Logger.Info(fmt.Sprintf(msg, args...), stackArg())
	}
}

// Warn and Error fall back to the default slog logger on a nil receiver,
// so a warning raised before a Logger has been constructed is never lost.
func (l *Logger) Warn(msg string, args ...any) {
	args = append([]any{stackArg()}, args...)
	if l == nil {
		slog.Warn(msg, args...)
		return
	}
	l.Logger.Warn(msg, args...)
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l == nil {
		slog.Warn(fmt.Sprintf(msg, args...), stackArg())
		return
	}
	l.Logger.Warn(fmt.Sprintf(msg, args...), stackArg())
}

func (l *Logger) Error(msg string, args ...any) {
	args = append([]any{stackArg()}, args...)
	slog.Error(msg, args...)
	if l != nil {
		l.Logger.Error(msg, args...)
	}
}

func (l *Logger) Errorf(msg string, args ...any) {
	slog.Error(fmt.Sprintf(msg, args...), stackArg())
	if l != nil {
		l.Logger.Error(fmt.Sprintf(msg, args...), stackArg())
	}
}

func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{
		Logger:  l.Logger.With(args...),
		LogFile: l.LogFile,
		Start:   l.Start,
	}
}
