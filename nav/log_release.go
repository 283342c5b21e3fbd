//go:build !navlog

package nav

// InitNavLog is a no-op in release builds (built without the navlog tag).
func InitNavLog(enabled bool, categories string) {}

// NavLog is a no-op in release builds.
func NavLog(category string, format string, args ...any) {}

// NavLogEnabled always returns false in release builds.
func NavLogEnabled(category string) bool { return false }
