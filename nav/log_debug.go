//go:build navlog

package nav

import (
	"fmt"
	"strings"
)

var (
	navlogEnabled    bool
	navlogCategories map[string]bool
)

// InitNavLog turns on the hot-path tick logger for the given comma-separated
// categories ("" or "all" enables every category).
func InitNavLog(enabled bool, categories string) {
	navlogEnabled = enabled
	navlogCategories = make(map[string]bool)
	if !enabled {
		return
	}
	if categories == "" || categories == "all" {
		for _, c := range []string{LogState, LogWaypoint, LogAltitude, LogYaw, LogAction, LogTangent} {
			navlogCategories[c] = true
		}
		return
	}
	for _, c := range strings.Split(categories, ",") {
		navlogCategories[strings.TrimSpace(c)] = true
	}
}

// NavLog logs a formatted message if the category is enabled.
func NavLog(category string, format string, args ...any) {
	if !navlogEnabled || !navlogCategories[category] {
		return
	}
	fmt.Printf("[%s] %s\n", category, fmt.Sprintf(format, args...))
}

func NavLogEnabled(category string) bool {
	return navlogEnabled && navlogCategories[category]
}
