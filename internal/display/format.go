// Package display formats values for human-readable console output.
package display

import (
	"fmt"
)

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, TiB, PiB).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}

// FormatDimensions returns "WxH".
func FormatDimensions(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

// FormatGIDRange returns the inclusive global tile id range covered by a
// tileset, e.g. "50-81". An empty tileset yields "50-49", the same
// firstgid+tilecount-1 arithmetic the game uses to bound lookups.
func FormatGIDRange(firstGID, tileCount int) string {
	return fmt.Sprintf("%d-%d", firstGID, firstGID+tileCount-1)
}
