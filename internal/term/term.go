// Package term holds the ANSI escapes used for mapembed's console output:
// log level tags, the banner, and the skip warnings in a conversion report.
//
// [Configure] fills the variables once, before the first log line. With
// colors off every variable is "", so callers concatenate them unconditionally.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/mapembed/internal/config"
)

// Escapes per log level; Magenta is the banner. NC resets.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = ""
)

// palette pairs each escape variable with its SGR parameters (bold, bright).
var palette = []struct {
	v   *string
	sgr string
}{
	{&Red, "1;91"},
	{&Green, "1;92"},
	{&Yellow, "1;93"},
	{&Blue, "1;94"},
	{&Magenta, "1;95"},
	{&Cyan, "1;96"},
	{&NC, "0"},
}

// Configure turns colors on or off for mode. [logging.NewLoggerTo] calls it,
// so tests that build a logger with ColorNever get plain text.
func Configure(mode config.ColorMode) {
	on := resolve(mode)
	for _, p := range palette {
		*p.v = ""
		if on {
			*p.v = "\033[" + p.sgr + "m"
		}
	}
}

// Enabled reports whether the last Configure turned colors on.
func Enabled() bool { return NC != "" }

// Paint returns s wrapped in color and a reset, or s unchanged when colors
// are off.
func Paint(color, s string) string {
	if color == "" || !Enabled() {
		return s
	}
	return color + s + NC
}

// resolve decides auto mode: color only on an interactive stdout, and never
// when NO_COLOR is set (https://no-color.org) or TERM is "dumb".
func resolve(mode config.ColorMode) bool {
	if mode != config.ColorAuto {
		return mode == config.ColorAlways
	}
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a character device. Redirected output
// (a file or a pipe into another tool) is not.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}
