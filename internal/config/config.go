// Package config holds runtime configuration: defaults, CLI flag parsing, the
// optional YAML config file, and validation. Defaults match the layout the
// game expects: map.json in the working directory, tileset images under
// assets/tilesets, and the converted map written to assets/maps/map.json.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// DefaultTileSize is the square tile edge, in pixels, used by the game's maps.
const DefaultTileSize = 32

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// by [LoadFile] when a config file is given, and finally by [ParseArgs].
// Packages receive it by pointer.
type Config struct {
	// Paths.
	InputPath  string // Source map. Default: "map.json".
	TilesetDir string // Tileset image directory. Default: "assets/tilesets".
	OutputPath string // Converted map. Default: "assets/maps/map.json".
	ConfigFile string // Optional YAML file; see file.go.

	// Conversion.
	TileSize int               // Default: 32.
	Tilesets map[string]string // Lookup additions from the config file, merged over the built-in table.

	// Behavior flags.
	DryRun     bool // Convert and report without writing output.
	StrictMode bool // Treat any skipped tileset entry as a failed run.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with the conventional asset layout.
func DefaultConfig() Config {
	return Config{
		InputPath:  "map.json",
		TilesetDir: "assets/tilesets",
		OutputPath: "assets/maps/map.json",
		TileSize:   DefaultTileSize,
		ColorMode:  ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum and numeric fields and that every path is set.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be a positive number of pixels (got %d)", c.TileSize)
	}
	if c.TilesetDir == "" {
		return errors.New("tileset directory must not be empty")
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" || c.OutputPath == "" {
		return errors.New("need both an input map and an output path")
	}
	return nil
}

// ValidatePaths ensures the resolved output file is not the resolved input
// file. Both arguments must be absolute, cleaned paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	if filepath.Clean(inputAbs) == filepath.Clean(outputAbs) {
		return errors.New("output map must not overwrite the input map")
	}
	return nil
}
