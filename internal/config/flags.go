package config

// This file implements CLI parsing with kong. Flags are declared on a private
// struct and applied to Config after parsing so that values from
// DefaultConfig() and the config file hold unless the user passes the flag.

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

const description = "Embed external Tiled tilesets into a map, sized from the tileset images."

// cli mirrors the command line. Zero values mean "not given on the command
// line"; TileSize is a pointer so an explicit -s 0 still reaches Validate.
type cli struct {
	Input string `arg:"" optional:"" help:"Source map (default: ${default_input})."`

	TilesetDir string `short:"t" name:"tileset-dir" placeholder:"DIR" help:"Tileset image directory (default: ${default_tileset_dir})."`
	Output     string `short:"o" placeholder:"PATH" help:"Output map (default: ${default_output})."`
	TileSize   *int   `short:"s" name:"tile-size" placeholder:"N" help:"Tile edge in pixels (default: ${default_tile_size})."`
	Config     string `name:"config" placeholder:"PATH" help:"YAML config file (paths, tile size, lookup additions)."`

	DryRun bool `short:"d" name:"dry-run" help:"Convert and report, but do not write the output map."`
	Strict bool `help:"Exit non-zero if any tileset entry was skipped."`

	Color   bool   `help:"Force colored logs."`
	NoColor bool   `name:"no-color" help:"Disable colored logs."`
	Verbose bool   `short:"v" help:"Verbose output."`
	Log     string `short:"l" placeholder:"PATH" help:"Append logs to file."`
	Check   bool   `short:"c" help:"Audit the tileset lookup table against the tileset directory and exit."`

	Version kong.VersionFlag `short:"V" help:"Print version and exit."`
}

// ParseArgs parses args (without the program name) into cfg. On --help or
// --version kong prints and exits. A --config file is loaded before the
// remaining flags are applied, so explicit flags win over file values.
func ParseArgs(cfg *Config, args []string, version string) error {
	return parseArgs(cfg, args, version, os.Stdout, os.Exit)
}

func parseArgs(cfg *Config, args []string, version string, stdout io.Writer, exit func(int)) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("mapembed"),
		kong.Description(description),
		kong.Writers(stdout, os.Stderr),
		kong.Exit(exit),
		kong.Vars{
			"version":             "mapembed v" + version,
			"default_input":       cfg.InputPath,
			"default_tileset_dir": cfg.TilesetDir,
			"default_output":      cfg.OutputPath,
			"default_tile_size":   fmt.Sprint(cfg.TileSize),
		},
	)
	if err != nil {
		return err
	}
	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if c.Config != "" {
		if err := LoadFile(c.Config, cfg); err != nil {
			return err
		}
		cfg.ConfigFile = c.Config
	}
	applyFlags(cfg, &c)
	return nil
}

// applyFlags copies explicitly set CLI values into cfg.
func applyFlags(cfg *Config, c *cli) {
	if c.Input != "" {
		cfg.InputPath = c.Input
	}
	if c.TilesetDir != "" {
		cfg.TilesetDir = NormalizeDirArg(c.TilesetDir)
	}
	if c.Output != "" {
		cfg.OutputPath = c.Output
	}
	if c.TileSize != nil {
		cfg.TileSize = *c.TileSize
	}
	if c.DryRun {
		cfg.DryRun = true
	}
	if c.Strict {
		cfg.StrictMode = true
	}
	if c.Verbose {
		cfg.Verbose = true
	}
	if c.Log != "" {
		cfg.LogFile = c.Log
	}
	if c.Check {
		cfg.CheckOnly = true
	}
	if c.NoColor {
		cfg.ColorMode = ColorNever
	} else if c.Color {
		cfg.ColorMode = ColorAlways
	}
}
