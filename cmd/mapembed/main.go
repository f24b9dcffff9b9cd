// Command mapembed is the CLI entrypoint for the tileset embedder.
//
// It parses flags, validates configuration and paths, and either audits the
// tileset lookup table (--check) or converts the map.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/mapembed/internal/check"
	"github.com/backmassage/mapembed/internal/config"
	"github.com/backmassage/mapembed/internal/display"
	"github.com/backmassage/mapembed/internal/logging"
	"github.com/backmassage/mapembed/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseArgs(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "mapembed: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "mapembed: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mapembed: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available.
	display.PrintBanner(os.Stdout)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	if err := check.CheckTilesetDir(&cfg); err != nil {
		log.Warn("%v; every external tileset will be skipped", err)
	}

	// The converter must never overwrite its own source.
	inputAbs, err := filepath.Abs(cfg.InputPath)
	if err != nil {
		log.Error("Cannot resolve input path: %s", cfg.InputPath)
		return 1
	}
	outputAbs, err := absPath(cfg.OutputPath)
	if err != nil {
		log.Error("Cannot resolve output path: %s", cfg.OutputPath)
		return 1
	}
	if resolved, err := filepath.EvalSymlinks(inputAbs); err == nil {
		inputAbs = resolved
	}
	if err := cfg.ValidatePaths(inputAbs, outputAbs); err != nil {
		log.Error("%v", err)
		return 1
	}

	log.Info("=== mapembed v%s (%s) ===", version, commit)
	log.Info("In:       %s", cfg.InputPath)
	log.Info("Tilesets: %s", cfg.TilesetDir)
	log.Info("Out:      %s", cfg.OutputPath)
	if cfg.ConfigFile != "" {
		log.Info("Config:   %s", cfg.ConfigFile)
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: the output map will not be written")
	}
	log.Blank()

	// Phase 3: Signal handling. Cancel between entries so an interrupted run
	// leaves no output behind.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Phase 4: Run pipeline (load → convert → save).
	stats, err := pipeline.Run(ctx, &cfg, log)
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	code := exitCode(&cfg, stats)
	if code != 0 {
		log.Error("Strict mode: %d tileset(s) skipped", stats.Skipped)
	}
	return code
}

// exitCode maps a completed run to the process status. Skips are normal
// unless --strict is set.
func exitCode(cfg *config.Config, stats pipeline.RunStats) int {
	if cfg.StrictMode && stats.Skipped > 0 {
		return 1
	}
	return 0
}

// absPath returns an absolute path for a file that may not exist yet,
// resolving symlinks in whatever part of its directory already exists.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	dir, file := filepath.Split(abs)
	if resolvedDir, err := filepath.EvalSymlinks(dir); err == nil {
		return filepath.Join(resolvedDir, file), nil
	}
	return abs, nil
}
