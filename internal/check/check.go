// Package check provides the --check audit of the tileset lookup table against
// the tileset directory, and the pre-run validation (CheckDeps) of the paths a
// conversion needs.
package check

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/mapembed/internal/config"
	"github.com/backmassage/mapembed/internal/display"
	"github.com/backmassage/mapembed/internal/probe"
	"github.com/backmassage/mapembed/internal/tileset"
)

// Sentinel errors returned by CheckDeps when a required path is missing.
var (
	ErrInputNotFound      = errors.New("input map not found")
	ErrTilesetDirNotFound = errors.New("tileset directory not found")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// Report is the outcome of an audit.
type Report struct {
	OK           int      // Lookup entries whose image probed cleanly.
	Missing      []string // Lookup entries whose image is absent.
	Unreadable   []string // Lookup entries whose image exists but can't be sized.
	Unreferenced []string // Images in the tileset dir that no lookup entry names.
}

// Healthy reports whether every lookup entry has a usable image.
func (r *Report) Healthy() bool {
	return len(r.Missing) == 0 && len(r.Unreadable) == 0
}

// RunCheck probes the image behind every lookup entry, then lists images in
// the tileset directory that nothing references. It returns false when any
// entry's image is missing or unreadable; unreferenced images only warn.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Tileset Check ===")
	if err := checkDir(cfg.TilesetDir); err != nil {
		log.Error("%v", err)
		return false
	}
	rep := Audit(cfg, log)

	log.Info("")
	log.Info("%d ok, %d missing, %d unreadable, %d unreferenced",
		rep.OK, len(rep.Missing), len(rep.Unreadable), len(rep.Unreferenced))
	if rep.Healthy() {
		log.Success("All lookup entries resolve to usable images")
	}
	return rep.Healthy()
}

// Audit does the work behind RunCheck and returns the findings.
func Audit(cfg *config.Config, log Logger) Report {
	var rep Report
	table := tileset.NewTable(cfg.Tilesets)
	referenced := make(map[string]bool, table.Len())

	log.Info("Lookup table (%d entries), tile size %d:", table.Len(), cfg.TileSize)
	for _, m := range table.Mappings() {
		referenced[filepath.ToSlash(m.Image)] = true

		emb, err := tileset.Build(cfg.TilesetDir, m.Image, cfg.TileSize, 1)
		switch {
		case errors.Is(err, tileset.ErrMissingAsset):
			log.Error("  %s -> %s: not found", m.Source, m.Image)
			rep.Missing = append(rep.Missing, m.Source)
		case err != nil:
			log.Error("  %s -> %s: %v", m.Source, m.Image, err)
			rep.Unreadable = append(rep.Unreadable, m.Source)
		default:
			log.Success("  %s -> %s (%s, %d tiles)", m.Source, m.Image,
				display.FormatDimensions(emb.ImageWidth, emb.ImageHeight), emb.TileCount)
			if emb.ImageWidth%cfg.TileSize != 0 || emb.ImageHeight%cfg.TileSize != 0 {
				log.Warn("    size is not a multiple of %d; edge pixels are ignored", cfg.TileSize)
			}
			rep.OK++
		}
	}

	images, err := probe.DiscoverImages(cfg.TilesetDir)
	if err != nil {
		log.Warn("Could not list %s: %v", cfg.TilesetDir, err)
		return rep
	}
	for _, img := range images {
		if !referenced[img] {
			rep.Unreferenced = append(rep.Unreferenced, img)
		}
	}
	if len(rep.Unreferenced) > 0 {
		log.Info("Images with no lookup entry:")
		for _, img := range rep.Unreferenced {
			log.Warn("  %s", img)
		}
	}
	return rep
}

// CheckDeps is the pre-run validation: the input map must be a regular file.
// A missing tileset directory is not fatal to a conversion (each external
// entry is skipped instead), so callers check it separately with
// [CheckTilesetDir] and decide how loudly to report it.
func CheckDeps(cfg *config.Config) error {
	fi, err := os.Stat(cfg.InputPath)
	if err != nil || fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrInputNotFound, cfg.InputPath)
	}
	return nil
}

// CheckTilesetDir reports ErrTilesetDirNotFound unless cfg.TilesetDir is a directory.
func CheckTilesetDir(cfg *config.Config) error {
	return checkDir(cfg.TilesetDir)
}

func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%w: %s", ErrTilesetDirNotFound, dir)
	}
	return nil
}
