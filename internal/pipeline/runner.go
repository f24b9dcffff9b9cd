package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/backmassage/mapembed/internal/config"
	"github.com/backmassage/mapembed/internal/display"
	"github.com/backmassage/mapembed/internal/logging"
	"github.com/backmassage/mapembed/internal/tiled"
	"github.com/backmassage/mapembed/internal/tileset"
)

// Run is the top-level entry point. It loads the source map, converts every
// tileset entry in order, writes the result to cfg.OutputPath (unless dry
// run), and returns the stats. A read/parse failure or cancellation returns
// before anything is written.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	log.Info("Loading %s", cfg.InputPath)
	doc, err := tiled.Load(cfg.InputPath)
	if err != nil {
		return stats, fmt.Errorf("load map: %w", err)
	}
	log.Info("  Map size: %s", display.FormatDimensions(doc.Width(), doc.Height()))
	log.Info("  Layers: %d", doc.LayerCount())

	entries, err := doc.Tilesets()
	if err != nil {
		return stats, fmt.Errorf("load map: %w", err)
	}

	conv := &Converter{
		Table:      tileset.NewTable(cfg.Tilesets),
		TilesetDir: cfg.TilesetDir,
		TileSize:   cfg.TileSize,
	}
	log.Debug("Lookup table: %d entries, tileset dir %s, tile size %d", conv.Table.Len(), cfg.TilesetDir, cfg.TileSize)

	log.Blank()
	log.Info("Converting %d tilesets", len(entries))
	results, err := conv.Convert(ctx, entries)
	for i := range results {
		stats.add(results[i])
		logResult(log, &results[i])
	}
	if err != nil {
		return stats, fmt.Errorf("conversion interrupted: %w", err)
	}

	if err := doc.SetTilesets(Tilesets(results)); err != nil {
		return stats, fmt.Errorf("rebuild tilesets: %w", err)
	}

	log.Blank()
	if cfg.DryRun {
		log.Warn("[DRY] Would write %s", cfg.OutputPath)
	} else {
		log.Info("Saving to %s", cfg.OutputPath)
		n, err := doc.Save(cfg.OutputPath)
		if err != nil {
			return stats, fmt.Errorf("write map: %w", err)
		}
		stats.OutputBytes = n
		stats.Written = true
	}

	logSummary(log, results, &stats)
	return stats, nil
}

// logResult prints the per-entry diagnostic.
func logResult(log *logging.Logger, r *Result) {
	switch r.Outcome {
	case OutcomePassthrough:
		s := tiled.Summarize(r.Original)
		log.Debug("  = %s already embedded (GID %d)", s.Name, s.FirstGID)
	case OutcomeEmbedded:
		e := r.Embedded
		log.Success("  %s -> %s", r.Ref.Source, e.Image)
		log.Info("     Size: %s, Grid: %s, Tiles: %d, GID: %s",
			display.FormatDimensions(e.ImageWidth, e.ImageHeight),
			display.FormatDimensions(e.Columns, e.Rows()), e.TileCount,
			display.FormatGIDRange(e.FirstGID, e.TileCount))
		if e.TileCount == 0 {
			log.Warn("     %s is smaller than one tile; tileset has no tiles", e.Image)
		}
	case OutcomeSkipped:
		log.Warn("  Skip %s: %s", skipLabel(r), r.Err)
	}
}

func skipLabel(r *Result) string {
	switch {
	case errors.Is(r.Err, tileset.ErrUnknownTileset):
		return "(unknown tileset)"
	case errors.Is(r.Err, tileset.ErrMissingAsset):
		return "(image not found)"
	case errors.Is(r.Err, tileset.ErrUnreadableAsset):
		return "(image unreadable)"
	case errors.Is(r.Err, tileset.ErrBadReference):
		return "(bad entry)"
	default:
		return fmt.Sprintf("entry %d", r.Index)
	}
}

// logSummary prints the final tileset listing and the counters.
func logSummary(log *logging.Logger, results []Result, stats *RunStats) {
	if stats.Written {
		log.Success("Conversion complete (%s)", display.FormatBytes(stats.OutputBytes))
	} else {
		log.Success("Conversion complete (not written)")
	}
	log.Blank()
	log.Info("Final tilesets:")
	for i := range results {
		r := &results[i]
		switch r.Outcome {
		case OutcomeEmbedded:
			e := r.Embedded
			log.Info("  - %s: %s (GID %s)", e.Name, e.Image, display.FormatGIDRange(e.FirstGID, e.TileCount))
		case OutcomePassthrough:
			s := tiled.Summarize(r.Original)
			gid := fmt.Sprintf("%d", s.FirstGID)
			if s.TileCount >= 0 {
				gid = display.FormatGIDRange(s.FirstGID, s.TileCount)
			}
			log.Info("  - %s: %s (GID %s)", s.Name, s.Image, gid)
		}
	}
	log.Blank()
	log.Info("Tilesets: %d total, %d kept (%d embedded, %d already embedded), %d skipped",
		stats.Total, stats.Kept(), stats.Embedded, stats.Passthrough, stats.Skipped)
	if stats.Skipped > 0 {
		log.Warn("%d tileset(s) were dropped from the output", stats.Skipped)
	}
}
