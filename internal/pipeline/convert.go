package pipeline

import (
	"context"
	"fmt"

	"github.com/backmassage/mapembed/internal/tiled"
	"github.com/backmassage/mapembed/internal/tileset"
)

// Outcome classifies what happened to one tileset entry.
type Outcome int

const (
	OutcomePassthrough Outcome = iota // Already embedded; copied unchanged.
	OutcomeEmbedded                   // External reference replaced by an embedded tileset.
	OutcomeSkipped                    // Dropped from the output; Err says why.
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassthrough:
		return "passthrough"
	case OutcomeEmbedded:
		return "embedded"
	case OutcomeSkipped:
		return "skipped"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the outcome for the tileset entry at Index in the source map.
type Result struct {
	Index    int
	Outcome  Outcome
	Ref      tiled.Reference   // Set for external references.
	Original tiled.Object      // The entry as read.
	Embedded *tileset.Embedded // Set when Outcome is OutcomeEmbedded.
	Err      error             // Set when Outcome is OutcomeSkipped.
}

// Value is what the result contributes to the output tilesets array, or nil
// for a skipped entry.
func (r *Result) Value() any {
	switch r.Outcome {
	case OutcomePassthrough:
		return r.Original
	case OutcomeEmbedded:
		return r.Embedded
	default:
		return nil
	}
}

// Converter embeds external tileset references.
type Converter struct {
	Table      *tileset.Table
	TilesetDir string
	TileSize   int
}

// Convert processes entries in order. Each entry is handled independently;
// a bad entry becomes a skipped result and never stops the batch. The only
// error returned is ctx's, when the run is cancelled between entries.
func (c *Converter) Convert(ctx context.Context, entries []tiled.Object) ([]Result, error) {
	results := make([]Result, 0, len(entries))
	for i, entry := range entries {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, c.entry(i, entry))
	}
	return results, nil
}

func (c *Converter) entry(i int, entry tiled.Object) Result {
	r := Result{Index: i, Original: entry}

	ref, isRef, err := tiled.AsReference(entry)
	if !isRef {
		r.Outcome = OutcomePassthrough
		return r
	}
	r.Ref = ref
	if err != nil {
		r.Outcome = OutcomeSkipped
		r.Err = fmt.Errorf("%w: %v", tileset.ErrBadReference, err)
		return r
	}

	image, err := c.Table.Resolve(ref.Source)
	if err != nil {
		r.Outcome = OutcomeSkipped
		r.Err = err
		return r
	}

	emb, err := tileset.Build(c.TilesetDir, image, c.TileSize, ref.FirstGID)
	if err != nil {
		r.Outcome = OutcomeSkipped
		r.Err = err
		return r
	}
	r.Outcome = OutcomeEmbedded
	r.Embedded = emb
	return r
}

// Tilesets collects the output array from results, preserving input order
// and omitting skipped entries.
func Tilesets(results []Result) []any {
	out := make([]any, 0, len(results))
	for i := range results {
		if v := results[i].Value(); v != nil {
			out = append(out, v)
		}
	}
	return out
}
