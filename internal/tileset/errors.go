package tileset

import "errors"

// Per-entry conditions. A conversion run skips the entry and carries on;
// none of these abort the batch.
var (
	ErrUnknownTileset  = errors.New("unknown tileset")
	ErrMissingAsset    = errors.New("tileset image not found")
	ErrUnreadableAsset = errors.New("tileset image unreadable")
	ErrBadReference    = errors.New("malformed tileset reference")
)
