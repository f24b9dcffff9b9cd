package tiled

import (
	"errors"
	"fmt"
)

// Reference is an external tileset entry: {"firstgid": N, "source": "x.tsx"}.
type Reference struct {
	Source   string
	FirstGID int
}

// AsReference reports whether entry points at an external tileset file. An
// entry with a source but no usable firstgid is returned with an error;
// GID 0 is Tiled's empty tile, so firstgid must be at least 1.
func AsReference(entry Object) (Reference, bool, error) {
	if !entry.Has("source") {
		return Reference{}, false, nil
	}
	var ref Reference
	if err := entry.Decode("source", &ref.Source); err != nil {
		return Reference{}, true, err
	}
	var gid *int
	if err := entry.Decode("firstgid", &gid); err != nil {
		return ref, true, fmt.Errorf("tileset %s: %w", ref.Source, err)
	}
	if gid == nil {
		return ref, true, fmt.Errorf("tileset %s: %w", ref.Source, errNullFirstGID)
	}
	if *gid < 1 {
		return ref, true, fmt.Errorf("tileset %s: firstgid %d is not a tile id", ref.Source, *gid)
	}
	ref.FirstGID = *gid
	return ref, true, nil
}

var errNullFirstGID = errors.New(`"firstgid" is null`)

// Summary is the part of an embedded entry shown in the final report.
// TileCount is -1 when the entry doesn't carry one.
type Summary struct {
	Name      string
	Image     string
	FirstGID  int
	TileCount int
}

// Summarize pulls name, image, firstgid, and tilecount out of an entry,
// leaving zero values for fields that are absent or of the wrong type.
func Summarize(entry Object) Summary {
	s := Summary{TileCount: -1}
	_ = entry.Decode("name", &s.Name)
	_ = entry.Decode("image", &s.Image)
	_ = entry.Decode("firstgid", &s.FirstGID)
	if entry.Has("tilecount") {
		var n int
		if entry.Decode("tilecount", &n) == nil {
			s.TileCount = n
		}
	}
	return s
}
