package tileset

import (
	"fmt"
	"path"
	"sort"
	"strings"
)

// builtin maps each external tileset definition used by the game's maps to
// the image it was cut from.
var builtin = map[string]string{
	"decor.tsx":         "decor.png",
	"grass.tsx":         "grass.png",
	"bush.tsx":          "bush.png",
	"bridge.tsx":        "bridge.png",
	"broken-bridge.tsx": "broken-bridge.png",
	"fence.tsx":         "fence.png",
	"soil.tsx":          "soil.png",
	"tree1.tsx":         "tree1.png",
	"tree3.tsx":         "tree3.png",
	"flowers.tsx":       "flowers.png",
	"nametag.tsx":       "nametag.png",
	"treetrunk.tsx":     "treetrunk.png",
	"weed.tsx":          "weed.png",
	"flowergrass2.tsx":  "flowergrass2.png",
	"flowergrass.tsx":   "flowergrass.png",
	"ground-decor.tsx":  "ground-decor.png",
	"stones.tsx":        "stones.png",
	"nametagnishi.tsx":  "nametagnishi.png",
}

// Table resolves external tileset filenames to image filenames.
type Table struct {
	entries map[string]string
}

// NewTable returns the built-in table with extra merged over it. Entries in
// extra replace built-in entries of the same name.
func NewTable(extra map[string]string) *Table {
	t := &Table{entries: make(map[string]string, len(builtin)+len(extra))}
	for k, v := range builtin {
		t.entries[k] = v
	}
	for k, v := range extra {
		t.entries[k] = v
	}
	return t
}

// Resolve returns the image filename for source. An exact match wins; failing
// that, the base name is tried so "../tilesets/grass.tsx" finds grass.tsx.
func (t *Table) Resolve(source string) (string, error) {
	if img, ok := t.entries[source]; ok {
		return img, nil
	}
	base := path.Base(strings.ReplaceAll(source, `\`, "/"))
	if img, ok := t.entries[base]; ok {
		return img, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownTileset, source)
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Mapping is one table entry.
type Mapping struct {
	Source string
	Image  string
}

// Mappings returns all entries sorted by source name.
func (t *Table) Mappings() []Mapping {
	out := make([]Mapping, 0, len(t.entries))
	for src, img := range t.entries {
		out = append(out, Mapping{Source: src, Image: img})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Source < out[j].Source })
	return out
}
