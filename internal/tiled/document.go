// Package tiled reads and writes Tiled JSON map documents without losing the
// parts this tool doesn't understand. Only the tilesets array is interpreted;
// every other key is carried through in its original order and raw form.
package tiled

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Indent is the per-level indentation of written documents.
const Indent = "  "

// ErrNoTilesets is returned when a document has no tilesets array.
var ErrNoTilesets = errors.New("map has no tilesets array")

// Document is a parsed map.
type Document struct {
	root Object
}

// Load reads and parses the map at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a map document. The top level must be an object whose
// tilesets value is an array.
func Parse(data []byte) (*Document, error) {
	var root Object
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse map JSON: %w", err)
	}
	doc := &Document{root: root}
	if _, err := doc.Tilesets(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Width returns the map width in tiles, or 0 when absent or not a number.
func (d *Document) Width() int { return d.intField("width") }

// Height returns the map height in tiles, or 0 when absent or not a number.
func (d *Document) Height() int { return d.intField("height") }

// LayerCount returns the number of top-level layers.
func (d *Document) LayerCount() int {
	var layers []json.RawMessage
	if err := d.root.Decode("layers", &layers); err != nil {
		return 0
	}
	return len(layers)
}

func (d *Document) intField(key string) int {
	var n int
	if err := d.root.Decode(key, &n); err != nil {
		return 0
	}
	return n
}

// Tilesets returns the tileset entries in document order.
func (d *Document) Tilesets() ([]Object, error) {
	raw, ok := d.root.Raw("tilesets")
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, ErrNoTilesets
	}
	var entries []Object
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("tilesets: %w", err)
	}
	return entries, nil
}

// SetTilesets replaces the tilesets array in place. Each entry must marshal
// to a JSON object; an empty slice writes [] rather than null.
func (d *Document) SetTilesets(entries []any) error {
	if entries == nil {
		entries = []any{}
	}
	return d.root.Set("tilesets", entries)
}

// Encode serializes the document with two-space indentation, "," between
// items and ": " after keys, followed by a single newline.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(d.root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save encodes the document and atomically replaces path with it, creating
// the parent directory when needed. It returns the number of bytes written.
func (d *Document) Save(path string) (int64, error) {
	data, err := d.Encode()
	if err != nil {
		return 0, err
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return 0, err
	}
	return int64(len(data)), nil
}

// writeFileAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a half-written map.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
