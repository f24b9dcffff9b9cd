package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk YAML shape. Empty fields leave cfg unchanged.
type fileConfig struct {
	Input      string            `yaml:"input,omitempty"`
	TilesetDir string            `yaml:"tileset_dir,omitempty"`
	Output     string            `yaml:"output,omitempty"`
	TileSize   *int              `yaml:"tile_size,omitempty"`
	Tilesets   map[string]string `yaml:"tilesets,omitempty"`
}

// LoadFile reads a YAML config file and applies its values over cfg.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Input != "" {
		cfg.InputPath = fc.Input
	}
	if fc.TilesetDir != "" {
		cfg.TilesetDir = NormalizeDirArg(fc.TilesetDir)
	}
	if fc.Output != "" {
		cfg.OutputPath = fc.Output
	}
	if fc.TileSize != nil {
		cfg.TileSize = *fc.TileSize
	}
	if len(fc.Tilesets) > 0 {
		if cfg.Tilesets == nil {
			cfg.Tilesets = make(map[string]string, len(fc.Tilesets))
		}
		for src, img := range fc.Tilesets {
			if src == "" || img == "" {
				return fmt.Errorf("config %s: tileset mapping %q -> %q must name both files", path, src, img)
			}
			cfg.Tilesets[src] = img
		}
	}
	return nil
}
