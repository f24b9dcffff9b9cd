package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "assets/tilesets", "assets/tilesets"},
		{"single trailing slash", "assets/tilesets/", "assets/tilesets"},
		{"multiple trailing slashes", "assets/tilesets///", "assets/tilesets"},
		{"root path", "/", "/"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "rainbow", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_TileSize(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"default", DefaultTileSize, false},
		{"sixteen", 16, false},
		{"zero", 0, true},
		{"negative", -32, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TileSize = tt.size
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when the input path is empty")
	}

	cfg = DefaultConfig()
	cfg.TilesetDir = ""
	cfg.CheckOnly = true
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when the tileset dir is empty, even in check mode")
	}
}

func TestValidate_CheckOnlySkipsMapPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.InputPath = ""
	cfg.OutputPath = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with empty map paths when CheckOnly is true, got: %v", err)
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantErr bool
	}{
		{"distinct files", "/game/map.json", "/game/assets/maps/map.json", false},
		{"same file", "/game/map.json", "/game/map.json", true},
		{"same file uncleaned", "/game/map.json", "/game/./maps/../map.json", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.input, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.input, tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.InputPath != "map.json" {
		t.Errorf("default InputPath = %q, want map.json", cfg.InputPath)
	}
	if cfg.TilesetDir != "assets/tilesets" {
		t.Errorf("default TilesetDir = %q, want assets/tilesets", cfg.TilesetDir)
	}
	if cfg.OutputPath != "assets/maps/map.json" {
		t.Errorf("default OutputPath = %q, want assets/maps/map.json", cfg.OutputPath)
	}
	if cfg.TileSize != 32 {
		t.Errorf("default TileSize = %d, want 32", cfg.TileSize)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
	if cfg.DryRun || cfg.StrictMode || cfg.CheckOnly {
		t.Error("default behavior flags should all be off")
	}
}

func TestParseArgs_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseArgs(&cfg, nil, "test"); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	want := DefaultConfig()
	if cfg.InputPath != want.InputPath || cfg.OutputPath != want.OutputPath ||
		cfg.TilesetDir != want.TilesetDir || cfg.TileSize != want.TileSize {
		t.Errorf("ParseArgs with no args changed defaults: %+v", cfg)
	}
}

func TestParseArgs_Flags(t *testing.T) {
	cfg := DefaultConfig()
	args := []string{
		"-t", "art/tiles/",
		"--output", "out/level.json",
		"--tile-size", "16",
		"--dry-run", "--strict", "-v", "--no-color",
		"-l", "run.log",
		"levels/level1.json",
	}
	if err := ParseArgs(&cfg, args, "test"); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}

	if cfg.InputPath != "levels/level1.json" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.TilesetDir != "art/tiles" {
		t.Errorf("TilesetDir = %q, want trailing slash stripped", cfg.TilesetDir)
	}
	if cfg.OutputPath != "out/level.json" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
	if cfg.TileSize != 16 {
		t.Errorf("TileSize = %d, want 16", cfg.TileSize)
	}
	if !cfg.DryRun || !cfg.StrictMode || !cfg.Verbose {
		t.Errorf("behavior flags not applied: dry=%v strict=%v verbose=%v", cfg.DryRun, cfg.StrictMode, cfg.Verbose)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
	if cfg.LogFile != "run.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestParseArgs_ExplicitTileSizeReachesValidate(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    int
		wantErr bool
	}{
		{"zero", []string{"-s", "0"}, 0, true},
		{"negative", []string{"--tile-size=-16"}, -16, true},
		{"sixteen", []string{"-s", "16"}, 16, false},
		{"absent", nil, DefaultTileSize, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			if err := ParseArgs(&cfg, tt.args, "test"); err != nil {
				t.Fatalf("ParseArgs: %v", err)
			}
			if cfg.TileSize != tt.want {
				t.Errorf("TileSize = %d, want %d", cfg.TileSize, tt.want)
			}
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseArgs_NoColorBeatsColor(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseArgs(&cfg, []string{"--color", "--no-color"}, "test"); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.ColorMode != ColorNever {
		t.Errorf("ColorMode = %q, want never", cfg.ColorMode)
	}
}

func TestParseArgs_UnknownFlag(t *testing.T) {
	cfg := DefaultConfig()
	if err := ParseArgs(&cfg, []string{"--mode", "cpu"}, "test"); err == nil {
		t.Error("expected error for unknown flag")
	}
}

func TestParseArgs_Version(t *testing.T) {
	cfg := DefaultConfig()
	var out bytes.Buffer
	exited := -1
	_ = parseArgs(&cfg, []string{"--version"}, "1.2.3", &out, func(code int) { exited = code })
	if exited != 0 {
		t.Errorf("exit code = %d, want 0", exited)
	}
	if !strings.Contains(out.String(), "mapembed v1.2.3") {
		t.Errorf("version output = %q", out.String())
	}
}

func TestParseArgs_ConfigFileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapembed.yaml")
	writeFile(t, path, `
input: world.json
tileset_dir: art/tilesets
tile_size: 16
tilesets:
  castle.tsx: castle.png
`)

	cfg := DefaultConfig()
	if err := ParseArgs(&cfg, []string{"--config", path, "--tile-size", "48"}, "test"); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.InputPath != "world.json" {
		t.Errorf("InputPath = %q, want value from file", cfg.InputPath)
	}
	if cfg.TilesetDir != "art/tilesets" {
		t.Errorf("TilesetDir = %q, want value from file", cfg.TilesetDir)
	}
	if cfg.TileSize != 48 {
		t.Errorf("TileSize = %d, want flag to win over file", cfg.TileSize)
	}
	if cfg.Tilesets["castle.tsx"] != "castle.png" {
		t.Errorf("Tilesets = %v", cfg.Tilesets)
	}
	if cfg.ConfigFile != path {
		t.Errorf("ConfigFile = %q", cfg.ConfigFile)
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "tile_sise: 16\n")
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadFile_EmptyMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "tilesets:\n  castle.tsx: \"\"\n")
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err == nil {
		t.Error("expected error for mapping with empty image")
	}
}

func TestLoadFile_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	writeFile(t, path, "")
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.TileSize != DefaultTileSize {
		t.Errorf("TileSize = %d, empty file should keep defaults", cfg.TileSize)
	}
}

func TestLoadFile_ExplicitZeroTileSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zero.yaml")
	writeFile(t, path, "tile_size: 0\n")
	cfg := DefaultConfig()
	if err := LoadFile(path, &cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.TileSize != 0 {
		t.Errorf("TileSize = %d, want the file's explicit 0", cfg.TileSize)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate should reject a zero tile size from the config file")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), &cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
