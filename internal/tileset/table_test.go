package tileset

import (
	"errors"
	"testing"
)

func TestBuiltinTable(t *testing.T) {
	tbl := NewTable(nil)
	if tbl.Len() != 18 {
		t.Errorf("built-in table has %d entries, want 18", tbl.Len())
	}
	for _, m := range tbl.Mappings() {
		if NameFor(m.Image)+".tsx" != m.Source {
			t.Errorf("built-in entry %s -> %s does not follow <name>.tsx -> <name>.png", m.Source, m.Image)
		}
	}
}

func TestResolve(t *testing.T) {
	tbl := NewTable(map[string]string{
		"castle.tsx":       "castle.png",
		"grass.tsx":        "grass-v2.png",
		"../dungeon/x.tsx": "dungeon-x.png",
	})
	tests := []struct {
		name    string
		source  string
		want    string
		wantErr bool
	}{
		{"built-in", "broken-bridge.tsx", "broken-bridge.png", false},
		{"extra entry", "castle.tsx", "castle.png", false},
		{"extra overrides built-in", "grass.tsx", "grass-v2.png", false},
		{"relative path falls back to base name", "../tilesets/stones.tsx", "stones.png", false},
		{"windows separators", `..\tilesets\weed.tsx`, "weed.png", false},
		{"exact path beats base name", "../dungeon/x.tsx", "dungeon-x.png", false},
		{"unknown", "unknown.tsx", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tbl.Resolve(tt.source)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) err = %v, wantErr %v", tt.source, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownTileset) {
				t.Errorf("err = %v, want ErrUnknownTileset", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}

func TestNewTable_DoesNotMutateBuiltin(t *testing.T) {
	_ = NewTable(map[string]string{"decor.tsx": "other.png"})
	img, err := NewTable(nil).Resolve("decor.tsx")
	if err != nil || img != "decor.png" {
		t.Errorf("built-in entry changed: %q, %v", img, err)
	}
}

func TestMappings_Sorted(t *testing.T) {
	m := NewTable(nil).Mappings()
	for i := 1; i < len(m); i++ {
		if m[i].Source < m[i-1].Source {
			t.Errorf("not sorted: %q before %q", m[i-1].Source, m[i].Source)
		}
	}
}
