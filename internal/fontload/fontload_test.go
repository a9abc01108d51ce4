package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestParseOpenTypeFont(t *testing.T) {
	f, err := ParseOpenTypeFont(goregular.TTF)
	if err != nil {
		t.Fatalf("cannot parse Go Regular: %v", err)
	}
	if f.Fontname != "Go Regular" {
		t.Errorf("expected font name 'Go Regular', is %q", f.Fontname)
	}
	face, err := f.Face()
	if err != nil {
		t.Fatalf("cannot create typesetting face: %v", err)
	}
	if _, ok := face.NominalGlyph('A'); !ok {
		t.Errorf("expected Go Regular to have a glyph for 'A'")
	}
}

func TestLoadOpenTypeFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "go.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOpenTypeFont(path); err != nil {
		t.Errorf("cannot load font from %s: %v", path, err)
	}
	if _, err := LoadOpenTypeFont(filepath.Join(t.TempDir(), "none.ttf")); err == nil {
		t.Errorf("expected error for missing font file")
	}
	bad := filepath.Join(t.TempDir(), "bad.ttf")
	os.WriteFile(bad, []byte("garbage"), 0o644)
	if _, err := LoadOpenTypeFont(bad); err == nil {
		t.Errorf("expected error for broken font file")
	}
}
