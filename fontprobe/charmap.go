package fontprobe

import (
	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// CharMap tells which characters a font has glyphs for.
//
// Implementations need not be safe for concurrent use.
type CharMap interface {
	HasGlyph(r rune) bool
}

// CharMapFunc adapts a function to the CharMap interface.
type CharMapFunc func(r rune) bool

// HasGlyph calls f(r).
func (f CharMapFunc) HasGlyph(r rune) bool {
	return f(r)
}

// SFNT wraps the character map of a font parsed by golang.org/x/image.
func SFNT(f *sfnt.Font) CharMap {
	if f == nil {
		return nil
	}
	return &sfntCharMap{font: f}
}

type sfntCharMap struct {
	font *sfnt.Font
	buf  sfnt.Buffer
}

func (cm *sfntCharMap) HasGlyph(r rune) bool {
	gid, err := cm.font.GlyphIndex(&cm.buf, r)
	return err == nil && gid != 0
}

// Face wraps the character map of a go-text typesetting face.
func Face(face *font.Face) CharMap {
	if face == nil {
		return nil
	}
	return faceCharMap{face: face}
}

type faceCharMap struct {
	face *font.Face
}

func (cm faceCharMap) HasGlyph(r rune) bool {
	_, ok := cm.face.NominalGlyph(r)
	return ok
}
