package fontload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed scalable font with original bytes and SFNT view.
type ScalableFont struct {
	Fontname string
	Binary   []byte
	SFNT     *sfnt.Font
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("font %s: %w", fontfile, err)
	}
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
// The font name is optional; a font without a name table is accepted.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if name, err := f.SFNT.Name(nil, sfnt.NameIDFull); err == nil {
		f.Fontname = name
	}
	return f, nil
}

// Face parses the font binary a second time, as a go-text typesetting face.
func (f *ScalableFont) Face() (*font.Face, error) {
	return font.ParseTTF(bytes.NewReader(f.Binary))
}
