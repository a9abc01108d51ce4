/*
Package fontprobe derives a reshaping configuration from a font.

Many fonts cover the Arabic letters, but only a part of the Arabic
presentation forms, and only very few of the ligature glyphs. Package
fontprobe inspects the character map of a font and switches off everything
the font cannot display: if an isolated form is missing, letters without
neighbours are emitted unshaped; a ligature is enabled only if the font has
a glyph for each of its positional forms.

Fonts are accessed through the [CharMap] interface. Adapters exist for fonts
parsed with golang.org/x/image/font/sfnt and github.com/go-text/typesetting.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontprobe

import (
	"fmt"

	"github.com/npillmayer/arshape/internal/fontload"
	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/arshape/reshape"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'arshape.fonts'
func tracer() tracing.Trace {
	return tracing.Select("arshape.fonts")
}

// Probe creates a configuration for a language, with the ligatures of the
// given groups, restricted to what a font supports.
//
// A nil CharMap stands for a font without a usable character map. Then no
// presentation form can be relied upon: letters are left unshaped and all
// ligatures are disabled.
func Probe(cm CharMap, lang reshape.Language, groups reshape.LigatureGroups) reshape.Config {
	return ProbeConfig(cm, reshape.NewConfig(lang, groups), groups)
}

// ProbeConfig restricts an existing configuration to what a font supports.
// The ligatures of the given groups are re-evaluated against the font; all
// other settings of base are kept.
func ProbeConfig(cm CharMap, base reshape.Config, groups reshape.LigatureGroups) reshape.Config {
	config := base
	if cm == nil {
		tracer().Infof("font has no character map, disabling shaping and ligatures")
		config.UseUnshapedInsteadOfIsolated = true
		config.Ligatures = reshape.LigatureSet{}
		config.SupportLigatures = false
		return config
	}
	table := reshape.New(config).Table()
	if missing := MissingIsolated(cm, table); len(missing) > 0 {
		tracer().Infof("font misses %d isolated forms (first %#U), using unshaped letters",
			len(missing), missing[0])
		config.UseUnshapedInsteadOfIsolated = true
	}
	for _, tier := range groups.Tiers() {
		lo, hi := tier.Range()
		for id := lo; id < hi; id++ {
			config.Ligatures.Set(id, Supports(cm, ligatures.Get(id).Forms))
		}
	}
	config.SupportLigatures = config.Ligatures.Any()
	tracer().Debugf("font supports %d ligatures", len(config.Ligatures.IDs()))
	return config
}

// Restrict disables everything in a configuration that a font cannot
// display. Unlike ProbeConfig it never enables a ligature.
func Restrict(cm CharMap, config reshape.Config) reshape.Config {
	restricted := ProbeConfig(cm, config, reshape.NoLigatures)
	if cm == nil {
		return restricted
	}
	for _, id := range restricted.Ligatures.IDs() {
		if !Supports(cm, ligatures.Get(id).Forms) {
			restricted.Ligatures.Set(id, false)
		}
	}
	restricted.SupportLigatures = config.SupportLigatures && restricted.Ligatures.Any()
	return restricted
}

// MissingIsolated returns the letters of a table for which a font has no
// isolated form glyph.
func MissingIsolated(cm CharMap, table *letters.Table) []rune {
	var missing []rune
	for char, forms := range table.All() {
		if g, ok := forms.Isolated.Rune(); ok && !cm.HasGlyph(g) {
			missing = append(missing, char)
		}
	}
	return missing
}

// Supports is true if a font has glyphs for all present forms of a
// letter or ligature. Forms without any glyph are never supported.
func Supports(cm CharMap, forms letters.Forms) bool {
	glyphs := forms.Glyphs()
	if len(glyphs) == 0 {
		return false
	}
	for _, g := range glyphs {
		if !cm.HasGlyph(g) {
			return false
		}
	}
	return true
}

// --- Loading fonts ---------------------------------------------------------

// Backend selects the font parser.
type Backend int

const (
	BackendSFNT        Backend = iota // golang.org/x/image/font/sfnt
	BackendTypesetting                // github.com/go-text/typesetting
)

// Params control probing of font files.
type Params struct {
	Language  reshape.Language
	Ligatures reshape.LigatureGroups
	Backend   Backend
}

// FromBinary parses a font (TTF or OTF) and probes it.
func FromBinary(data []byte, params Params) (reshape.Config, error) {
	cm, err := Open(data, params.Backend)
	if err != nil {
		return reshape.Config{}, err
	}
	return Probe(cm, params.Language, params.Ligatures), nil
}

// FromFile loads a font file (TTF or OTF) and probes it.
func FromFile(path string, params Params) (reshape.Config, error) {
	cm, err := OpenFile(path, params.Backend)
	if err != nil {
		return reshape.Config{}, err
	}
	return Probe(cm, params.Language, params.Ligatures), nil
}

// Open parses a font (TTF or OTF) and returns its character map.
func Open(data []byte, backend Backend) (CharMap, error) {
	f, err := fontload.ParseOpenTypeFont(data)
	if err != nil {
		return nil, fmt.Errorf("font probing: %w", err)
	}
	return charMap(f, backend)
}

// OpenFile loads a font file (TTF or OTF) and returns its character map.
func OpenFile(path string, backend Backend) (CharMap, error) {
	f, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		return nil, fmt.Errorf("font probing: %w", err)
	}
	return charMap(f, backend)
}

func charMap(f *fontload.ScalableFont, backend Backend) (CharMap, error) {
	tracer().Infof("probing font %q", f.Fontname)
	switch backend {
	case BackendTypesetting:
		face, err := f.Face()
		if err != nil {
			return nil, fmt.Errorf("font probing: %w", err)
		}
		return Face(face), nil
	case BackendSFNT:
		return SFNT(f.SFNT), nil
	}
	return nil, fmt.Errorf("font probing: unknown backend %d", backend)
}

// ParseBackend resolves a backend name, "sfnt" or "typesetting".
func ParseBackend(name string) (Backend, error) {
	switch name {
	case "sfnt", "":
		return BackendSFNT, nil
	case "typesetting", "go-text":
		return BackendTypesetting, nil
	}
	return BackendSFNT, fmt.Errorf("unknown font backend %q", name)
}
