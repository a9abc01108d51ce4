/*
Package arshape prepares Arabic script text for renderers without a complex
text shaping engine.

Text in joining scripts is stored in logical order, one code-point per
letter, regardless of the shape a letter takes. Package arshape replaces
letters by their positional presentation forms (isolated, initial, medial,
final), substitutes ligatures and handles diacritics, so that a simple
renderer may draw the result glyph by glyph.

The work is done by package reshape; this package offers shortcuts for the
common case of reshaping with the default configuration. Clients reshaping
larger amounts of text, or needing a different configuration, should create
a [reshape.Engine] once and use it directly. Package fontprobe derives a
configuration from the capabilities of a font.

Supported are Arabic (with its Persian and Urdu letters) and Kurdish. Clients
may supply letter tables for other variants.

# Status

Bidirectional reordering is not done here. Renderers which draw glyphs
left-to-right have to reverse the output, and should enable
Config.ShiftHarakatPosition to keep diacritics attached to the right letter.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package arshape

import (
	"github.com/npillmayer/arshape/reshape"
)

// ReshapeLine reshapes one line of text with the default configuration.
//
// It creates a new engine for every call; for a large number of lines,
// create a [reshape.Engine] and re-use it instead.
func ReshapeLine(text string) string {
	return reshape.Default().Reshape(text)
}

// ReshapeLines reshapes lines of text with the default configuration,
// keeping their order.
func ReshapeLines(lines []string) []string {
	return reshape.Default().ReshapeLines(lines)
}

// NeedsReshape is true if text contains characters of the default (Arabic)
// letter table.
func NeedsReshape(text string) bool {
	return reshape.Default().NeedsReshape(text)
}
