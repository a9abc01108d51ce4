/*
Package letters holds the positional glyph tables for joining scripts.

A letter table maps a character in logical order to up to four presentation
glyphs, one per positional form (isolated, initial, medial, final). A form
which is not present means that the letter does not connect to that side.
Tables are immutable once constructed and may be shared freely between
goroutines.

Three tables are built in: Arabic (recommended for most fonts), ArabicV2 (for
fonts which lack some of the Persian presentation forms) and Kurdish. Clients
may construct custom tables with [NewTable].

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package letters

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'arshape.letters'
func tracer() tracing.Trace {
	return tracing.Select("arshape.letters")
}

// errTable wraps a message as a letter table construction error.
func errTable(name string, format string, args ...any) error {
	return fmt.Errorf("letter table %q: %s", name, fmt.Sprintf(format, args...))
}
