/*
Package reshape converts logical-order Arabic script text into a sequence of
positional presentation glyphs.

Renderers without a complex-text shaping engine display Arabic letters in
their nominal (isolated) shape only. Package reshape selects the correct
positional form for every letter from a letter table, replaces letter
sequences by ligature glyphs, and removes or relocates diacritic marks, so
that the result may be rendered glyph by glyph:

	engine := reshape.Default()
	out := engine.Reshape("سلام دنیا") // ﺳﻼﻡ ﺩﻧﯿﺎ

Reshaping is a pure function of an [Engine]'s configuration and the input
text. It performs three steps:

  - a joining pass determines the positional form of every letter from the
    connectivity of its neighbours and collects diacritics;
  - a ligature pass (optional) substitutes enabled ligatures, trying table
    entries in priority order;
  - an assembly step concatenates glyphs and re-inserts diacritics.

Bidirectional reordering and Unicode normalization are not part of this
package; clients have to apply them (if at all) before or after reshaping.

# Concurrency

An Engine may be used concurrently for reshaping. [Engine.ModifyConfig]
requires exclusive access; synchronizing readers and writers is the
responsibility of the client.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package reshape

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer returns a trace sink for the reshape package namespace.
func tracer() tracing.Trace {
	return tracing.Select("arshape.reshape")
}

// errReshape wraps a message as a user-facing configuration error.
func errReshape(format string, args ...any) error {
	return fmt.Errorf("Arabic reshaping: %s", fmt.Sprintf(format, args...))
}

// assert panics when condition is false.
func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
