package reshape

import (
	"unicode/utf8"

	"github.com/npillmayer/arshape/letters"
)

// symbol is a character of the input together with its resolved form.
// Blank symbols have been absorbed by a ligature and produce no output.
type symbol struct {
	char     rune
	form     letters.Form
	blank    bool
	ligature bool // char is a ligature glyph
	raw      bool // char is a byte of invalid UTF-8
}

// run is the intermediate result of reshaping one piece of text.
//
// Diacritics are kept apart from the symbols, in buckets keyed by the index
// of the symbol they follow. Bucket -1 holds marks to be emitted before the
// first symbol.
type run struct {
	symbols []symbol
	harakat map[int][]rune
}

func (r *run) push(c rune, form letters.Form) {
	r.symbols = append(r.symbols, symbol{char: c, form: form})
}

func (r *run) last() *symbol {
	return &r.symbols[len(r.symbols)-1]
}

// addHarakah anchors a diacritic at the last symbol. With shifting, the mark
// is anchored one symbol earlier and marks sharing an anchor are stacked in
// reverse order.
func (r *run) addHarakah(c rune, shift bool) {
	anchor := len(r.symbols) - 1
	if shift {
		anchor = max(anchor-1, -1)
		r.harakat[anchor] = append([]rune{c}, r.harakat[anchor]...)
		return
	}
	r.harakat[anchor] = append(r.harakat[anchor], c)
}

// dropZWJ removes the symbol at position i if it is a ZWJ. Diacritics
// anchored at the ZWJ move to its predecessor.
func (r *run) dropZWJ(i int) {
	if i < 0 || i >= len(r.symbols) || r.symbols[i].char != letters.ZWJ {
		return
	}
	r.symbols = append(r.symbols[:i], r.symbols[i+1:]...)
	if marks, ok := r.harakat[i]; ok {
		delete(r.harakat, i)
		r.harakat[i-1] = append(r.harakat[i-1], marks...)
	}
}

// resolveJoining is the first pass: it determines the positional form of
// every letter and collects diacritics.
//
// A letter joins its predecessor if both are able to connect towards each
// other and the predecessor is not already at the end of a run it cannot
// continue. Joining promotes the predecessor to initial (if it was isolated)
// or medial form and puts the current letter in final form.
func (e *Engine) resolveJoining(text string) *run {
	conf := &e.config
	isolated := conf.isolatedForm()
	r := &run{
		symbols: make([]symbol, 0, utf8.RuneCountInString(text)),
		harakat: make(map[int][]rune),
	}
	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case c == utf8.RuneError && size == 1:
			r.symbols = append(r.symbols, symbol{char: rune(text[i]), form: letters.Unsupported, raw: true})
		case letters.IsHarakah(c):
			if !conf.DeleteHarakat {
				r.addHarakah(c, conf.ShiftHarakatPosition)
			}
		case c == letters.Tatweel && conf.DeleteTatweel:
		case c == letters.ZWJ && !conf.SupportZWJ:
		case !e.table.Contains(c):
			r.push(c, letters.Unsupported)
		case len(r.symbols) == 0:
			r.push(c, isolated)
		default:
			prev := r.last()
			if !e.joins(*prev, c) {
				r.push(c, isolated)
				break
			}
			if prev.form == isolated {
				prev.form = letters.Initial
			} else {
				prev.form = letters.Medial
			}
			r.push(c, letters.Final)
		}
		// a ZWJ has done its job as soon as its successor has been placed
		if conf.SupportZWJ {
			r.dropZWJ(len(r.symbols) - 2)
		}
		i += size
	}
	if conf.SupportZWJ {
		r.dropZWJ(len(r.symbols) - 1)
	}
	return r
}

// joins is true if letter c connects to the preceding symbol prev.
func (e *Engine) joins(prev symbol, c rune) bool {
	switch {
	case prev.form == letters.Unsupported:
		return false
	case !e.table.ConnectsBefore(c):
		return false
	case !e.table.ConnectsAfter(prev.char):
		return false
	case prev.form == letters.Final && !e.table.ConnectsBoth(prev.char):
		return false
	}
	return true
}
