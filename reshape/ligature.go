package reshape

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
)

// matchText is the input text as seen by the ligature pass: diacritics are
// removed (and tatweel, if configured), so that every remaining character
// except ZWJ corresponds to exactly one symbol of the joining pass. Invalid
// bytes show up as U+FFFD, one per byte, just as they are symbols of their own.
type matchText struct {
	text     string
	symbolAt []int // byte offset in text → symbol index, -1 for ZWJ
}

func (e *Engine) prepareMatchText(text string) matchText {
	var sb strings.Builder
	sb.Grow(len(text))
	at := make([]int, 0, len(text))
	n := 0
	for _, c := range text {
		if letters.IsHarakah(c) || c == letters.Tatweel && e.config.DeleteTatweel {
			continue
		}
		inx := n
		if c == letters.ZWJ {
			inx = -1
		} else {
			n++
		}
		for range utf8.RuneLen(c) {
			at = append(at, inx)
		}
		sb.WriteRune(c)
	}
	return matchText{text: sb.String(), symbolAt: at}
}

// substituteLigatures is the second pass. Enabled ligatures are tried in
// table order; every pattern is matched leftmost and non-overlapping. A
// match replaces its first symbol by the ligature glyph and blanks the rest.
// If a match cannot be substituted, scanning resumes one character after
// its start.
// Spans already covered by an earlier ligature are left alone, so ligatures
// earlier in the table always win over later ones they overlap with.
func (e *Engine) substituteLigatures(r *run, text string) {
	mt := e.prepareMatchText(text)
	for id, entry := range ligatures.All() {
		if !e.config.Ligatures.Enabled(id) {
			continue
		}
		for _, pattern := range entry.Patterns {
			_, lastSize := utf8.DecodeLastRuneInString(pattern)
			for pos := 0; pos < len(mt.text); {
				k := strings.Index(mt.text[pos:], pattern)
				if k < 0 {
					break
				}
				start, end := pos+k, pos+k+len(pattern)
				a, b := mt.symbolAt[start], mt.symbolAt[end-lastSize]+1
				if a >= 0 && b > a && b <= len(r.symbols) && r.applyLigature(id, entry, a, b) {
					pos = end
					continue
				}
				// a rejected match may still overlap a valid one further right
				_, size := utf8.DecodeRuneInString(mt.text[start:])
				pos = start + size
			}
		}
	}
}

// applyLigature substitutes the symbols [a, b) by a ligature glyph. The
// positional form of the ligature follows from the forms at both ends of
// the span. If the ligature has no glyph for that position, nothing happens
// and applyLigature returns false.
func (r *run) applyLigature(id ligatures.ID, entry ligatures.Entry, a, b int) bool {
	for i := a; i < b; i++ {
		if r.symbols[i].blank || r.symbols[i].ligature {
			return false
		}
	}
	form := ligatureForm(r.symbols[a].form, r.symbols[b-1].form)
	g, ok := entry.Forms.Get(form)
	if !ok {
		tracer().Debugf("ligature %s has no %s form, skipped", id, form)
		return false
	}
	tracer().Debugf("ligature %s (%s) replaces symbols %d…%d", id, form, a, b-1)
	r.symbols[a] = symbol{char: g, form: letters.Unsupported, ligature: true}
	for i := a + 1; i < b; i++ {
		r.symbols[i] = symbol{form: letters.Unsupported, blank: true}
	}
	return true
}

// ligatureForm classifies a span by the forms of its first and last symbol:
//
//	first \ last        | isolated, final | initial, medial
//	--------------------+-----------------+----------------
//	isolated, initial   | isolated        | initial
//	medial, final       | final           | medial
//
// Unshaped counts as isolated.
func ligatureForm(first, last letters.Form) letters.Form {
	isolated := func(f letters.Form) bool {
		return f == letters.Isolated || f == letters.Unshaped
	}
	opens := isolated(first) || first == letters.Initial
	closes := isolated(last) || last == letters.Final
	switch {
	case opens && closes:
		return letters.Isolated
	case opens:
		return letters.Initial
	case closes:
		return letters.Final
	}
	return letters.Medial
}
