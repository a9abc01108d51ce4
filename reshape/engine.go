package reshape

import (
	"fmt"
	"iter"
	"strings"

	"github.com/npillmayer/arshape/letters"
)

// Engine reshapes text according to a configuration.
//
// An engine holds a copy of its configuration together with the letter table
// resolved for the configured language. Apart from that it is stateless;
// nothing is kept between calls.
type Engine struct {
	config Config
	table  *letters.Table
}

// New creates an engine for a configuration. The configuration is copied.
func New(config Config) *Engine {
	return &Engine{
		config: config,
		table:  config.letterTable(),
	}
}

// Default creates an engine with [DefaultConfig].
func Default() *Engine {
	return New(DefaultConfig())
}

// Config returns a copy of the engine's configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Table returns the letter table in use.
func (e *Engine) Table() *letters.Table {
	return e.table
}

// ModifyConfig applies changes to the engine's configuration. If the language
// (or the custom letter table) changes, the engine switches letter tables.
//
// This is the only way to change the configuration of an existing engine.
// It must not be called concurrently with any other method of e.
func (e *Engine) ModifyConfig(modify func(*Config)) {
	lang, custom := e.config.Language, e.config.CustomTable
	modify(&e.config)
	if e.config.Language != lang || e.config.CustomTable != custom {
		e.table = e.config.letterTable()
		tracer().Debugf("language changed from %s to %s, using letter table %q",
			lang, e.config.Language, e.table.Name())
	}
}

// NeedsReshape is true if text contains at least one character of the
// engine's letter table.
func (e *Engine) NeedsReshape(text string) bool {
	for _, c := range text {
		if e.table.Contains(c) {
			return true
		}
	}
	return false
}

// Reshape converts text to presentation forms. Characters which are not part
// of the letter table are copied unchanged, as are bytes of invalid UTF-8.
// An invalid byte breaks joining like any other unsupported character.
func (e *Engine) Reshape(text string) string {
	if text == "" {
		return ""
	}
	r := e.resolveJoining(text)
	if e.config.SupportLigatures {
		e.substituteLigatures(r, text)
	}
	return e.assemble(r, len(text))
}

// ReshapeLines reshapes every line, keeping order.
func (e *Engine) ReshapeLines(lines []string) []string {
	result := make([]string, len(lines))
	for i, line := range lines {
		result[i] = e.Reshape(line)
	}
	return result
}

// Lines wraps a sequence of strings, reshaping each of them on the fly.
func (e *Engine) Lines(lines iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines {
			if !yield(e.Reshape(line)) {
				return
			}
		}
	}
}

// assemble concatenates the glyphs of a run and inserts the diacritics
// behind the symbol they are anchored to.
func (e *Engine) assemble(r *run, size int) string {
	var sb strings.Builder
	sb.Grow(size)
	writeMarks(&sb, r.harakat[-1])
	for i, sym := range r.symbols {
		switch {
		case sym.raw:
			sb.WriteByte(byte(sym.char))
		case !sym.blank:
			sb.WriteRune(e.glyph(sym))
		}
		writeMarks(&sb, r.harakat[i])
	}
	return sb.String()
}

func writeMarks(sb *strings.Builder, marks []rune) {
	for _, m := range marks {
		sb.WriteRune(m)
	}
}

// glyph returns the output character for a symbol. Unsupported and unshaped
// symbols are emitted as they are; every other symbol must have a glyph in
// the letter table.
func (e *Engine) glyph(sym symbol) rune {
	if !sym.form.Positional() {
		return sym.char
	}
	g, ok := e.table.Glyph(sym.char, sym.form)
	assert(ok, fmt.Sprintf("letter table %q is inconsistent: no %s form for %#U",
		e.table.Name(), sym.form, sym.char))
	return g
}
