package letters

import "fmt"

// Form is the positional form tag of a letter within a connected run.
//
// Isolated, Initial, Medial and Final select a glyph from a letter's [Forms].
// Unsupported marks characters which are not covered by a table (or which
// must not join any more, such as substituted ligatures); they are emitted
// unchanged. Unshaped is used instead of Isolated if a client asks for the
// original character in place of a dedicated isolated glyph.
type Form uint8

const (
	Isolated Form = iota
	Initial
	Medial
	Final
	Unsupported
	Unshaped
)

var formNames = [...]string{"isolated", "initial", "medial", "final", "unsupported", "unshaped"}

func (f Form) String() string {
	if int(f) < len(formNames) {
		return formNames[f]
	}
	return fmt.Sprintf("Form(%d)", uint8(f))
}

// Positional is true for the four forms which select a table glyph.
func (f Form) Positional() bool {
	return f <= Final
}

// Glyph is an optional presentation glyph.
//
// The zero value means "no such form". This is distinct from any rune value,
// including U+0000, so zero-width outputs of a table remain unambiguous.
type Glyph struct {
	r   rune
	set bool
}

// G creates a glyph slot holding r.
func G(r rune) Glyph {
	return Glyph{r: r, set: true}
}

// Rune returns the glyph's code-point, if present.
func (g Glyph) Rune() (rune, bool) {
	return g.r, g.set
}

// IsSet is true if the glyph slot is occupied.
func (g Glyph) IsSet() bool {
	return g.set
}

func (g Glyph) String() string {
	if !g.set {
		return "-"
	}
	return fmt.Sprintf("%#U", g.r)
}

// Forms is the quadruple of positional glyphs of a letter or ligature.
type Forms struct {
	Isolated Glyph
	Initial  Glyph
	Medial   Glyph
	Final    Glyph
}

// Get returns the glyph for a positional form. For the non-positional tags
// Unsupported and Unshaped it always reports false.
func (f Forms) Get(form Form) (rune, bool) {
	switch form {
	case Isolated:
		return f.Isolated.Rune()
	case Initial:
		return f.Initial.Rune()
	case Medial:
		return f.Medial.Rune()
	case Final:
		return f.Final.Rune()
	}
	return 0, false
}

// Glyphs returns the present glyphs in form order.
func (f Forms) Glyphs() []rune {
	glyphs := make([]rune, 0, 4)
	for _, g := range [...]Glyph{f.Isolated, f.Initial, f.Medial, f.Final} {
		if r, ok := g.Rune(); ok {
			glyphs = append(glyphs, r)
		}
	}
	return glyphs
}

// IsEmpty is true if no form is present at all.
func (f Forms) IsEmpty() bool {
	return !f.Isolated.set && !f.Initial.set && !f.Medial.set && !f.Final.set
}

func (f Forms) String() string {
	return fmt.Sprintf("[%v %v %v %v]", f.Isolated, f.Initial, f.Medial, f.Final)
}

// NewForms creates a Forms quadruple from code-points, where a 0 argument
// denotes an absent form. It is a shorthand for writing tables.
func NewForms(isolated, initial, medial, final rune) Forms {
	return Forms{
		Isolated: optional(isolated),
		Initial:  optional(initial),
		Medial:   optional(medial),
		Final:    optional(final),
	}
}

func optional(r rune) Glyph {
	if r == 0 {
		return Glyph{}
	}
	return G(r)
}
