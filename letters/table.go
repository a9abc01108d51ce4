package letters

import (
	"iter"
	"unicode"
)

// Special characters which take part in joining but are not letters.
const (
	Tatweel = '\u0640' // elongation character, may be stripped
	ZWJ     = '\u200d' // zero width joiner, forces joining of its neighbours
)

// harakat covers the Arabic combining marks. They never take part in joining.
var harakat = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0610, Hi: 0x061a, Stride: 1},
		{Lo: 0x064b, Hi: 0x065f, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06d6, Hi: 0x06dc, Stride: 1},
		{Lo: 0x06df, Hi: 0x06e8, Stride: 1},
		{Lo: 0x06ea, Hi: 0x06ed, Stride: 1},
		{Lo: 0x08d4, Hi: 0x08ff, Stride: 1},
	},
}

// IsHarakah is true for Arabic diacritic marks (harakat, tashkeel).
func IsHarakah(r rune) bool {
	return unicode.Is(harakat, r)
}

// Letter is a table entry: a character and its positional glyphs.
type Letter struct {
	Char  rune
	Forms Forms
}

// l is a shorthand for table literals; 0 denotes an absent form.
func l(char, isolated, initial, medial, final rune) Letter {
	return Letter{Char: char, Forms: NewForms(isolated, initial, medial, final)}
}

// Table is an immutable letter table for one language variant.
//
// Lookups are indexed by character. A *Table is a shared handle; it is never
// modified after construction and is safe for concurrent use.
type Table struct {
	name    string
	letters []Letter
	index   map[rune]int
}

// NewTable creates a letter table from a list of letters. The list is copied.
//
// Every letter must at least have an isolated form and no character may be
// listed twice. A letter with a medial form must have initial and final forms
// as well, as the joining pass may select either of them.
func NewTable(name string, letters []Letter) (*Table, error) {
	t, err := newTable(name, letters)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("created letter table %q with %d letters", name, len(t.letters))
	return t, nil
}

func newTable(name string, letters []Letter) (*Table, error) {
	if len(letters) == 0 {
		return nil, errTable(name, "no letters")
	}
	t := &Table{
		name:    name,
		letters: make([]Letter, len(letters)),
		index:   make(map[rune]int, len(letters)),
	}
	copy(t.letters, letters)
	for i, letter := range t.letters {
		if _, dup := t.index[letter.Char]; dup {
			return nil, errTable(name, "duplicate entry for %#U", letter.Char)
		}
		if !letter.Forms.Isolated.IsSet() {
			return nil, errTable(name, "letter %#U has no isolated form", letter.Char)
		}
		if letter.Forms.Medial.IsSet() && !(letter.Forms.Initial.IsSet() && letter.Forms.Final.IsSet()) {
			return nil, errTable(name, "letter %#U has a medial form but lacks initial or final form", letter.Char)
		}
		t.index[letter.Char] = i
	}
	return t, nil
}

func mustTable(name string, letters []Letter) *Table {
	t, err := newTable(name, letters)
	if err != nil {
		panic(err)
	}
	return t
}

var (
	arabicTable   = mustTable("Arabic", arabicLetters)
	arabicV2Table = mustTable("ArabicV2", arabicV2Letters)
	kurdishTable  = mustTable("Kurdish", kurdishLetters)
)

// Arabic returns the default table, recommended for most fonts.
func Arabic() *Table { return arabicTable }

// ArabicV2 returns a variant of the Arabic table for fonts which lack some
// of the Persian presentation forms.
func ArabicV2() *Table { return arabicV2Table }

// Kurdish returns a table for Kurdish text (Sorani), usable with both
// Unicode and classic Arabic-Kurdish keyboard input.
func Kurdish() *Table { return kurdishTable }

// Name returns the name the table has been created with.
func (t *Table) Name() string {
	return t.name
}

// Len returns the number of letters in the table.
func (t *Table) Len() int {
	return len(t.letters)
}

// Contains is true if r is a key of the table.
func (t *Table) Contains(r rune) bool {
	_, ok := t.index[r]
	return ok
}

// Lookup returns the positional glyphs of r.
func (t *Table) Lookup(r rune) (Forms, bool) {
	i, ok := t.index[r]
	if !ok {
		return Forms{}, false
	}
	return t.letters[i].Forms, true
}

// Glyph returns the glyph of r for a positional form.
func (t *Table) Glyph(r rune, form Form) (rune, bool) {
	forms, ok := t.Lookup(r)
	if !ok {
		return 0, false
	}
	return forms.Get(form)
}

// ConnectsBefore is true if r is able to connect to a preceding letter,
// i.e. it has a final or a medial form.
func (t *Table) ConnectsBefore(r rune) bool {
	forms, ok := t.Lookup(r)
	return ok && (forms.Final.IsSet() || forms.Medial.IsSet())
}

// ConnectsAfter is true if r is able to connect to a following letter,
// i.e. it has an initial or a medial form.
func (t *Table) ConnectsAfter(r rune) bool {
	forms, ok := t.Lookup(r)
	return ok && (forms.Initial.IsSet() || forms.Medial.IsSet())
}

// ConnectsBoth is true if r may be connected on both sides at once.
func (t *Table) ConnectsBoth(r rune) bool {
	forms, ok := t.Lookup(r)
	return ok && forms.Medial.IsSet()
}

// All iterates over the letters of the table in table order.
func (t *Table) All() iter.Seq2[rune, Forms] {
	return func(yield func(rune, Forms) bool) {
		for _, letter := range t.letters {
			if !yield(letter.Char, letter.Forms) {
				return
			}
		}
	}
}
