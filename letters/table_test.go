package letters

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.letters")
	defer teardown()
	//
	for _, table := range []*Table{Arabic(), ArabicV2(), Kurdish()} {
		assert.Greater(t, table.Len(), 70, "table %s too small", table.Name())
		for char, forms := range table.All() {
			assert.True(t, forms.Isolated.IsSet(), "%s: %#U has no isolated form", table.Name(), char)
			if forms.Medial.IsSet() {
				assert.True(t, forms.Initial.IsSet() && forms.Final.IsSet(),
					"%s: %#U has medial form without initial/final", table.Name(), char)
			}
		}
		assert.True(t, table.Contains(ZWJ), "%s has no entry for ZWJ", table.Name())
		assert.True(t, table.Contains(Tatweel), "%s has no entry for tatweel", table.Name())
	}
	assert.Equal(t, "Arabic", Arabic().Name())
	assert.Equal(t, "Kurdish", Kurdish().Name())
}

func TestLookupForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.letters")
	defer teardown()
	//
	arabic := Arabic()
	beh, ok := arabic.Lookup('ب')
	require.True(t, ok)
	assert.Equal(t, NewForms(0xFE8F, 0xFE91, 0xFE92, 0xFE90), beh)
	g, ok := arabic.Glyph('ب', Medial)
	assert.True(t, ok)
	assert.Equal(t, rune(0xFE92), g)
	_, ok = arabic.Glyph('ا', Initial) // alef does not connect to the left
	assert.False(t, ok)
	_, ok = arabic.Glyph('x', Isolated)
	assert.False(t, ok)
	_, ok = beh.Get(Unsupported)
	assert.False(t, ok)
	// ArabicV2 uses the plain letter as isolated form
	g, _ = ArabicV2().Glyph('ب', Isolated)
	assert.Equal(t, 'ب', g)
}

func TestJoiningPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.letters")
	defer teardown()
	//
	arabic := Arabic()
	cases := []struct {
		char                rune
		before, after, both bool
	}{
		{'ب', true, true, true},    // beh
		{'ا', true, false, false},  // alef
		{'ء', false, false, false}, // hamza
		{ZWJ, true, true, true},
		{'a', false, false, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.before, arabic.ConnectsBefore(c.char), "ConnectsBefore(%#U)", c.char)
		assert.Equal(t, c.after, arabic.ConnectsAfter(c.char), "ConnectsAfter(%#U)", c.char)
		assert.Equal(t, c.both, arabic.ConnectsBoth(c.char), "ConnectsBoth(%#U)", c.char)
	}
}

func TestNewTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.letters")
	defer teardown()
	//
	table, err := NewTable("mini", []Letter{
		{Char: 'a', Forms: NewForms('A', 0, 0, 0)},
		{Char: 'b', Forms: NewForms('B', 'b', 'ḃ', 'ḅ')},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.True(t, table.ConnectsBoth('b'))
	assert.False(t, table.ConnectsAfter('a'))
	//
	_, err = NewTable("empty", nil)
	assert.Error(t, err)
	_, err = NewTable("dup", []Letter{
		{Char: 'a', Forms: NewForms('A', 0, 0, 0)},
		{Char: 'a', Forms: NewForms('A', 0, 0, 0)},
	})
	assert.ErrorContains(t, err, "duplicate")
	_, err = NewTable("no-isolated", []Letter{
		{Char: 'a', Forms: NewForms(0, 'A', 0, 0)},
	})
	assert.ErrorContains(t, err, "isolated")
	_, err = NewTable("medial-only", []Letter{
		{Char: 'a', Forms: NewForms('A', 0, 'M', 0)},
	})
	assert.ErrorContains(t, err, "medial")
}

func TestNewTableCopiesInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.letters")
	defer teardown()
	//
	input := []Letter{{Char: 'a', Forms: NewForms('A', 0, 0, 0)}}
	table, err := NewTable("copy", input)
	require.NoError(t, err)
	input[0].Forms = NewForms('Z', 0, 0, 0)
	g, _ := table.Glyph('a', Isolated)
	assert.Equal(t, 'A', g)
}

func TestHarakat(t *testing.T) {
	for _, r := range []rune{'\u064B', '\u064E', '\u0651', '\u0652', '\u0670', '\u0610', '\u08F0'} {
		assert.True(t, IsHarakah(r), "expected %#U to be a harakah", r)
	}
	for _, r := range []rune{'\u0628', Tatweel, ZWJ, 'a', '\u06DD', '\u06E9'} {
		assert.False(t, IsHarakah(r), "expected %#U not to be a harakah", r)
	}
}

func TestGlyphZeroValue(t *testing.T) {
	var g Glyph
	assert.False(t, g.IsSet())
	assert.Equal(t, "-", g.String())
	g = G(0)
	r, ok := g.Rune()
	assert.True(t, ok, "U+0000 is a valid glyph")
	assert.Equal(t, rune(0), r)
	assert.True(t, Forms{}.IsEmpty())
	assert.Equal(t, []rune{0xFE8F, 0xFE90}, NewForms(0xFE8F, 0, 0, 0xFE90).Glyphs())
	assert.Equal(t, "medial", Medial.String())
	assert.False(t, Unshaped.Positional())
}
