package reshape

import (
	"testing"

	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.Equal(t, Arabic, c.Language)
	require.True(t, c.DeleteHarakat)
	require.True(t, c.SupportZWJ)
	require.True(t, c.SupportLigatures)
	require.False(t, c.ShiftHarakatPosition || c.DeleteTatweel || c.UseUnshapedInsteadOfIsolated)
	require.Equal(t, []ligatures.ID{
		ligatures.Allah,
		ligatures.LamWithAlef,
		ligatures.LamWithAlefWithHamzaAbove,
		ligatures.LamWithAlefWithHamzaBelow,
		ligatures.LamWithAlefWithMaddaAbove,
	}, c.Ligatures.IDs())
}

func TestNewConfigGroups(t *testing.T) {
	c := NewConfig(Kurdish, NoLigatures)
	require.Equal(t, Kurdish, c.Language)
	require.False(t, c.SupportLigatures)
	require.False(t, c.Ligatures.Any())
	//
	c = NewConfig(Arabic, WordLigatures)
	require.True(t, c.SupportLigatures)
	require.True(t, c.LigatureEnabled(ligatures.Allah))
	require.True(t, c.LigatureEnabled(ligatures.RialSign))
	require.False(t, c.LigatureEnabled(ligatures.LamWithAlef))
	require.False(t, c.LigatureEnabled(ligatures.BismillahArRahmanArRaheem))
	//
	c = NewConfig(Arabic, AllLigatures)
	require.Len(t, c.Ligatures.IDs(), ligatures.Count)
	require.Len(t, (SentenceLigatures | LetterLigatures).Tiers(), 2)
}

func TestUpdateLigature(t *testing.T) {
	c := DefaultConfig()
	for _, id := range c.Ligatures.IDs() {
		c.UpdateLigature(id, false)
	}
	require.False(t, c.SupportLigatures, "support must be off with no ligature left")
	c.UpdateLigature(ligatures.RialSign, true)
	require.True(t, c.SupportLigatures)
	require.True(t, c.LigatureEnabled(ligatures.RialSign))
	c.UpdateLigature(ligatures.ID(-5), true) // ignored
	require.Len(t, c.Ligatures.IDs(), 1)
	c.SupportLigatures = false
	require.False(t, c.LigatureEnabled(ligatures.RialSign))
}

func TestConfigFromSource(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.reshape")
	defer teardown()
	//
	c, err := ConfigFromSource(nil)
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), c)
	c, err = ConfigFromSource(testconfig.Conf{
		KeyLanguage:      "kurdish",
		KeyDeleteHarakat: false,
		KeyShiftHarakat:  true,
		KeyLigatures:     "none,words,-allah,lam_with_alef",
	})
	require.NoError(t, err)
	require.Equal(t, Kurdish, c.Language)
	require.False(t, c.DeleteHarakat)
	require.True(t, c.ShiftHarakatPosition)
	require.True(t, c.SupportZWJ, "unset keys keep their default")
	require.False(t, c.LigatureEnabled(ligatures.Allah))
	require.True(t, c.LigatureEnabled(ligatures.RialSign))
	require.True(t, c.LigatureEnabled(ligatures.LamWithAlef))
	require.False(t, c.LigatureEnabled(ligatures.LamWithAlefWithHamzaAbove))
	//
	c, err = ConfigFromSource(testconfig.Conf{KeyLigatures: "none"})
	require.NoError(t, err)
	require.False(t, c.SupportLigatures)
	_, err = ConfigFromSource(testconfig.Conf{KeyLanguage: "klingon"})
	require.Error(t, err)
	_, err = ConfigFromSource(testconfig.Conf{KeyLigatures: "default,no-such-thing"})
	require.Error(t, err)
}

func TestParseLigaturesNegation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.reshape")
	defer teardown()
	//
	c := DefaultConfig()
	require.NoError(t, c.ParseLigatures("-allah, -letters"))
	require.False(t, c.LigatureEnabled(ligatures.Allah))
	require.False(t, c.LigatureEnabled(ligatures.LamWithAlef))
	for _, list := range []string{"-none", "-default", "words,-None"} {
		c = DefaultConfig()
		require.Error(t, c.ParseLigatures(list), list)
	}
	c = DefaultConfig()
	err := c.ParseLigatures("-none")
	require.ErrorContains(t, err, "cannot be negated")
	require.True(t, c.LigatureEnabled(ligatures.Allah), "set is left alone")
}

func TestParseLigatureGroups(t *testing.T) {
	g, err := ParseLigatureGroups("words, letters")
	require.NoError(t, err)
	require.Equal(t, WordLigatures|LetterLigatures, g)
	g, err = ParseLigatureGroups("all")
	require.NoError(t, err)
	require.Equal(t, AllLigatures, g)
	g, err = ParseLigatureGroups("none")
	require.NoError(t, err)
	require.Equal(t, NoLigatures, g)
	_, err = ParseLigatureGroups("words,phrases")
	require.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	cases := []struct {
		name string
		lang Language
		ok   bool
	}{
		{"Arabic", Arabic, true},
		{"arabicv2", ArabicV2, true},
		{"KURDISH", Kurdish, true},
		{"ar", Arabic, true},
		{"fa", Arabic, true},
		{"ur", Arabic, true},
		{"ckb", Kurdish, true},
		{"ku-Arab", Kurdish, true},
		{"en", Arabic, false},
		{"ku-Latn", Arabic, false},
		{"!!", Arabic, false},
	}
	for _, c := range cases {
		lang, err := ParseLanguage(c.name)
		if c.ok {
			require.NoError(t, err, c.name)
			require.Equal(t, c.lang, lang, c.name)
		} else {
			require.Error(t, err, c.name)
		}
	}
	lang, err := LanguageFromTag(language.Persian)
	require.NoError(t, err)
	require.Equal(t, Arabic, lang)
	require.Equal(t, "ArabicV2", ArabicV2.String())
}
