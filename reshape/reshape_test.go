package reshape

import (
	"slices"
	"testing"

	"github.com/npillmayer/arshape/letters"
	"github.com/npillmayer/arshape/ligatures"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ReshapeTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestReshapeFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arshape.reshape")
	defer teardown()
	suite.Run(t, new(ReshapeTestEnviron))
}

// run once, before test suite methods
func (env *ReshapeTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("arshape.reshape").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *ReshapeTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *ReshapeTestEnviron) TestNeedsReshape() {
	e := Default()
	env.True(e.NeedsReshape("سلام"))
	env.True(e.NeedsReshape("خوبی؟"))
	env.False(e.NeedsReshape("Yeah, Im good"))
	env.False(e.NeedsReshape("How about you?"))
	env.False(e.NeedsReshape(""))
}

func (env *ReshapeTestEnviron) TestEmptyAndPassthrough() {
	e := Default()
	env.Equal("", e.Reshape(""))
	env.Equal("Hello, World! 123", e.Reshape("Hello, World! 123"))
	env.Equal("abc ﺏ", e.Reshape("abc ب"))
}

func (env *ReshapeTestEnviron) TestDefaultCorpora() {
	env.runCorpus(Default(), kurdishDefaultCorpus)
	env.runCorpus(Default(), arabicCorpus)
}

func (env *ReshapeTestEnviron) TestKeepingHarakat() {
	e := Default()
	e.ModifyConfig(func(c *Config) {
		c.DeleteHarakat = false
	})
	env.runCorpus(e, persianWithHarakatCorpus)
	env.runCorpus(e, arabicWithHarakatCorpus)
}

func (env *ReshapeTestEnviron) TestHarakatWithoutLigatures() {
	config := DefaultConfig()
	config.DeleteHarakat = false
	config.SupportLigatures = false
	env.runCorpus(New(config), arabicWithoutLigaturesCorpus)
}

func (env *ReshapeTestEnviron) TestShiftedHarakat() {
	config := DefaultConfig()
	config.DeleteHarakat = false
	config.SupportLigatures = false
	config.ShiftHarakatPosition = true
	e := New(config)
	env.runCorpus(e, shiftedHarakatCorpus)
	// feh damma ain shadda kasra lam fatha
	env.Equal("ُﻓِّﻌَﻞ",
		e.Reshape("فُعِّلَ"))
	// a mark before any letter stays in front
	env.Equal("َﺏ", e.Reshape("َب"))
}

func (env *ReshapeTestEnviron) TestZWJ() {
	const (
		beh   = "ب"
		alef  = "ا"
		hamza = "ء"
		zwj   = "\u200d"
	)
	const (
		behIsolated   = "ﺏ"
		behInitial    = "ﺑ"
		behMedial     = "ﺒ"
		behFinal      = "ﺐ"
		alefFinal     = "ﺎ"
		hamzaIsolated = "ﺀ"
	)
	cases := []corpusCase{
		{beh + hamza, behIsolated + hamzaIsolated},
		{zwj + beh + hamza, behFinal + hamzaIsolated},
		{zwj + beh, behFinal},
		{beh + zwj, behInitial},
		{zwj + beh + zwj, behMedial},
		{beh + zwj + hamza, behInitial + hamzaIsolated},
		{beh + alef, behInitial + alefFinal},
		{beh + zwj + alef, behInitial + alefFinal},
		{beh + zwj + alef + zwj, behInitial + alefFinal},
		{beh + alef + beh, behInitial + alefFinal + behIsolated},
		{beh + zwj + alef + zwj + beh, behInitial + alefFinal + behFinal},
		{beh + zwj + hamza + beh, behInitial + hamzaIsolated + behIsolated},
		{beh + zwj + hamza + zwj + beh, behInitial + hamzaIsolated + behFinal},
	}
	env.runCorpus(Default(), cases)
	// without ZWJ support, joiners are dropped and do not join
	e := Default()
	e.ModifyConfig(func(c *Config) {
		c.SupportZWJ = false
	})
	env.Equal(behIsolated, e.Reshape(beh+zwj))
	// a joiner breaks a ligature match
	env.Equal("ﻟ"+alefFinal, Default().Reshape("ل"+zwj+alef))
}

func (env *ReshapeTestEnviron) TestHarakahOnZWJ() {
	e := Default()
	e.ModifyConfig(func(c *Config) {
		c.DeleteHarakat = false
	})
	env.Equal("ﺑَﺐ", e.Reshape("ب\u200dَب"))
}

func (env *ReshapeTestEnviron) TestTatweel() {
	in := "بـب"
	env.Equal("ﺑـﺐ", Default().Reshape(in))
	config := DefaultConfig()
	config.DeleteTatweel = true
	env.Equal("ﺑﺐ", New(config).Reshape(in))
}

func (env *ReshapeTestEnviron) TestInvalidUTF8() {
	e := Default()
	env.Equal("a\xffb", e.Reshape("a\xffb"))
	env.Equal("\xe2\x80", e.Reshape("\xe2\x80"))
	// an invalid byte breaks joining
	env.Equal("\uFE8F\xff\uFE8F", e.Reshape("\u0628\xff\u0628"))
	env.Equal("\uFE91\xff", e.Reshape("\u0628\u200d\xff"))
	env.Equal("\xff\u064E", e.Reshape("\xff\u064E"))
	env.Equal("\xffﷲ\xfe", e.Reshape("\xffالله\xfe"))
}

func (env *ReshapeTestEnviron) TestUnshaped() {
	config := DefaultConfig()
	config.UseUnshapedInsteadOfIsolated = true
	e := New(config)
	env.Equal("ب ا", e.Reshape("ب ا"))
	env.Equal("ﺑﺎ", e.Reshape("با"))
	// ligatures still match letters left unshaped
	env.Equal("ﷲ", e.Reshape("الله"))
}

func (env *ReshapeTestEnviron) TestLigatures() {
	allah := "الله"
	env.Equal("ﷲ", Default().Reshape(allah))
	config := DefaultConfig()
	config.SupportLigatures = false
	env.Equal("ﺍﻟﻠﻪ", New(config).Reshape(allah))
	//
	e := New(NewConfig(Arabic, AllLigatures))
	env.Equal("ﷲ ﷳ", e.Reshape(allah+" أكبر"))
	env.Equal("﷽", e.Reshape("بسم الله الرحمن الرحيم"))
	env.Equal("﷼", e.Reshape("ریال"))
	env.Equal("﷼", e.Reshape("ريال"))
	// letter ligatures take the positional form of their span
	env.Equal("ﺍﻟﺴﻼﻡ ﻋﻠﻴﲂ",
		e.Reshape("السلام عليكم"))
}

func (env *ReshapeTestEnviron) TestLigaturePrecedence() {
	// "Allah" comes before Lam-Heh in the table and must win
	e := New(NewConfig(Arabic, WordLigatures|LetterLigatures))
	env.Equal("ﷲ", e.Reshape("الله"))
	config := DefaultConfig()
	config.Ligatures = LigatureSet{}
	config.UpdateLigature(ligatures.LamWithHeh, true)
	env.NotEqual("ﷲ", New(config).Reshape("الله"))
}

func (env *ReshapeTestEnviron) TestLigatureAfterRejectedMatch() {
	// Yeh-Yeh has no medial form, so the first pair stays apart and the
	// second pair becomes the final ligature
	e := New(NewConfig(Arabic, AllLigatures))
	env.Equal("\uFE91\uFEF4\uFC96", e.Reshape("\u0628\u064A\u064A\u064A"))
}

func (env *ReshapeTestEnviron) TestKurdishTable() {
	e := Default()
	e.ModifyConfig(func(c *Config) {
		c.Language = Kurdish
	})
	env.Equal("Kurdish", e.Table().Name())
	env.Equal("ﭼﯚﻣﺎن", e.Reshape("چۆمان"))
	e.ModifyConfig(func(c *Config) {
		c.Language = ArabicV2
	})
	env.Equal("ArabicV2", e.Table().Name())
	env.Equal("ب", e.Reshape("ب"))
}

func (env *ReshapeTestEnviron) TestCustomTable() {
	table, err := letters.NewTable("latin", []letters.Letter{
		{Char: 'x', Forms: letters.NewForms('X', 'I', 'M', 'F')},
	})
	env.Require().NoError(err)
	e := New(CustomConfig(table))
	env.Equal("latin", e.Table().Name())
	env.Equal("IMF X", e.Reshape("xxx x"))
	env.False(e.NeedsReshape("ب"))
	// a custom language without a table falls back to Arabic
	config := DefaultConfig()
	config.Language = Custom
	env.Equal("Arabic", New(config).Table().Name())
}

func (env *ReshapeTestEnviron) TestLinesAndBatch() {
	e := Default()
	in := []string{"با", "", "abc"}
	want := []string{"ﺑﺎ", "", "abc"}
	env.Equal(want, e.ReshapeLines(in))
	env.Equal(want, slices.Collect(e.Lines(slices.Values(in))))
	// early break
	for line := range e.Lines(slices.Values(in)) {
		env.Equal(want[0], line)
		break
	}
}

func (env *ReshapeTestEnviron) TestEngineKeepsCopy() {
	config := DefaultConfig()
	e := New(config)
	config.DeleteHarakat = false
	env.True(e.Config().DeleteHarakat)
	c := e.Config()
	c.Language = Kurdish
	env.Equal("Arabic", e.Table().Name())
}

// --- Helpers ---------------------------------------------------------------

func (env *ReshapeTestEnviron) runCorpus(e *Engine, corpus []corpusCase) {
	for _, c := range corpus {
		env.Equal(c.out, e.Reshape(c.in), "reshaping %q", c.in)
	}
}

func TestLigatureForm(t *testing.T) {
	cases := []struct {
		first, last, form letters.Form
	}{
		{letters.Isolated, letters.Final, letters.Isolated},
		{letters.Initial, letters.Final, letters.Isolated},
		{letters.Unshaped, letters.Unshaped, letters.Isolated},
		{letters.Initial, letters.Medial, letters.Initial},
		{letters.Medial, letters.Final, letters.Final},
		{letters.Medial, letters.Initial, letters.Medial},
		{letters.Final, letters.Medial, letters.Medial},
	}
	for _, c := range cases {
		if f := ligatureForm(c.first, c.last); f != c.form {
			t.Errorf("span %s…%s: expected %s, got %s", c.first, c.last, c.form, f)
		}
	}
}
